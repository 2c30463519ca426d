// Package extract turns Java injection idioms into candidate dependencies.
//
// Each [Extractor] inspects the primary declaration of one
// [registry.SourceUnit] and proposes type names it depends on. Extractors
// are independent: none reads another's output, so disabling one only
// removes the candidates it would have produced.
//
// # Extractors
//
//	required-args       class marker RequiredArgsConstructor, fields marked NonNull
//	all-args            class marker AllArgsConstructor, every field
//	setter              class marker Setter, every field
//	autowired-field     fields marked Autowired
//	autowired-setter    methods marked Autowired, their parameter types
//	constructor-params  parameters of constructors named after the class
//	import              class-level Import arguments (strings and class literals)
//	component-scan      class-level ComponentScan string arguments
//	repository-entity   generic arguments of a repository's supertype, reversed
//	inheritance         extends and implements clauses of non-repositories
//
// # Markers
//
// A marker is detected structurally: an annotation attached to the
// modifiers of the declaration or member being inspected. Annotations in
// comments, string literals or member bodies never count. Names are
// compared on their last segment, so @lombok.Setter matches "Setter".
// The names themselves come from [Markers] and can be reconfigured.
//
// Candidates are unresolved names. Filtering against known types is the
// job of package resolve.
package extract
