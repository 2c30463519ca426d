// Package registry builds the set of known project types.
//
// Every parsed file becomes a [SourceUnit]. Its primary declaration is the
// first class declaration in the file, or the first interface declaration
// when the file declares no class. [Build] indexes units by that name into
// an immutable [Registry], which later stages use to decide whether a
// candidate dependency refers to a project type.
//
// Two files declaring the same simple name are an accepted ambiguity: the
// later file (in enumeration order) wins, but every such collision is
// reported as a [DuplicateConflict] outcome and logged at warn level.
package registry
