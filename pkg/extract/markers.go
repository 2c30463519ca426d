package extract

import (
	"strings"

	"github.com/matzehuels/injectgraph/pkg/errors"
	"github.com/matzehuels/injectgraph/pkg/javaast"
)

// Markers names the annotations that trigger extractors.
type Markers struct {
	RequiredArgs     string `toml:"required_args"`
	AllArgs          string `toml:"all_args"`
	Setter           string `toml:"setter"`
	NonNull          string `toml:"non_null"`
	Autowired        string `toml:"autowired"`
	Repository       string `toml:"repository"`
	Import           string `toml:"import"`
	ComponentScan    string `toml:"component_scan"`
	RepositorySuffix string `toml:"repository_suffix"`
}

// DefaultMarkers returns the Lombok and Spring annotation names.
func DefaultMarkers() Markers {
	return Markers{
		RequiredArgs:     "RequiredArgsConstructor",
		AllArgs:          "AllArgsConstructor",
		Setter:           "Setter",
		NonNull:          "NonNull",
		Autowired:        "Autowired",
		Repository:       "Repository",
		Import:           "Import",
		ComponentScan:    "ComponentScan",
		RepositorySuffix: "Repository",
	}
}

// Validate checks that every marker is a plain identifier. An empty
// RepositorySuffix disables suffix-based repository detection.
func (m Markers) Validate() error {
	for key, v := range map[string]string{
		"required_args":  m.RequiredArgs,
		"all_args":       m.AllArgs,
		"setter":         m.Setter,
		"non_null":       m.NonNull,
		"autowired":      m.Autowired,
		"repository":     m.Repository,
		"import":         m.Import,
		"component_scan": m.ComponentScan,
	} {
		if err := errors.ValidateTypeName(v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "marker %s", key)
		}
	}
	if m.RepositorySuffix != "" {
		if err := errors.ValidateTypeName(m.RepositorySuffix); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "marker repository_suffix")
		}
	}
	return nil
}

var annotationKinds = []string{"marker_annotation", "annotation", "normal_annotation"}

// annotations returns the annotations attached directly to n through its
// modifiers child.
func annotations(n javaast.Node) []javaast.Node {
	return n.FirstChildOfType("modifiers").ChildrenOfType(annotationKinds...)
}

// annotationName returns the simple name of an annotation node.
func annotationName(a javaast.Node) string {
	name := a.Field("name").Text()
	if name == "" {
		if first := a.NamedChildren(); len(first) > 0 {
			name = first[0].Text()
		}
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// AnnotationSet returns the simple names of the annotations attached to n.
func AnnotationSet(n javaast.Node) map[string]bool {
	set := map[string]bool{}
	for _, a := range annotations(n) {
		set[annotationName(a)] = true
	}
	return set
}

// hasMarker reports whether n carries an annotation named marker.
func hasMarker(n javaast.Node, marker string) bool {
	if marker == "" {
		return false
	}
	for _, a := range annotations(n) {
		if annotationName(a) == marker {
			return true
		}
	}
	return false
}

// markerArguments returns the literal arguments of every annotation named
// marker on n: string contents and the type names of class literals.
func markerArguments(n javaast.Node, marker string) (strs, classes []string) {
	for _, a := range annotations(n) {
		if annotationName(a) != marker {
			continue
		}
		for _, lit := range a.Field("arguments").DescendantsOfType("string_literal", "class_literal") {
			switch lit.Kind() {
			case "string_literal":
				strs = append(strs, lit.StringContent())
			case "class_literal":
				if children := lit.NamedChildren(); len(children) > 0 {
					classes = append(classes, typeName(children[0]))
				}
			}
		}
	}
	return strs, classes
}
