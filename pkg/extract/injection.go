package extract

import (
	"github.com/matzehuels/injectgraph/pkg/registry"
)

// RequiredArgs emits the types of fields marked NonNull when the class
// carries the required-args constructor marker.
type RequiredArgs struct{ Markers Markers }

func (RequiredArgs) Name() string { return NameRequiredArgs }

func (e RequiredArgs) Extract(u *registry.SourceUnit) []Candidate {
	if !hasMarker(u.Decl, e.Markers.RequiredArgs) {
		return nil
	}
	var names []string
	for _, f := range members(u.Decl, "field_declaration") {
		if hasMarker(f, e.Markers.NonNull) {
			names = append(names, fieldType(f))
		}
	}
	return ordinary(NameRequiredArgs, names...)
}

// AllArgs emits every field type when the class carries the all-args
// constructor marker.
type AllArgs struct{ Markers Markers }

func (AllArgs) Name() string { return NameAllArgs }

func (e AllArgs) Extract(u *registry.SourceUnit) []Candidate {
	if !hasMarker(u.Decl, e.Markers.AllArgs) {
		return nil
	}
	return ordinary(NameAllArgs, allFieldTypes(u)...)
}

// Setter emits every field type when the class carries the setter
// generation marker.
type Setter struct{ Markers Markers }

func (Setter) Name() string { return NameSetter }

func (e Setter) Extract(u *registry.SourceUnit) []Candidate {
	if !hasMarker(u.Decl, e.Markers.Setter) {
		return nil
	}
	return ordinary(NameSetter, allFieldTypes(u)...)
}

func allFieldTypes(u *registry.SourceUnit) []string {
	fields := members(u.Decl, "field_declaration")
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, fieldType(f))
	}
	return names
}

// AutowiredField emits the type of every field marked Autowired.
type AutowiredField struct{ Markers Markers }

func (AutowiredField) Name() string { return NameAutowiredField }

func (e AutowiredField) Extract(u *registry.SourceUnit) []Candidate {
	var names []string
	for _, f := range members(u.Decl, "field_declaration") {
		if hasMarker(f, e.Markers.Autowired) {
			names = append(names, fieldType(f))
		}
	}
	return ordinary(NameAutowiredField, names...)
}

// AutowiredSetter emits the parameter types of every method marked
// Autowired.
type AutowiredSetter struct{ Markers Markers }

func (AutowiredSetter) Name() string { return NameAutowiredSetter }

func (e AutowiredSetter) Extract(u *registry.SourceUnit) []Candidate {
	var names []string
	for _, m := range members(u.Decl, "method_declaration") {
		if hasMarker(m, e.Markers.Autowired) {
			names = append(names, parameterTypes(m)...)
		}
	}
	return ordinary(NameAutowiredSetter, names...)
}

// ConstructorParams emits the parameter types of every explicit
// constructor named after the declaring class.
type ConstructorParams struct{}

func (ConstructorParams) Name() string { return NameConstructorParams }

func (ConstructorParams) Extract(u *registry.SourceUnit) []Candidate {
	var names []string
	for _, c := range members(u.Decl, "constructor_declaration") {
		if c.Field("name").Text() == u.Name {
			names = append(names, parameterTypes(c)...)
		}
	}
	return ordinary(NameConstructorParams, names...)
}
