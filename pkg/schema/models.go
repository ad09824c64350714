// Package schema exposes the platform's request model schemas — the
// declared attributes, required lists and type descriptors the mapping
// verification and population layers introspect. The schemas are read
// from the platform's OpenAPI document rather than generated SDK code,
// so the models stay externally owned.
package schema

import (
	"fmt"
	"sort"
)

// Attribute is one declared attribute of a model: its snake_case name
// and compact type descriptor ("str", "datetime", "ResourceId",
// "list[TargetTaxLot]", "dict(str, InstrumentIdValue)").
type Attribute struct {
	Name string
	Type string
}

// Model describes one request model declared by the platform document.
type Model struct {
	Name       string
	Required   []string
	Attributes map[string]Attribute
}

// Schema is the set of models extracted from one platform document.
type Schema struct {
	models map[string]Model
}

// Model looks up a model by name.
func (s *Schema) Model(name string) (Model, bool) {
	model, ok := s.models[name]
	return model, ok
}

// ModelNames returns the sorted names of all declared models.
func (s *Schema) ModelNames() []string {
	names := make([]string, 0, len(s.models))
	for name := range s.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsModel reports whether name refers to a declared model.
func (s *Schema) IsModel(name string) bool {
	_, ok := s.models[name]
	return ok
}

// RequiredAttributes returns a model's declared required attribute
// names in declaration order.
func (s *Schema) RequiredAttributes(name string) ([]string, error) {
	model, ok := s.models[name]
	if !ok {
		return nil, fmt.Errorf("schema: %s is not a declared model", name)
	}
	return append([]string(nil), model.Required...), nil
}

// RequiredLeafPaths expands a model's required attributes into dotted
// leaf paths: a required attribute whose type is itself a model
// contributes that model's required leaves prefixed with the attribute
// name (e.g. "identifiers.value"), recursively.
func (s *Schema) RequiredLeafPaths(name string) ([]string, error) {
	model, ok := s.models[name]
	if !ok {
		return nil, fmt.Errorf("schema: %s is not a declared model", name)
	}

	var paths []string
	for _, attribute := range model.Required {
		descriptor := model.Attributes[attribute].Type
		bare, _ := ParseAttributeType(descriptor)
		nested, ok := s.models[bare]
		if !ok {
			paths = append(paths, attribute)
			continue
		}
		leaves, err := s.RequiredLeafPaths(nested.Name)
		if err != nil {
			return nil, err
		}
		if len(leaves) == 0 {
			paths = append(paths, attribute)
			continue
		}
		for _, leaf := range leaves {
			paths = append(paths, attribute+"."+leaf)
		}
	}
	return paths, nil
}
