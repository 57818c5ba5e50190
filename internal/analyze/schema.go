package analyze

import (
	"slices"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Schema is a parsed JSON Schema node. Only the keywords the generator
// understands are kept; everything else is skipped during parsing.
// A Schema is never mutated after Parse returns.
type Schema struct {
	ID    string
	Ref   string
	Title string
	Type  string

	Properties []Property
	Required   []string
	Enum       []string
	Items      *Schema
	AllOf      []*Schema

	// AdditionalProperties is nil when the keyword is absent or boolean.
	AdditionalProperties *Schema

	// Default holds the raw default value, nil when absent.
	Default jsontext.Value
}

// Property is one entry of a schema's properties, in source order.
type Property struct {
	Name   string
	Schema *Schema
}

// Property returns the named property schema, or nil.
func (s *Schema) Property(name string) *Schema {
	if s == nil {
		return nil
	}

	for _, p := range s.Properties {
		if p.Name == name {
			return p.Schema
		}
	}

	return nil
}

// IsRequired reports whether name is listed in required.
func (s *Schema) IsRequired(name string) bool {
	return s != nil && slices.Contains(s.Required, name)
}

// HasProperties reports whether the node declares at least one property.
func (s *Schema) HasProperties() bool {
	return s != nil && len(s.Properties) > 0
}

// IsStringEnum reports whether the node is a string with enum literals.
func (s *Schema) IsStringEnum() bool {
	return s != nil && s.Type == "string" && len(s.Enum) > 0
}

// HasDefault reports whether a default value was declared.
func (s *Schema) HasDefault() bool {
	return s != nil && len(s.Default) > 0
}

// DefaultValue decodes the default into a generic value: float64, string,
// bool, []any, map[string]any or nil.
func (s *Schema) DefaultValue() (any, error) {
	if !s.HasDefault() {
		return nil, nil
	}

	var v any
	if err := json.Unmarshal(s.Default, &v); err != nil {
		return nil, err
	}

	return v, nil
}

// Label returns the title, falling back to fallback when the title is blank.
func (s *Schema) Label(fallback string) string {
	if s != nil && strings.TrimSpace(s.Title) != "" {
		return s.Title
	}

	return fallback
}
