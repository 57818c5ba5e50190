package codec

import (
	"maps"

	"vrm-type-generator/internal/plan"
)

// Object is a struct value keyed by JSON field key.
type Object struct {
	// Type is the qualified struct name.
	Type   string
	Fields map[string]any
	// Extensions holds the "extensions" and "extras" members verbatim.
	Extensions map[string]any
}

// Get returns the value of the field read from key.
func (o *Object) Get(key string) any {
	return o.Fields[key]
}

// Set replaces the value of the field read from key.
func (o *Object) Set(key string, v any) {
	o.Fields[key] = v
}

// Vector3 is the prelude vector.
type Vector3 struct {
	X, Y, Z float64
}

func newObject(d *plan.StructDecl) *Object {
	return &Object{
		Type:       d.Name.String(),
		Fields:     make(map[string]any, len(d.Fields)),
		Extensions: make(map[string]any),
	}
}

// clone copies containers so defaults are never shared between values.
func clone(v any) any {
	switch v := v.(type) {
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = clone(e)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = clone(e)
		}

		return out
	case *Object:
		if v == nil {
			return v
		}

		out := &Object{Type: v.Type, Fields: make(map[string]any, len(v.Fields)), Extensions: maps.Clone(v.Extensions)}
		for k, e := range v.Fields {
			out.Fields[k] = clone(e)
		}

		return out
	default:
		return v
	}
}
