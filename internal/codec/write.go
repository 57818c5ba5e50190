package codec

import (
	"fmt"

	"vrm-type-generator/internal/plan"
)

// writeStruct mirrors the generated to_json.
func (c *Codec) writeStruct(d *plan.StructDecl, obj *Object, path string) (map[string]any, error) {
	if obj == nil {
		return nil, &PathError{Path: path, Err: fmt.Errorf("%w: nil %s", ErrTypeMismatch, d.Name)}
	}

	if obj.Type != d.Name.String() {
		return nil, &PathError{Path: path, Err: fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, d.Name, obj.Type)}
	}

	out := make(map[string]any, len(d.Fields))

	for _, f := range d.Fields {
		fieldPath := appendPointer(path, f.Key)

		v, ok := obj.Fields[f.Key]
		if !ok {
			init, err := c.initial(f)
			if err != nil {
				return nil, err
			}

			v = init
		}

		if !f.AlwaysWritten() && c.opts.OmitDefaults {
			def, err := c.writeDefault(f)
			if err != nil {
				return nil, err
			}

			if v == def {
				continue
			}
		}

		w, err := c.writeValue(f.Type, v, fieldPath)
		if err != nil {
			return nil, err
		}

		out[f.Key] = w
	}

	for k, v := range obj.Extensions {
		if v != nil {
			out[k] = v
		}
	}

	return out, nil
}

func (c *Codec) writeValue(t plan.TypeRef, v any, path string) (any, error) {
	switch t.Kind {
	case plan.TypeKindScalar:
		return v, nil
	case plan.TypeKindEnum:
		variant, ok := v.(plan.Variant)
		if !ok {
			return nil, &PathError{Path: path, Err: fmt.Errorf("%w: expected variant, got %T", ErrTypeMismatch, v)}
		}

		literal, err := c.EncodeEnum(t.Name.String(), variant.Name)
		if err != nil {
			return nil, at(path, err)
		}

		return literal, nil
	case plan.TypeKindStruct:
		d, err := c.structDecl(t.Name.String())
		if err != nil {
			return nil, err
		}

		obj, ok := v.(*Object)
		if !ok {
			return nil, &PathError{Path: path, Err: fmt.Errorf("%w: expected object, got %T", ErrTypeMismatch, v)}
		}

		return c.writeStruct(d, obj, path)
	case plan.TypeKindVector3:
		vec, ok := v.(Vector3)
		if !ok {
			return nil, &PathError{Path: path, Err: fmt.Errorf("%w: expected Vector3, got %T", ErrTypeMismatch, v)}
		}

		return map[string]any{"x": vec.X, "y": vec.Y, "z": vec.Z}, nil
	case plan.TypeKindMap:
		return clone(v), nil
	case plan.TypeKindArray:
		items, ok := v.([]any)
		if !ok {
			return nil, &PathError{Path: path, Err: fmt.Errorf("%w: expected array, got %T", ErrTypeMismatch, v)}
		}

		out := make([]any, 0, len(items))

		for i, item := range items {
			w, err := c.writeValue(*t.Elem, item, fmt.Sprintf("%s/%d", path, i))
			if err != nil {
				return nil, err
			}

			out = append(out, w)
		}

		return out, nil
	default:
		return nil, at(path, fmt.Errorf("cannot write %s", t))
	}
}
