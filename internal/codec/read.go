package codec

import (
	"fmt"

	"vrm-type-generator/internal/plan"
	"vrm-type-generator/primitive"
)

// readStruct mirrors the generated from_json: required fields must be
// present, absent optional fields keep their initializer.
func (c *Codec) readStruct(d *plan.StructDecl, tree any, path string) (*Object, error) {
	m, ok := tree.(map[string]any)
	if !ok {
		return nil, mismatch(path, "object", tree)
	}

	obj, err := c.zeroStruct(d)
	if err != nil {
		return nil, err
	}

	for _, f := range d.Fields {
		fieldPath := appendPointer(path, f.Key)

		raw, present := m[f.Key]
		if !present {
			if f.Required {
				return nil, &PathError{Path: fieldPath, Err: fmt.Errorf("%w: %s", ErrMissingField, f.Key)}
			}

			continue
		}

		v, err := c.readValue(f.Type, raw, obj.Fields[f.Key], fieldPath)
		if err != nil {
			return nil, err
		}

		obj.Fields[f.Key] = v
	}

	for _, key := range []string{"extensions", "extras"} {
		if v, ok := m[key]; ok {
			obj.Extensions[key] = v
		}
	}

	return obj, nil
}

// readValue converts raw to t. prev is the value kept when a lenient enum
// read finds no matching literal.
func (c *Codec) readValue(t plan.TypeRef, raw, prev any, path string) (any, error) {
	switch t.Kind {
	case plan.TypeKindScalar:
		v, err := primitive.Coerce(t.Scalar, raw)
		if err != nil {
			return nil, at(path, fmt.Errorf("%w: %w", ErrTypeMismatch, err))
		}

		return v, nil
	case plan.TypeKindEnum:
		return c.readEnum(t.Name.String(), raw, prev, path)
	case plan.TypeKindStruct:
		d, err := c.structDecl(t.Name.String())
		if err != nil {
			return nil, err
		}

		return c.readStruct(d, raw, path)
	case plan.TypeKindVector3:
		return readVector3(raw, path)
	case plan.TypeKindMap:
		return readMap(t.Map, raw, path)
	case plan.TypeKindArray:
		items, ok := raw.([]any)
		if !ok {
			return nil, mismatch(path, "array", raw)
		}

		out := make([]any, 0, len(items))

		for i, item := range items {
			v, err := c.readValue(*t.Elem, item, nil, fmt.Sprintf("%s/%d", path, i))
			if err != nil {
				return nil, err
			}

			out = append(out, v)
		}

		return out, nil
	default:
		return nil, at(path, fmt.Errorf("cannot read %s", t))
	}
}

func (c *Codec) readEnum(name string, raw, prev any, path string) (any, error) {
	literal, ok := raw.(string)
	if !ok {
		return nil, mismatch(path, "string", raw)
	}

	d, err := c.enumDecl(name)
	if err != nil {
		return nil, err
	}

	if v, ok := d.VariantByLiteral(literal); ok {
		return v, nil
	}

	if c.opts.StrictEnums || (prev == nil && len(d.Variants) == 0) {
		return nil, &PathError{
			Path: path,
			Err:  fmt.Errorf("%w: unknown %s value: %s", ErrUnknownLiteral, d.Name.Local(), literal),
		}
	}

	// Array elements have no previous value and stay value-initialised.
	if prev == nil {
		return d.Variants[0], nil
	}

	return prev, nil
}

func readVector3(raw any, path string) (any, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, mismatch(path, "object", raw)
	}

	var out [3]float64

	for i, key := range []string{"x", "y", "z"} {
		v, present := m[key]
		if !present {
			return nil, &PathError{Path: appendPointer(path, key), Err: fmt.Errorf("%w: %s", ErrMissingField, key)}
		}

		f, err := primitive.Coerce(primitive.KindNumber, v)
		if err != nil {
			return nil, at(appendPointer(path, key), fmt.Errorf("%w: %w", ErrTypeMismatch, err))
		}

		out[i] = f.(float64)
	}

	return Vector3{X: out[0], Y: out[1], Z: out[2]}, nil
}

func readMap(kind primitive.MapKindEnum, raw any, path string) (any, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, mismatch(path, "object", raw)
	}

	out := make(map[string]any, len(m))

	for k, v := range m {
		entryPath := appendPointer(path, k)

		if !kind.IsListValued() {
			s, err := primitive.Coerce(kind.ValueKind(), v)
			if err != nil {
				return nil, at(entryPath, fmt.Errorf("%w: %w", ErrTypeMismatch, err))
			}

			out[k] = s

			continue
		}

		items, ok := v.([]any)
		if !ok {
			return nil, mismatch(entryPath, "array", v)
		}

		list := make([]any, 0, len(items))

		for i, item := range items {
			s, err := primitive.Coerce(kind.ValueKind(), item)
			if err != nil {
				return nil, at(fmt.Sprintf("%s/%d", entryPath, i), fmt.Errorf("%w: %w", ErrTypeMismatch, err))
			}

			list = append(list, s)
		}

		out[k] = list
	}

	return out, nil
}

func mismatch(path, want string, got any) error {
	return &PathError{Path: path, Err: fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, want, jsonKind(got))}
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
