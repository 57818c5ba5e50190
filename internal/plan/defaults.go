package plan

import (
	"errors"
	"fmt"
	"slices"

	"vrm-type-generator/internal/analyze"
	"vrm-type-generator/internal/diagnostic"
	"vrm-type-generator/internal/naming"
	"vrm-type-generator/primitive"
)

// resolveDefault coerces the declared default of prop to the field type.
// Empty object and array defaults on structs and maps mean "no default".
func (r *Resolver) resolveDefault(res resolved, prop *analyze.Schema, at site) (any, error) {
	raw, err := prop.DefaultValue()
	if err != nil {
		return nil, r.invalidDefault(at, err)
	}

	if raw == nil {
		return nil, nil
	}

	t := res.ref

	switch t.Kind {
	case TypeKindScalar:
		v, err := primitive.Coerce(t.Scalar, raw)
		if err != nil {
			return nil, r.invalidDefault(at, err)
		}

		return v, nil
	case TypeKindEnum:
		return r.enumDefault(t.Name, res.literals, raw, at)
	case TypeKindArray:
		list, ok := raw.([]any)
		if !ok {
			return nil, r.invalidDefault(at, fmt.Errorf("expected a list, got %T", raw))
		}

		out := make([]any, 0, len(list))

		switch t.Elem.Kind {
		case TypeKindScalar:
			for i, elem := range list {
				v, err := primitive.Coerce(t.Elem.Scalar, elem)
				if err != nil {
					return nil, r.invalidDefault(at, fmt.Errorf("element %d: %w", i, err))
				}

				out = append(out, v)
			}
		case TypeKindEnum:
			for _, elem := range list {
				v, err := r.enumDefault(t.Elem.Name, res.literals, elem, at)
				if err != nil {
					return nil, err
				}

				out = append(out, v)
			}
		default:
			if len(list) == 0 {
				return nil, nil
			}

			return nil, r.invalidDefault(at, fmt.Errorf("list defaults of %s are not supported", t.Elem))
		}

		return out, nil
	default:
		if isEmptyContainer(raw) {
			return nil, nil
		}

		return nil, r.invalidDefault(at, fmt.Errorf("defaults of %s are not supported", t))
	}
}

func (r *Resolver) enumDefault(name QualName, literals *analyze.Schema, raw any, at site) (any, error) {
	literal, ok := raw.(string)
	if !ok {
		return nil, r.invalidDefault(at, fmt.Errorf("expected an enum literal, got %T", raw))
	}

	if literals == nil || !slices.Contains(literals.Enum, literal) {
		return nil, r.invalidDefault(at, fmt.Errorf("%q is not a literal of %s", literal, name))
	}

	return Variant{Literal: literal, Name: naming.VariantName(literal)}, nil
}

func (r *Resolver) invalidDefault(at site, cause error) error {
	if cause == nil {
		cause = errors.New("invalid default")
	}

	return &diagnostic.InvalidDefaultError{Location: r.location(at, ""), Cause: cause}
}

func isEmptyContainer(v any) bool {
	switch v := v.(type) {
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}
