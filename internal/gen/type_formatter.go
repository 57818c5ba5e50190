package gen

import (
	"slices"
	"strings"

	"vrm-type-generator/internal/plan"
	"vrm-type-generator/primitive"
)

// cppType returns the C++ spelling of t as seen from inside scope. Types
// nested directly in scope use their local name.
func cppType(t plan.TypeRef, scope plan.QualName) string {
	switch t.Kind {
	case plan.TypeKindScalar:
		return t.Scalar.NativeType()
	case plan.TypeKindEnum, plan.TypeKindStruct:
		if len(t.Name) > 1 && slices.Equal(t.Name[:len(t.Name)-1], scope) {
			return t.Name.Local()
		}

		return t.Name.String()
	case plan.TypeKindVector3:
		return "Vector3"
	case plan.TypeKindMap:
		return "std::unordered_map<std::string, " + mapValueType(t.Map) + ">"
	case plan.TypeKindArray:
		return "std::vector<" + cppType(*t.Elem, scope) + ">"
	default:
		panic("cpp type requested for unknown kind: " + t.Kind.String())
	}
}

func mapValueType(m primitive.MapKindEnum) string {
	if m.IsListValued() {
		return "std::vector<" + m.ValueKind().NativeType() + ">"
	}

	return m.ValueKind().NativeType()
}

// memberInit returns the initializer that follows a member name, including
// the leading " = " or "{}". Strings without a default stay bare.
func memberInit(f plan.Field) string {
	if f.Default == nil {
		if f.Type.Kind == plan.TypeKindScalar && f.Type.Scalar == primitive.KindString {
			return ""
		}

		return "{}"
	}

	switch f.Type.Kind {
	case plan.TypeKindScalar:
		return " = " + primitive.Literal(f.Type.Scalar, f.Default)
	case plan.TypeKindEnum:
		return " = " + enumValue(f.Type.Name, f.Default.(plan.Variant))
	case plan.TypeKindArray:
		return " = " + listLiteral(*f.Type.Elem, f.Default.([]any))
	default:
		return "{}"
	}
}

// defaultExpr returns the expression passed to VRMC::WriteField as the
// default. Its C++ type must match the member type exactly.
func defaultExpr(f plan.Field) string {
	switch f.Type.Kind {
	case plan.TypeKindScalar:
		if f.Default == nil {
			if f.Type.Scalar == primitive.KindString {
				return "{}"
			}

			return primitive.TypedLiteral(f.Type.Scalar, primitive.Zero(f.Type.Scalar))
		}

		return primitive.TypedLiteral(f.Type.Scalar, f.Default)
	case plan.TypeKindEnum:
		if f.Default == nil {
			return "{}"
		}

		return enumValue(f.Type.Name, f.Default.(plan.Variant))
	default:
		return "{}"
	}
}

func enumValue(name plan.QualName, v plan.Variant) string {
	return name.String() + "::" + v.Name
}

func listLiteral(elem plan.TypeRef, values []any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if elem.Kind == plan.TypeKindEnum {
			parts = append(parts, enumValue(elem.Name, v.(plan.Variant)))

			continue
		}

		parts = append(parts, primitive.ListElement(elem.Scalar, v))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

func quote(s string) string {
	return primitive.Literal(primitive.KindString, s)
}
