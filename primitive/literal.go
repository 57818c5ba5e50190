package primitive

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coerce converts a decoded JSON value into the canonical Go representation
// of kind: string, uint32, float64 or bool.
func Coerce(k KindEnum, v any) (any, error) {
	if k.IsNumber() {
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("expected %s, got %T", k.SchemaType(), v)
		}

		if k == KindNumber {
			return f, nil
		}

		if f != math.Trunc(f) || f < 0 || f > math.MaxUint32 {
			return nil, fmt.Errorf("%v is not a valid unsigned 32-bit integer", v)
		}

		return uint32(f), nil
	}

	switch k {
	case KindString:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}

		return s, nil
	case KindBoolean:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("expected boolean, got %T", v)
		}

		return b, nil
	default:
		return nil, fmt.Errorf("cannot coerce to %s", k)
	}
}

// Zero returns the canonical zero value of kind.
func Zero(k KindEnum) any {
	switch k {
	case KindString:
		return ""
	case KindInteger:
		return uint32(0)
	case KindNumber:
		return float64(0)
	case KindBoolean:
		return false
	default:
		return nil
	}
}

// Literal renders a value previously returned by Coerce as a C++ literal,
// suitable for a member initializer. Number literals always carry a
// fractional part and the float suffix.
func Literal(k KindEnum, v any) string {
	switch k {
	case KindString:
		return quote(v.(string))
	case KindInteger:
		return strconv.FormatUint(uint64(v.(uint32)), 10)
	case KindNumber:
		return FloatLiteral(v.(float64))
	case KindBoolean:
		return strconv.FormatBool(v.(bool))
	default:
		panic("literal requested for invalid kind: " + k.String())
	}
}

// TypedLiteral renders v as an expression whose C++ type is exactly
// NativeType, so it can be matched against a templated parameter.
func TypedLiteral(k KindEnum, v any) string {
	switch k {
	case KindString:
		return "std::string(" + Literal(k, v) + ")"
	case KindInteger:
		return "static_cast<uint32_t>(" + Literal(k, v) + ")"
	default:
		return Literal(k, v)
	}
}

// FloatLiteral renders f as a single precision literal such as 1.0f or 0.5f.
func FloatLiteral(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 32)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}

	return s + "f"
}

// ListElement renders an element of a brace-initialised list. Elements keep
// their shortest form, matching how array defaults appear in the schemas.
func ListElement(k KindEnum, v any) string {
	if k == KindNumber {
		return strconv.FormatFloat(v.(float64), 'f', -1, 32)
	}

	return Literal(k, v)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint32:
		return float64(n), true
	default:
		return 0, false
	}
}

func quote(s string) string {
	var sb strings.Builder

	sb.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}

	sb.WriteByte('"')

	return sb.String()
}
