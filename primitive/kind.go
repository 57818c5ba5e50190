package primitive

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is a JSON Schema primitive type as it appears in the schema corpus.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindString
	KindInteger
	KindNumber
	KindBoolean

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// FromSchemaType maps a JSON Schema "type" keyword to its primitive kind.
// Zero is returned for object, array and anything unrecognised.
func FromSchemaType(typ string) KindEnum {
	switch typ {
	default:
		return 0
	case "string":
		return KindString
	case "integer":
		return KindInteger
	case "number":
		return KindNumber
	case "boolean":
		return KindBoolean
	}
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// IsNumber reports whether values of the kind decode from JSON numbers.
func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInteger, KindNumber:
		return true
	}
}

// SchemaType is the inverse of FromSchemaType.
func (k KindEnum) SchemaType() string {
	switch k {
	default:
		panic("schema type requested for invalid kind: " + k.String())
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	}
}

// NativeType returns the C++ spelling of the kind.
func (k KindEnum) NativeType() string {
	switch k {
	default:
		panic("native type requested for invalid kind: " + k.String())
	case KindString:
		return "std::string"
	case KindInteger:
		return "uint32_t"
	case KindNumber:
		return "float"
	case KindBoolean:
		return "bool"
	}
}
