package primitive

// MapKindEnum is one of the recognised associative-container shapes. The
// corpus spells them as property names (or, rarely, as pseudo "type" values)
// instead of describing them with additionalProperties.
type MapKindEnum int

const (
	_ MapKindEnum = iota

	MapFloatProperties   // floatProperties: name -> number
	MapTextureProperties // textureProperties: name -> texture index
	MapKeywordMap        // keywordMap: name -> boolean flag
	MapTagMap            // tagMap: name -> string tag
	MapVectorProperties  // vectorProperties: name -> list of numbers

	MapKindTotal = int(iota)
)

var mapKindNames = [...]string{
	MapFloatProperties:   "floatProperties",
	MapTextureProperties: "textureProperties",
	MapKeywordMap:        "keywordMap",
	MapTagMap:            "tagMap",
	MapVectorProperties:  "vectorProperties",
}

// MapKindFromName returns the map kind spelled by name, or zero.
func MapKindFromName(name string) MapKindEnum {
	for kind := MapKindEnum(1); int(kind) < MapKindTotal; kind++ {
		if mapKindNames[kind] == name {
			return kind
		}
	}

	return 0
}

func (m MapKindEnum) IsValid() bool {
	return m > 0 && int(m) < MapKindTotal
}

// String returns the property name that selects the kind.
func (m MapKindEnum) String() string {
	if !m.IsValid() {
		return "MapKindEnum(invalid)"
	}

	return mapKindNames[m]
}

// ValueKind is the primitive kind of the container values. For
// MapVectorProperties it is the element kind of each value list.
func (m MapKindEnum) ValueKind() KindEnum {
	switch m {
	default:
		panic("value kind requested for invalid map kind: " + m.String())
	case MapFloatProperties, MapVectorProperties:
		return KindNumber
	case MapTextureProperties:
		return KindInteger
	case MapKeywordMap:
		return KindBoolean
	case MapTagMap:
		return KindString
	}
}

// IsListValued reports whether each map value is a list rather than a scalar.
func (m MapKindEnum) IsListValued() bool {
	return m == MapVectorProperties
}
