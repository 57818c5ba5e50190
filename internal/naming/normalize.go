package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
)

var (
	leadingPrefix = regexp.MustCompile(`^(vrm\.|VRMC_?|\d+\.)`)
	separators    = strings.NewReplacer(".", "_", "/", "_")
)

// Sanitize strips namespace and ordering prefixes and the schema suffix.
// Examples:
//   - "vrm.blendshape.bind" -> "blendshape_bind"
//   - "VRMC_vrm.meta.schema.json" -> "meta"
//   - "03.vrm.firstperson" -> "firstperson"
func Sanitize(s string) string {
	for {
		stripped := leadingPrefix.ReplaceAllString(s, "")
		if stripped == s {
			break
		}

		s = stripped
	}

	s = separators.Replace(s)
	s = strings.Join(strings.Fields(s), "")

	return strings.TrimSuffix(s, "_schema_json")
}

// Capitalize upper-cases the first letter and keeps the rest as is.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// Pascal capitalises every underscore-delimited segment and joins them.
// Examples:
//   - "blendshape_bind" -> "BlendshapeBind"
//   - "springBone_shape" -> "SpringBoneShape"
func Pascal(s string) string {
	var b strings.Builder

	for seg := range strings.SplitSeq(s, "_") {
		b.WriteString(Capitalize(seg))
	}

	return b.String()
}

// Identifier replaces characters invalid in a C++ identifier with '_' and
// prefixes a leading digit with '_'.
func Identifier(s string) string {
	if s == "" {
		return s
	}

	out := []rune(s)
	for i, r := range out {
		if r != '_' && !isASCIILetter(r) && !isASCIIDigit(r) {
			out[i] = '_'
		}
	}

	if isASCIIDigit(out[0]) {
		return "_" + string(out)
	}

	return string(out)
}

// StructName derives a struct name from a title or file name.
func StructName(title string) string {
	return Identifier(Pascal(Sanitize(title)))
}

// EnumName derives an enum name from a title or property name.
func EnumName(title string) string {
	return Identifier(Capitalize(Sanitize(title)))
}

// VariantName derives an enum variant from its literal.
// Examples:
//   - "blink_l" -> "Blink_l"
//   - "CC_BY-NC" -> "CC_BY_NC"
//   - "3d" -> "_3d"
func VariantName(literal string) string {
	return Identifier(Capitalize(literal))
}

// Singular returns the singular form of an English plural.
func Singular(word string) string {
	if word == "" {
		return word
	}

	return inflect.Singularize(word)
}

// ItemStructName names the struct synthesised for the anonymous items of an
// array property.
// Examples:
//   - "colliders" -> "Collider"
//   - "humanBones" -> "HumanBone"
func ItemStructName(property string) string {
	return StructName(Singular(property))
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
