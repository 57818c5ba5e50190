package match

import (
	"strings"
	"unicode"
)

// Normalize folds a reference key or type name for comparison: the schema
// suffix and scope operators go, separators are dropped and everything is
// lower-cased.
// Examples:
//   - "VRMC_vrm.meta.schema.json" -> "vrmcvrmmeta"
//   - "Expressions::Preset" -> "expressionspreset"
//   - "blend_shape-bind" -> "blendshapebind"
func Normalize(s string) string {
	s = strings.TrimSuffix(s, ".schema.json")
	s = strings.ReplaceAll(s, "::", "")

	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.' || r == '/'
}
