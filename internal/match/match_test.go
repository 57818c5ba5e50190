package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"meta", "meta", 0},
		{"", "abc", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"Hello", "hello", 1},
		{"blendshapebind", "blendshapegroup", 5},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 1.0-3.0/7.0, Similarity("kitten", "sitting"), 1e-9)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "vrmcvrmmeta", Normalize("VRMC_vrm.meta.schema.json"))
	assert.Equal(t, "expressionspreset", Normalize("Expressions::Preset"))
	assert.Equal(t, "blendshapebind", Normalize("blend_shape-bind"))
}

func TestSuggest(t *testing.T) {
	keys := []string{
		"glTFid.schema.json",
		"vrm.blendshape.bind.schema.json",
		"vrm.blendshape.group.schema.json",
		"vrm.meta.schema.json",
	}

	got, ok := Suggest("vrm.blendshape.bnid.schema.json", keys)
	assert.True(t, ok)
	assert.Equal(t, "vrm.blendshape.bind.schema.json", got)

	got, ok = Suggest("glTFId.schema.json", keys)
	assert.True(t, ok)
	assert.Equal(t, "glTFid.schema.json", got)

	_, ok = Suggest("humanoid.schema.json", keys)
	assert.False(t, ok)

	_, ok = Suggest("vrm.meta.schema.json", []string{"vrm.meta.schema.json"})
	assert.False(t, ok, "an exact match is not a suggestion")
}

func TestHint(t *testing.T) {
	assert.Equal(t, `; did you mean "Meta"?`, Hint("Mata", []string{"Meta", "Vrm"}))
	assert.Empty(t, Hint("Humanoid", []string{"Meta", "Vrm"}))
}
