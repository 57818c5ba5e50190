package analyze

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vrm-type-generator/internal/diagnostic"
)

const schemaRoot = "../../testdata/schema"

func TestParse_PreservesOrder(t *testing.T) {
	s, err := Parse([]byte(`{
		"title": "Foo",
		"type": "object",
		"properties": {
			"zeta": {"type": "number", "default": 1},
			"alpha": {"type": "string", "enum": ["b", "a", "c"]},
			"mid": {"allOf": [{"$ref": "y.json"}, {"$ref": "x.json"}]}
		},
		"required": ["alpha"],
		"unknownKeyword": {"nested": [1, 2, 3]}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Foo", s.Title)
	require.Len(t, s.Properties, 3)
	assert.Equal(t, "zeta", s.Properties[0].Name)
	assert.Equal(t, "alpha", s.Properties[1].Name)
	assert.Equal(t, "mid", s.Properties[2].Name)
	assert.Equal(t, []string{"b", "a", "c"}, s.Property("alpha").Enum)
	assert.True(t, s.Property("alpha").IsStringEnum())
	assert.True(t, s.IsRequired("alpha"))
	assert.False(t, s.IsRequired("zeta"))

	mid := s.Property("mid")
	require.Len(t, mid.AllOf, 2)
	assert.Equal(t, "y.json", mid.AllOf[0].Ref)
	assert.Equal(t, "x.json", mid.AllOf[1].Ref)

	def, err := s.Property("zeta").DefaultValue()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, def, 0)
}

func TestParse_BooleanSubschemas(t *testing.T) {
	s, err := Parse([]byte(`{"type":"object","additionalProperties":false,"properties":{"x":true}}`))
	require.NoError(t, err)

	assert.Nil(t, s.AdditionalProperties)
	require.NotNil(t, s.Property("x"))
	assert.Empty(t, s.Property("x").Type)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not an object", `[1, 2]`},
		{"type not a string", `{"type": ["string", "null"]}`},
		{"enum literal not a string", `{"type": "string", "enum": [1]}`},
		{"properties not an object", `{"properties": []}`},
		{"trailing data", `{} {}`},
		{"truncated", `{"title": "x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestKeyFor(t *testing.T) {
	tests := []struct {
		file     string
		id       string
		expected string
	}{
		{"00.ref.glTFid.schema.json", "glTFid.schema.json", "glTFid.schema.json"},
		{"00.ref.glTFChildOfRootProperty.schema.json", "", "glTFChildOfRootProperty.schema.json"},
		{"01.vrm.blendshape.bind.schema.json", "", "vrm.blendshape.bind.schema.json"},
		{"vrm.schema.json", "", "vrm.schema.json"},
		{"04.VRMC_vrm.schema.json", "https://example.com/vrm.json", "https://example.com/vrm.json"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			assert.Equal(t, tt.expected, KeyFor(tt.file, &Schema{ID: tt.id}))
		})
	}

	assert.True(t, IsReferenceFile("00.ref.glTFid.schema.json"))
	assert.False(t, IsReferenceFile("01.vrm.meta.schema.json"))
	assert.False(t, IsReferenceFile("ref.glTFid.schema.json"))
}

func TestCatalog_Register(t *testing.T) {
	c := NewCatalog("1.0")
	node := &Schema{Title: "A"}

	e, err := c.Register("01.a.schema.json", node)
	require.NoError(t, err)
	assert.Equal(t, "a.schema.json", e.Key)
	assert.False(t, e.Reference)

	again, err := c.Register("01.a.schema.json", node)
	require.NoError(t, err)
	assert.Same(t, e, again)
	assert.Equal(t, 1, c.Len())

	_, err = c.Register("02.a.schema.json", &Schema{Title: "B"})
	require.ErrorIs(t, err, diagnostic.ErrDuplicateReference)

	var dup *diagnostic.DuplicateReferenceError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "01.a.schema.json", dup.PreviousFile)
	assert.Equal(t, "a.schema.json", dup.Ref)

	_, ok := c.Resolve("missing.schema.json")
	assert.False(t, ok)

	byNode, ok := c.EntryOf(node)
	require.True(t, ok)
	assert.Same(t, e, byNode)
}

func TestLoader_CatalogIdentity(t *testing.T) {
	for _, version := range []string{"0.0", "1.0"} {
		t.Run(version, func(t *testing.T) {
			catalog, err := NewLoader(4).LoadDir(context.Background(), schemaRoot, version)
			require.NoError(t, err)

			files, err := ListSchemaFiles(filepath.Join(schemaRoot, version))
			require.NoError(t, err)
			require.Len(t, catalog.Entries(), len(files))

			for i, e := range catalog.Entries() {
				assert.Equal(t, files[i], e.File, "entries follow sorted file order")

				resolved, ok := catalog.Resolve(e.Key)
				require.True(t, ok, e.Key)
				assert.Same(t, e.Schema, resolved.Schema)
			}

			id, ok := catalog.Resolve("glTFid.schema.json")
			require.True(t, ok)
			assert.True(t, id.Reference)
			assert.Equal(t, "integer", id.Schema.Type)
		})
	}
}

func TestLoader_ForwardReferenceIndependentOfOrder(t *testing.T) {
	dir := t.TempDir()
	version := filepath.Join(dir, "1.0")
	require.NoError(t, os.MkdirAll(version, 0o755))

	// The referencing file sorts before the file it references.
	require.NoError(t, os.WriteFile(filepath.Join(version, "01.a.schema.json"),
		[]byte(`{"title":"A","type":"object","properties":{"b":{"$ref":"b.schema.json"}}}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(version, "09.b.schema.json"),
		[]byte(`{"title":"B","type":"object","properties":{"x":{"type":"number"}}}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(version, "notes.txt"), []byte("ignored"), 0o644))

	catalog, err := NewLoader(1).LoadDir(context.Background(), dir, "1.0")
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())

	b, ok := catalog.Resolve("b.schema.json")
	require.True(t, ok)
	assert.Equal(t, "B", b.Schema.Title)
}

func TestLoader_ParseErrorNamesFile(t *testing.T) {
	dir := t.TempDir()
	version := filepath.Join(dir, "0.0")
	require.NoError(t, os.MkdirAll(version, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(version, "01.bad.schema.json"), []byte(`{"title":`), 0o644))

	_, err := NewLoader(2).LoadDir(context.Background(), dir, "0.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "01.bad.schema.json")
}

func TestLoader_MissingDirectory(t *testing.T) {
	_, err := NewLoader(1).LoadDir(context.Background(), t.TempDir(), "9.9")
	assert.Error(t, err)
}
