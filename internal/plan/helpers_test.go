package plan

import (
	"context"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"vrm-type-generator/internal/analyze"
)

const schemaRoot = "../../testdata/schema"

// schemaFile is one inline schema document; files are registered in slice
// order.
type schemaFile struct {
	name string
	body string
}

var markerFiles = []schemaFile{
	{"00.ref.glTFid.schema.json", `{"$id":"glTFid.schema.json","title":"glTF Id","type":"integer"}`},
	{"00.ref.glTFProperty.schema.json", `{"$id":"glTFProperty.schema.json","title":"glTF Property","type":"object","properties":{"extensions":{},"extras":{}}}`},
}

func catalogOf(t *testing.T, version string, files ...schemaFile) *analyze.Catalog {
	t.Helper()

	c := analyze.NewCatalog(version)

	for _, f := range append(append([]schemaFile{}, markerFiles...), files...) {
		s, err := analyze.Parse([]byte(f.body))
		require.NoError(t, err, f.name)

		_, err = c.Register(f.name, s)
		require.NoError(t, err, f.name)
	}

	return c
}

func planOf(t *testing.T, files ...schemaFile) (*Unit, error) {
	t.Helper()

	return Plan(catalogOf(t, "1.0", files...), DefaultMarkers())
}

func mustPlan(t *testing.T, files ...schemaFile) *Unit {
	t.Helper()

	unit, err := planOf(t, files...)
	require.NoError(t, err)

	return unit
}

func loadFixture(t *testing.T, version string) *Unit {
	t.Helper()

	catalog, err := analyze.NewLoader(4).LoadDir(context.Background(), schemaRoot, version)
	require.NoError(t, err)

	unit, err := Plan(catalog, DefaultMarkers())
	require.NoError(t, err)

	return unit
}

func mustStruct(t *testing.T, u *Unit, name string) *StructDecl {
	t.Helper()

	s, ok := u.Struct(name)
	require.True(t, ok, "struct %s not declared; have %v", name, u.Names())

	return s
}

func mustField(t *testing.T, s *StructDecl, key string) Field {
	t.Helper()

	f, ok := s.Field(key)
	require.True(t, ok, "field %s not in %s:\n%s", key, s.Name, spew.Sdump(s.Fields))

	return f
}
