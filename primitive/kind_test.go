package primitive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vrm-type-generator/primitive"
)

func TestFromSchemaType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, primitive.KindString, primitive.FromSchemaType("string"))
	assert.Equal(t, primitive.KindInteger, primitive.FromSchemaType("integer"))
	assert.Equal(t, primitive.KindNumber, primitive.FromSchemaType("number"))
	assert.Equal(t, primitive.KindBoolean, primitive.FromSchemaType("boolean"))
	assert.False(t, primitive.FromSchemaType("object").IsValid())
	assert.False(t, primitive.FromSchemaType("").IsValid())

	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		assert.Equal(t, k, primitive.FromSchemaType(k.SchemaType()), k.String())
	}
}

func TestNativeType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "std::string", primitive.KindString.NativeType())
	assert.Equal(t, "uint32_t", primitive.KindInteger.NativeType())
	assert.Equal(t, "float", primitive.KindNumber.NativeType())
	assert.Equal(t, "bool", primitive.KindBoolean.NativeType())
	assert.Panics(t, func() { _ = primitive.KindEnum(0).NativeType() })
}

func TestMapKinds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, primitive.MapFloatProperties, primitive.MapKindFromName("floatProperties"))
	assert.Equal(t, primitive.MapTagMap, primitive.MapKindFromName("tagMap"))
	assert.False(t, primitive.MapKindFromName("colliders").IsValid())

	assert.Equal(t, primitive.KindInteger, primitive.MapTextureProperties.ValueKind())
	assert.Equal(t, primitive.KindBoolean, primitive.MapKeywordMap.ValueKind())
	assert.True(t, primitive.MapVectorProperties.IsListValued())
	assert.False(t, primitive.MapFloatProperties.IsListValued())
}

func TestLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind  primitive.KindEnum
		in    any
		lit   string
		typed string
	}{
		{primitive.KindNumber, float64(1), "1.0f", "1.0f"},
		{primitive.KindNumber, 0.5, "0.5f", "0.5f"},
		{primitive.KindNumber, float64(-2), "-2.0f", "-2.0f"},
		{primitive.KindInteger, float64(3), "3", "static_cast<uint32_t>(3)"},
		{primitive.KindBoolean, true, "true", "true"},
		{primitive.KindString, `say "hi"`, `"say \"hi\""`, `std::string("say \"hi\"")`},
	}

	for _, tt := range tests {
		v, err := primitive.Coerce(tt.kind, tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.lit, primitive.Literal(tt.kind, v))
		assert.Equal(t, tt.typed, primitive.TypedLiteral(tt.kind, v))
	}
}

func TestCoerce_Rejects(t *testing.T) {
	t.Parallel()

	_, err := primitive.Coerce(primitive.KindInteger, 1.5)
	require.Error(t, err)

	_, err = primitive.Coerce(primitive.KindInteger, float64(-1))
	require.Error(t, err)

	_, err = primitive.Coerce(primitive.KindString, float64(1))
	require.Error(t, err)

	_, err = primitive.Coerce(primitive.KindBoolean, "true")
	require.Error(t, err)

	_, err = primitive.Coerce(primitive.KindNumber, "1")
	require.EqualError(t, err, "expected number, got string")

	_, err = primitive.Coerce(primitive.KindInteger, true)
	require.EqualError(t, err, "expected integer, got bool")
}

func TestIsNumber(t *testing.T) {
	t.Parallel()

	assert.True(t, primitive.KindInteger.IsNumber())
	assert.True(t, primitive.KindNumber.IsNumber())
	assert.False(t, primitive.KindString.IsNumber())
	assert.False(t, primitive.KindBoolean.IsNumber())
}

func TestListElement(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-1", primitive.ListElement(primitive.KindNumber, float64(-1)))
	assert.Equal(t, "0.25", primitive.ListElement(primitive.KindNumber, 0.25))
	assert.Equal(t, "7", primitive.ListElement(primitive.KindInteger, uint32(7)))
}
