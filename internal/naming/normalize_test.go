package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"vrm.blendshape.bind", "blendshape_bind"},
		{"vrm.secondaryanimation.collidergroup", "secondaryanimation_collidergroup"},
		{"VRMC_vrm", "vrm"},
		{"VRMCvrm", "vrm"},
		{"VRMC_vrm.meta.schema.json", "meta"},
		{"03.vrm.firstperson.schema.json", "firstperson"},
		{"VRMC_springBone.shape", "springBone_shape"},
		{"path/to/thing", "path_to_thing"},
		{"Material Color Bind", "MaterialColorBind"},
		{"vrm", "vrm"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestStructName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"vrm.blendshape.bind", "BlendshapeBind"},
		{"vrm.secondaryanimation.collidergroup", "SecondaryanimationCollidergroup"},
		{"VRMC_vrm", "Vrm"},
		{"vrm", "Vrm"},
		{"MaterialColorBind", "MaterialColorBind"},
		{"springBone_shape", "SpringBoneShape"},
		{"preset", "Preset"},
		{"a-b", "A_b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, StructName(tt.input))
		})
	}
}

func TestEnumName(t *testing.T) {
	assert.Equal(t, "PresetName", EnumName("presetName"))
	assert.Equal(t, "LookAtType", EnumName("LookAtType"))
	assert.Equal(t, "Blendshape_group", EnumName("vrm.blendshape.group"))
}

func TestVariantName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"red", "Red"},
		{"green", "Green"},
		{"blink_l", "Blink_l"},
		{"CC_BY_NC", "CC_BY_NC"},
		{"CC-BY", "CC_BY"},
		{"3d", "_3d"},
		{"emissionColor", "EmissionColor"},
		{"a b", "A_b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, VariantName(tt.input))
		})
	}
}

func TestItemStructName(t *testing.T) {
	assert.Equal(t, "Collider", ItemStructName("colliders"))
	assert.Equal(t, "Bind", ItemStructName("binds"))
	assert.Equal(t, "HumanBone", ItemStructName("humanBones"))
	assert.Equal(t, "MeshAnnotation", ItemStructName("meshAnnotations"))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "X", Capitalize("x"))
	assert.Equal(t, "XRange", Capitalize("xRange"))
}
