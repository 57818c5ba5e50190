package diagnostic

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationString(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want string
	}{
		{"empty", Location{}, ""},
		{"file only", Location{File: "vrm.meta.schema.json"}, "vrm.meta.schema.json"},
		{"version only", Location{Version: "1.0"}, "version 1.0"},
		{
			"full",
			Location{Version: "0.0", File: "vrm.blendshape.bind.schema.json", Property: "mesh", Ref: "glTFid.schema.json"},
			`0.0/vrm.blendshape.bind.schema.json: property "mesh": ref "glTFid.schema.json"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.loc.String())
		})
	}
}

func TestTypedErrorsMatchSentinels(t *testing.T) {
	loc := Location{Version: "1.0", File: "VRMC_vrm.schema.json", Property: "humanoid"}

	tests := []struct {
		err      Error
		sentinel error
		code     Code
	}{
		{&UnresolvedReferenceError{Location: loc, Reason: "missing"}, ErrUnresolvedReference, CodeUnresolvedReference},
		{&UnknownTypeError{Location: loc, Type: "null"}, ErrUnknownType, CodeUnknownType},
		{&UnhandledCompositionError{Location: loc, Reason: "anyOf"}, ErrUnhandledComposition, CodeUnhandledComposition},
		{&UnhandledAdditionalPropertiesError{Location: loc}, ErrUnhandledAdditionalProperties, CodeUnhandledAdditionalProperties},
		{&NameCollisionError{Location: loc, Name: "Humanoid", PreviousFile: "a.json"}, ErrNameCollision, CodeNameCollision},
		{&CyclicReferenceError{Location: loc, Names: []string{"A", "B"}}, ErrCyclicReference, CodeCyclicReference},
		{&InvalidDefaultError{Location: loc, Cause: errors.New("bad")}, ErrInvalidDefault, CodeInvalidDefault},
		{&DuplicateReferenceError{Location: loc, PreviousFile: "b.json"}, ErrDuplicateReference, CodeDuplicateReference},
		{&ConfigError{Location: loc, Reason: "empty"}, ErrInvalidConfig, CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			wrapped := fmt.Errorf("generate: %w", tt.err)

			assert.ErrorIs(t, wrapped, tt.sentinel)
			assert.Equal(t, tt.code, tt.err.Code())
			assert.Equal(t, loc, tt.err.Where())
			assert.Contains(t, tt.err.Error(), `1.0/VRMC_vrm.schema.json: property "humanoid"`)

			var typed Error
			require.ErrorAs(t, wrapped, &typed)
			assert.Equal(t, tt.err.Detail(), typed.Detail())
		})
	}
}

func TestUnknownTypeErrorUndetermined(t *testing.T) {
	err := &UnknownTypeError{Location: Location{File: "x.json"}}
	assert.Equal(t, "x.json: undetermined type", err.Error())
}

func TestInvalidDefaultErrorUnwrap(t *testing.T) {
	cause := errors.New("not a number")
	err := &InvalidDefaultError{Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "invalid default value: not a number", err.Error())
}

func TestDiagnosticsAddError(t *testing.T) {
	var d Diagnostics

	assert.False(t, d.HasErrors())

	d.AddError(&UnresolvedReferenceError{Location: Location{File: "a.json", Ref: "b.json"}})
	d.AddError(errors.New("plain"))
	d.AddWarning(CodeSkippedProperty, "skipped", Location{Property: "x"})

	require.True(t, d.HasErrors())
	require.Len(t, d.Errors, 2)
	assert.Equal(t, CodeUnresolvedReference, d.Errors[0].Code)
	assert.Equal(t, "b.json", d.Errors[0].Location.Ref)
	assert.Equal(t, `a.json: ref "b.json": [unresolved-reference] unresolved reference`, d.Errors[0].String())
	assert.Equal(t, "plain", d.Errors[1].String())
	assert.Len(t, d.Warnings, 1)
	assert.Equal(t, "warning", d.Warnings[0].Severity.String())

	var other Diagnostics
	other.AddWarning(CodeEmptyStruct, "empty", Location{Version: "1.0"})
	d.Merge(other)
	assert.Len(t, d.Warnings, 2)
	assert.Equal(t, "version 1.0: [empty-struct] empty", d.Warnings[1].String())
}
