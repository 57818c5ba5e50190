package codec

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"vrm-type-generator/internal/match"
	"vrm-type-generator/internal/plan"
	"vrm-type-generator/primitive"
)

// Options control the behaviours the generated header leaves configurable.
type Options struct {
	// StrictEnums rejects literals matching no variant. Otherwise the
	// field keeps its previous value.
	StrictEnums bool
	// OmitDefaults skips optional fields equal to their default when
	// writing, like VRMC_OMIT_DEFAULT_VALUES.
	OmitDefaults bool
}

// Codec converts between JSON and values of one unit's types.
type Codec struct {
	unit *plan.Unit
	opts Options
}

// New creates a Codec for unit.
func New(unit *plan.Unit, opts Options) *Codec {
	return &Codec{unit: unit, opts: opts}
}

func (c *Codec) structDecl(name string) (*plan.StructDecl, error) {
	d, ok := c.unit.Struct(name)
	if !ok {
		return nil, fmt.Errorf("%w: struct %s in version %s%s", ErrUnknownType, name, c.unit.Version,
			match.Hint(name, c.unit.Names()))
	}

	return d, nil
}

func (c *Codec) enumDecl(name string) (*plan.EnumDecl, error) {
	d, ok := c.unit.Enum(name)
	if !ok {
		return nil, fmt.Errorf("%w: enum %s in version %s%s", ErrUnknownType, name, c.unit.Version,
			match.Hint(name, c.unit.Names()))
	}

	return d, nil
}

// Zero returns a default-constructed value of the struct typeName.
func (c *Codec) Zero(typeName string) (*Object, error) {
	d, err := c.structDecl(typeName)
	if err != nil {
		return nil, err
	}

	return c.zeroStruct(d)
}

func (c *Codec) zeroStruct(d *plan.StructDecl) (*Object, error) {
	obj := newObject(d)

	for _, f := range d.Fields {
		v, err := c.initial(f)
		if err != nil {
			return nil, err
		}

		obj.Fields[f.Key] = v
	}

	return obj, nil
}

// initial is the member initializer value of f.
func (c *Codec) initial(f plan.Field) (any, error) {
	if f.Default != nil {
		return clone(f.Default), nil
	}

	return c.zero(f.Type)
}

func (c *Codec) zero(t plan.TypeRef) (any, error) {
	switch t.Kind {
	case plan.TypeKindScalar:
		return primitive.Zero(t.Scalar), nil
	case plan.TypeKindEnum:
		d, err := c.enumDecl(t.Name.String())
		if err != nil {
			return nil, err
		}

		if len(d.Variants) == 0 {
			return plan.Variant{}, nil
		}

		return d.Variants[0], nil
	case plan.TypeKindStruct:
		d, err := c.structDecl(t.Name.String())
		if err != nil {
			return nil, err
		}

		return c.zeroStruct(d)
	case plan.TypeKindVector3:
		return Vector3{}, nil
	case plan.TypeKindMap:
		return map[string]any{}, nil
	case plan.TypeKindArray:
		return []any{}, nil
	default:
		return nil, fmt.Errorf("zero value of %s", t)
	}
}

// writeDefault is the value an optional field is compared against when
// writing.
func (c *Codec) writeDefault(f plan.Field) (any, error) {
	if f.Default != nil {
		return f.Default, nil
	}

	return c.zero(f.Type)
}

// Decode reads data as the struct typeName.
func (c *Codec) Decode(typeName string, data []byte) (*Object, error) {
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", typeName, err)
	}

	return c.DecodeValue(typeName, tree)
}

// DecodeValue reads a generic JSON tree as the struct typeName.
func (c *Codec) DecodeValue(typeName string, tree any) (*Object, error) {
	d, err := c.structDecl(typeName)
	if err != nil {
		return nil, err
	}

	return c.readStruct(d, tree, "")
}

// Encode writes obj as compact JSON with sorted object keys.
func (c *Codec) Encode(obj *Object) ([]byte, error) {
	tree, err := c.EncodeValue(obj)
	if err != nil {
		return nil, err
	}

	return json.Marshal(tree, json.Deterministic(true))
}

// EncodeValue writes obj as a generic JSON tree.
func (c *Codec) EncodeValue(obj *Object) (map[string]any, error) {
	d, err := c.structDecl(obj.Type)
	if err != nil {
		return nil, err
	}

	return c.writeStruct(d, obj, "")
}

// EncodeEnum returns the literal written for the variant called variant.
func (c *Codec) EncodeEnum(enumName, variant string) (string, error) {
	d, err := c.enumDecl(enumName)
	if err != nil {
		return "", err
	}

	v, ok := d.VariantByName(variant)
	if !ok {
		return "", fmt.Errorf("%w: %s has no variant %s", ErrUnknownLiteral, enumName, variant)
	}

	return v.Literal, nil
}

// DecodeEnum returns the variant read from literal. Unknown literals fail
// regardless of StrictEnums since there is no previous value to keep.
func (c *Codec) DecodeEnum(enumName, literal string) (plan.Variant, error) {
	d, err := c.enumDecl(enumName)
	if err != nil {
		return plan.Variant{}, err
	}

	v, ok := d.VariantByLiteral(literal)
	if !ok {
		return plan.Variant{}, fmt.Errorf("%w: unknown %s value: %s", ErrUnknownLiteral, d.Name.Local(), literal)
	}

	return v, nil
}

// Extension extracts extensions.<name> from a glTF document.
func Extension(doc []byte, name string) ([]byte, error) {
	var gltf struct {
		Extensions map[string]jsontext.Value `json:"extensions"`
	}

	if err := json.Unmarshal(doc, &gltf, json.RejectUnknownMembers(false)); err != nil {
		return nil, fmt.Errorf("decoding glTF document: %w", err)
	}

	ext, ok := gltf.Extensions[name]
	if !ok {
		return nil, &PathError{Path: appendPointer("/extensions", name), Err: ErrMissingField}
	}

	return ext, nil
}
