package plan

import (
	"vrm-type-generator/internal/analyze"
	"vrm-type-generator/internal/diagnostic"
	"vrm-type-generator/internal/naming"
	"vrm-type-generator/primitive"
)

// resolved is a classified type together with what classification produced
// on the way.
type resolved struct {
	ref TypeRef
	// nested is a declaration introduced by the field, if any.
	nested Decl
	// literals is the enum node holding the literals of an enum type.
	literals *analyze.Schema
}

// resolveField classifies one property of parent. It reports false when the
// property contributes no field.
func (r *Resolver) resolveField(
	parent *StructDecl,
	name string,
	prop *analyze.Schema,
	enclosing *analyze.Schema,
	at site,
) (Field, bool, error) {
	typ, err := r.effectiveType(name, prop, enclosing.AllOf, at)
	if err != nil {
		return Field{}, false, err
	}

	res, ok, err := r.classify(parent.Name, name, typ, prop, at)
	if err != nil || !ok {
		return Field{}, false, err
	}

	field := Field{
		Name:     naming.Identifier(name),
		Key:      name,
		Type:     res.ref,
		Required: enclosing.IsRequired(name),
		Nested:   res.nested,
	}

	if field.Default, err = r.resolveDefault(res, prop, at); err != nil {
		return Field{}, false, err
	}

	return field, true, nil
}

// classify applies the classification rules in precedence order.
func (r *Resolver) classify(scope QualName, name, typ string, prop *analyze.Schema, at site) (resolved, bool, error) {
	switch kind := primitive.FromSchemaType(typ); {
	case kind == primitive.KindString && len(prop.Enum) > 0:
		qn := scope.Child(naming.EnumName(prop.Label(name)))

		decl, err := r.declareEnum(qn, prop, at)
		if err != nil {
			return resolved{}, false, err
		}

		res := resolved{ref: TypeRef{Kind: TypeKindEnum, Name: qn}, literals: prop}
		if decl != nil {
			res.nested = decl
		}

		return res, true, nil
	case kind.IsValid():
		return resolved{ref: scalarRef(kind)}, true, nil
	case primitive.MapKindFromName(typ).IsValid():
		return resolved{ref: TypeRef{Kind: TypeKindMap, Map: primitive.MapKindFromName(typ)}}, true, nil
	case typ == "object" && prop.Ref == "":
		res, err := r.classifyObject(scope, name, prop, at)

		return res, err == nil, err
	case typ == "array":
		res, err := r.classifyArray(scope, name, prop, at)

		return res, err == nil, err
	case prop.Ref != "":
		res, err := r.refType(prop.Ref, at)

		return res, err == nil, err
	case len(prop.AllOf) > 0:
		return r.composedType(prop, at)
	default:
		return resolved{}, false, &diagnostic.UnknownTypeError{
			Location: r.location(at, ""),
			Type:     typ,
		}
	}
}

func (r *Resolver) classifyObject(scope QualName, name string, prop *analyze.Schema, at site) (resolved, error) {
	switch {
	case isVector3(prop):
		return resolved{ref: TypeRef{Kind: TypeKindVector3}}, nil
	case primitive.MapKindFromName(name).IsValid():
		return resolved{ref: TypeRef{Kind: TypeKindMap, Map: primitive.MapKindFromName(name)}}, nil
	case prop.HasProperties():
		qn := scope.Child(naming.StructName(name))

		decl, err := r.declareStruct(qn, prop, at)
		if err != nil {
			return resolved{}, err
		}

		res := resolved{ref: TypeRef{Kind: TypeKindStruct, Name: qn}}
		if decl != nil {
			res.nested = decl
		}

		return res, nil
	case prop.AdditionalProperties != nil:
		return r.catchAllType(prop.AdditionalProperties, at)
	default:
		return resolved{}, &diagnostic.UnknownTypeError{
			Location: r.location(at, ""),
			Type:     "object",
			Reason:   "object declares neither properties nor additionalProperties",
		}
	}
}

// catchAllType gives a catch-all-only object the type of its catch-all
// target directly.
func (r *Resolver) catchAllType(target *analyze.Schema, at site) (resolved, error) {
	if target.Ref == "" {
		return resolved{}, &diagnostic.UnknownTypeError{
			Location: r.location(at, ""),
			Type:     target.Type,
			Reason:   "additionalProperties without $ref",
		}
	}

	return r.refType(target.Ref, at)
}

func (r *Resolver) classifyArray(scope QualName, name string, prop *analyze.Schema, at site) (resolved, error) {
	items := prop.Items
	if items == nil {
		return resolved{}, &diagnostic.UnknownTypeError{
			Location: r.location(at, ""),
			Type:     "array",
			Reason:   "array without items",
		}
	}

	itemSite := at.at("items")

	switch kind := primitive.FromSchemaType(items.Type); {
	case items.Ref != "":
		elem, err := r.refType(items.Ref, itemSite)
		if err != nil {
			return resolved{}, err
		}

		return resolved{ref: arrayRef(elem.ref), literals: elem.literals}, nil
	case kind.IsValid():
		return resolved{ref: arrayRef(scalarRef(kind))}, nil
	case items.Type == "object" && items.HasProperties():
		qn := scope.Child(naming.ItemStructName(name))

		decl, err := r.declareStruct(qn, items, at)
		if err != nil {
			return resolved{}, err
		}

		res := resolved{ref: arrayRef(TypeRef{Kind: TypeKindStruct, Name: qn})}
		if decl != nil {
			res.nested = decl
		}

		return res, nil
	case items.Type == "" && len(items.AllOf) > 0:
		elem, ok, err := r.composedType(items, itemSite)
		if err != nil {
			return resolved{}, err
		}

		if !ok {
			return resolved{}, &diagnostic.UnhandledCompositionError{
				Location: r.location(itemSite, ""),
				Reason:   "array items compose only interface markers",
			}
		}

		return resolved{ref: arrayRef(elem.ref), literals: elem.literals}, nil
	default:
		return resolved{}, &diagnostic.UnknownTypeError{
			Location: r.location(itemSite, ""),
			Type:     items.Type,
		}
	}
}

// isVector3 reports whether s has numeric x, y and z properties.
func isVector3(s *analyze.Schema) bool {
	for _, axis := range []string{"x", "y", "z"} {
		p := s.Property(axis)
		if p == nil || p.Type != "number" {
			return false
		}
	}

	return true
}
