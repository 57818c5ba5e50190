package plan

import (
	"fmt"

	"vrm-type-generator/internal/analyze"
	"vrm-type-generator/internal/diagnostic"
	"vrm-type-generator/internal/naming"
	"vrm-type-generator/primitive"
)

// effectiveType returns the declared type of prop, or the type a composed
// base declares for the same property name. Bases are searched depth first
// in allOf order; the empty string means undetermined.
func (r *Resolver) effectiveType(name string, prop *analyze.Schema, allOf []*analyze.Schema, at site) (string, error) {
	if prop.Type != "" {
		return prop.Type, nil
	}

	return r.inheritedType(name, allOf, make(map[*analyze.Schema]bool), at)
}

func (r *Resolver) inheritedType(
	name string,
	allOf []*analyze.Schema,
	visited map[*analyze.Schema]bool,
	at site,
) (string, error) {
	for _, member := range allOf {
		if member.Ref == "" {
			continue
		}

		e, ok := r.catalog.Resolve(member.Ref)
		if !ok {
			return "", r.missingRef(at, member.Ref, "allOf base is not in the catalog")
		}

		base := e.Schema
		if visited[base] {
			continue
		}

		visited[base] = true

		if bp := base.Property(name); bp != nil {
			if bp.Type != "" {
				return bp.Type, nil
			}

			if len(bp.AllOf) > 0 && r.isIdentifierKey(bp.AllOf[0].Ref) {
				return primitive.KindInteger.SchemaType(), nil
			}
		}

		typ, err := r.inheritedType(name, base.AllOf, visited, at)
		if err != nil || typ != "" {
			return typ, err
		}
	}

	return "", nil
}

// refType resolves a $ref to the type it names.
func (r *Resolver) refType(ref string, at site) (resolved, error) {
	e, ok := r.catalog.Resolve(ref)
	if !ok {
		return resolved{}, r.missingRef(at, ref, "reference is not in the catalog")
	}

	if r.isIdentifier(e) {
		return resolved{ref: scalarRef(primitive.KindInteger)}, nil
	}

	t := e.Schema

	switch {
	case t.IsStringEnum(), t.Type == "object" && t.HasProperties():
		return r.namedType(e, at, ref)
	case primitive.FromSchemaType(t.Type).IsValid():
		return resolved{ref: scalarRef(primitive.FromSchemaType(t.Type))}, nil
	default:
		return resolved{}, &diagnostic.UnknownTypeError{
			Location: r.location(at, ref),
			Type:     t.Type,
			Reason:   fmt.Sprintf("%s is neither an enum nor an object with properties", e.File),
		}
	}
}

// namedType refers to the top-level declaration of e and records the
// dependency for ordering.
func (r *Resolver) namedType(e *analyze.Entry, at site, ref string) (resolved, error) {
	if e.Reference {
		return resolved{}, &diagnostic.UnresolvedReferenceError{
			Location: r.location(at, ref),
			Reason:   "only the reference schema " + e.File + " declares this type and it is never emitted",
		}
	}

	t := e.Schema

	var res resolved

	if len(t.Enum) > 0 {
		res = resolved{
			ref:      TypeRef{Kind: TypeKindEnum, Name: QualName{naming.EnumName(t.Label(e.File))}},
			literals: t,
		}
	} else {
		res = resolved{ref: TypeRef{Kind: TypeKindStruct, Name: QualName{naming.StructName(t.Label(e.File))}}}
	}

	if at.root != nil {
		at.root.deps = append(at.root.deps, res.ref.Name.Root())
	}

	return res, nil
}

// composedType handles a property made only of allOf members. It reports
// false when every member is an interface marker.
func (r *Resolver) composedType(prop *analyze.Schema, at site) (resolved, bool, error) {
	var (
		found resolved
		count int
	)

	for _, member := range prop.AllOf {
		if member.Ref == "" {
			return resolved{}, false, &diagnostic.UnhandledCompositionError{
				Location: r.location(at, ""),
				Reason:   "allOf member without $ref",
			}
		}

		e, ok := r.catalog.Resolve(member.Ref)
		if !ok {
			return resolved{}, false, r.missingRef(at, member.Ref, "allOf member is not in the catalog")
		}

		var (
			res resolved
			err error
		)

		switch t := e.Schema; {
		case r.isIdentifier(e):
			res = resolved{ref: scalarRef(primitive.KindInteger)}
		case r.isInterface(e):
			continue
		case len(t.Enum) > 0, t.HasProperties():
			res, err = r.namedType(e, at, member.Ref)
			if err != nil {
				return resolved{}, false, err
			}
		default:
			return resolved{}, false, &diagnostic.UnhandledCompositionError{
				Location: r.location(at, member.Ref),
				Reason:   e.File + " is neither an identifier, an interface, an enum nor an object",
			}
		}

		count++
		found = res
	}

	switch count {
	case 0:
		r.unit.Diagnostics.AddWarning(diagnostic.CodeSkippedProperty,
			"property composes only interface markers and is skipped", r.location(at, ""))

		return resolved{}, false, nil
	case 1:
		return found, true, nil
	default:
		return resolved{}, false, &diagnostic.UnhandledCompositionError{
			Location: r.location(at, ""),
			Reason:   fmt.Sprintf("%d allOf members contribute a type", count),
		}
	}
}

func (r *Resolver) isIdentifierKey(key string) bool {
	if key == "" {
		return false
	}

	if key == r.markers.Identifier {
		return true
	}

	e, ok := r.catalog.Resolve(key)

	return ok && r.isIdentifier(e)
}

func (r *Resolver) isIdentifier(e *analyze.Entry) bool {
	return e.Key == r.markers.Identifier || e.Schema.ID == r.markers.Identifier
}

func (r *Resolver) isInterface(e *analyze.Entry) bool {
	return e.Key == r.markers.Interface || e.Schema.ID == r.markers.Interface
}
