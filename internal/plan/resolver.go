package plan

import (
	"strings"

	"vrm-type-generator/internal/analyze"
	"vrm-type-generator/internal/diagnostic"
	"vrm-type-generator/internal/match"
	"vrm-type-generator/internal/naming"
)

// Markers name the catalog keys of the two special base schemas.
type Markers struct {
	// Identifier resolves to uint32_t wherever it is referenced.
	Identifier string
	// Interface contributes nothing when composed with allOf.
	Interface string
}

// DefaultMarkers returns the glTF marker keys.
func DefaultMarkers() Markers {
	return Markers{
		Identifier: "glTFid.schema.json",
		Interface:  "glTFProperty.schema.json",
	}
}

// Resolver turns one version's catalog into a Unit.
type Resolver struct {
	catalog *analyze.Catalog
	markers Markers
	unit    *Unit

	// registry maps qualified names to the schema node that declared them.
	registry map[string]*analyze.Schema
	// roots holds top-level declarations in first-seen order.
	roots []*root
}

// root is a top-level declaration with the top-level names it uses.
type root struct {
	decl Decl
	file string
	deps []string
}

// site identifies where in a file resolution currently is.
type site struct {
	file string
	path []string
	root *root
}

func (s site) at(property string) site {
	path := make([]string, 0, len(s.path)+1)
	path = append(path, s.path...)
	s.path = append(path, property)

	return s
}

func (r *Resolver) location(s site, ref string) diagnostic.Location {
	return diagnostic.Location{
		Version:  r.catalog.Version,
		File:     s.file,
		Property: strings.Join(s.path, "."),
		Ref:      ref,
	}
}

// missingRef reports a reference key the catalog does not know, with the
// closest registered key as a hint.
func (r *Resolver) missingRef(at site, ref, reason string) error {
	return &diagnostic.UnresolvedReferenceError{
		Location: r.location(at, ref),
		Reason:   reason + match.Hint(ref, r.catalog.Keys()),
	}
}

// NewResolver creates a Resolver for one version.
func NewResolver(catalog *analyze.Catalog, markers Markers) *Resolver {
	return &Resolver{
		catalog:  catalog,
		markers:  markers,
		unit:     &Unit{Version: catalog.Version, index: make(map[string]Decl)},
		registry: make(map[string]*analyze.Schema),
	}
}

// Plan resolves catalog with the given markers.
func Plan(catalog *analyze.Catalog, markers Markers) (*Unit, error) {
	return NewResolver(catalog, markers).Resolve()
}

// Resolve declares every emitting root schema and orders the result.
// The first error aborts resolution.
func (r *Resolver) Resolve() (*Unit, error) {
	for _, e := range r.catalog.Entries() {
		if e.Reference {
			continue
		}

		if err := r.declareRoot(e); err != nil {
			return nil, err
		}
	}

	if err := r.order(); err != nil {
		return nil, err
	}

	r.flatten()

	return r.unit, nil
}

func (r *Resolver) declareRoot(e *analyze.Entry) error {
	s := e.Schema
	rt := &root{file: e.File}
	at := site{file: e.File, root: rt}

	switch {
	case s.IsStringEnum():
		decl, err := r.declareEnum(QualName{naming.EnumName(s.Label(e.File))}, s, at)
		if err != nil {
			return err
		}

		rt.decl = decl
	case s.Type == "object" && s.HasProperties():
		decl, err := r.declareStruct(QualName{naming.StructName(s.Label(e.File))}, s, at)
		if err != nil {
			return err
		}

		rt.decl = decl
	case s.Type == "object" && s.AdditionalProperties != nil:
		return &diagnostic.UnhandledAdditionalPropertiesError{Location: r.location(at, "")}
	default:
		return &diagnostic.UnknownTypeError{
			Location: r.location(at, ""),
			Type:     s.Type,
			Reason:   "root schema is neither a string enum nor an object with properties",
		}
	}

	if rt.decl != nil {
		r.roots = append(r.roots, rt)
	}

	return nil
}

// claim registers name for src. It reports false when src already owns the
// name, and fails when another node does.
func (r *Resolver) claim(name QualName, src *analyze.Schema, at site) (bool, error) {
	key := name.String()
	if key == "" {
		return false, &diagnostic.UnknownTypeError{
			Location: r.location(at, ""),
			Reason:   "title sanitizes to an empty name",
		}
	}

	if prev, ok := r.registry[key]; ok {
		if prev == src {
			return false, nil
		}

		return false, &diagnostic.NameCollisionError{
			Location:     r.location(at, ""),
			Name:         key,
			PreviousFile: r.ownerFile(key),
		}
	}

	r.registry[key] = src

	return true, nil
}

func (r *Resolver) ownerFile(key string) string {
	switch d := r.unit.index[key].(type) {
	case *StructDecl:
		return d.File
	case *EnumDecl:
		return d.File
	default:
		return "an enclosing declaration"
	}
}

func (r *Resolver) declareEnum(name QualName, s *analyze.Schema, at site) (*EnumDecl, error) {
	fresh, err := r.claim(name, s, at)
	if err != nil || !fresh {
		return nil, err
	}

	decl := &EnumDecl{Name: name, File: at.file, Source: s}
	seen := make(map[string]string, len(s.Enum))

	for _, literal := range s.Enum {
		variant := naming.VariantName(literal)
		if prev, ok := seen[variant]; ok {
			return nil, &diagnostic.NameCollisionError{
				Location:     r.location(at, ""),
				Name:         name.Child(variant).String(),
				PreviousFile: at.file + " (literal " + prev + ")",
			}
		}

		seen[variant] = literal
		decl.Variants = append(decl.Variants, Variant{Literal: literal, Name: variant})
	}

	r.unit.index[name.String()] = decl

	return decl, nil
}

func (r *Resolver) declareStruct(name QualName, s *analyze.Schema, at site) (*StructDecl, error) {
	fresh, err := r.claim(name, s, at)
	if err != nil || !fresh {
		return nil, err
	}

	decl := &StructDecl{Name: name, File: at.file, Source: s}
	r.unit.index[name.String()] = decl

	for _, p := range s.Properties {
		if p.Name == "extensions" || p.Name == "extras" {
			continue
		}

		field, ok, err := r.resolveField(decl, p.Name, p.Schema, s, at.at(p.Name))
		if err != nil {
			return nil, err
		}

		if ok {
			decl.Fields = append(decl.Fields, field)
		}
	}

	if len(decl.Fields) == 0 {
		r.unit.Diagnostics.AddWarning(diagnostic.CodeEmptyStruct,
			name.String()+" declares no typed fields", r.location(at, ""))
	}

	return decl, nil
}

// flatten fills Enums and Structs from Decls, nested declarations first.
func (r *Resolver) flatten() {
	var walk func(d Decl)

	walk = func(d Decl) {
		switch d := d.(type) {
		case *EnumDecl:
			r.unit.Enums = append(r.unit.Enums, d)
		case *StructDecl:
			for _, f := range d.Fields {
				if f.Nested != nil {
					walk(f.Nested)
				}
			}

			r.unit.Structs = append(r.unit.Structs, d)
		}
	}

	for _, d := range r.unit.Decls {
		walk(d)
	}
}
