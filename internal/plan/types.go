package plan

import (
	"strings"

	"vrm-type-generator/internal/analyze"
	"vrm-type-generator/internal/diagnostic"
	"vrm-type-generator/primitive"
)

//go:generate go tool stringer -type=TypeKind -trimprefix=TypeKind -output=typekind_string.go

// TypeKind is the shape of a resolved field type.
type TypeKind int

const (
	TypeKindScalar  TypeKind = iota // std::string, uint32_t, float, bool
	TypeKindEnum                    // enum class declared in this unit
	TypeKindStruct                  // struct declared in this unit
	TypeKindVector3                 // prelude Vector3
	TypeKindMap                     // std::unordered_map keyed by string
	TypeKindArray                   // std::vector of Elem
)

// QualName is a declaration name qualified by its enclosing structs,
// outermost first.
type QualName []string

// String joins the parts with the C++ scope operator.
func (q QualName) String() string {
	return q.Join("::")
}

// Join joins the parts with sep.
func (q QualName) Join(sep string) string {
	return strings.Join(q, sep)
}

// Local returns the innermost name.
func (q QualName) Local() string {
	if len(q) == 0 {
		return ""
	}

	return q[len(q)-1]
}

// Root returns the outermost name.
func (q QualName) Root() string {
	if len(q) == 0 {
		return ""
	}

	return q[0]
}

// Child returns a new name nested inside q.
func (q QualName) Child(name string) QualName {
	out := make(QualName, 0, len(q)+1)
	out = append(out, q...)

	return append(out, name)
}

// TypeRef describes the type of a field.
type TypeRef struct {
	Kind TypeKind
	// Scalar is set for TypeKindScalar.
	Scalar primitive.KindEnum
	// Name is set for TypeKindEnum and TypeKindStruct.
	Name QualName
	// Map is set for TypeKindMap.
	Map primitive.MapKindEnum
	// Elem is set for TypeKindArray.
	Elem *TypeRef
}

// String returns a short human-readable description.
func (t TypeRef) String() string {
	switch t.Kind {
	case TypeKindScalar:
		return t.Scalar.SchemaType()
	case TypeKindEnum:
		return "enum " + t.Name.String()
	case TypeKindStruct:
		return "struct " + t.Name.String()
	case TypeKindVector3:
		return "Vector3"
	case TypeKindMap:
		return "map " + t.Map.String()
	case TypeKindArray:
		if t.Elem == nil {
			return "array"
		}

		return "array of " + t.Elem.String()
	default:
		return t.Kind.String()
	}
}

func scalarRef(k primitive.KindEnum) TypeRef {
	return TypeRef{Kind: TypeKindScalar, Scalar: k}
}

func arrayRef(elem TypeRef) TypeRef {
	return TypeRef{Kind: TypeKindArray, Elem: &elem}
}

// Decl is a struct or enum declaration.
type Decl interface {
	QualifiedName() QualName
	isDecl()
}

// Variant is one enum value: the literal it reads from and writes to, and
// its C++ name.
type Variant struct {
	Literal string
	Name    string
}

// EnumDecl is an enum class with variants in source literal order.
type EnumDecl struct {
	Name     QualName
	Variants []Variant
	File     string
	Source   *analyze.Schema
}

func (d *EnumDecl) QualifiedName() QualName { return d.Name }
func (*EnumDecl) isDecl()                   {}

// VariantByLiteral returns the variant that reads from literal.
func (d *EnumDecl) VariantByLiteral(literal string) (Variant, bool) {
	for _, v := range d.Variants {
		if v.Literal == literal {
			return v, true
		}
	}

	return Variant{}, false
}

// VariantByName returns the variant called name.
func (d *EnumDecl) VariantByName(name string) (Variant, bool) {
	for _, v := range d.Variants {
		if v.Name == name {
			return v, true
		}
	}

	return Variant{}, false
}

// StructDecl is a struct with fields in source property order.
type StructDecl struct {
	Name   QualName
	Fields []Field
	File   string
	Source *analyze.Schema
}

func (d *StructDecl) QualifiedName() QualName { return d.Name }
func (*StructDecl) isDecl()                   {}

// Field returns the field read from key.
func (d *StructDecl) Field(key string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Key == key {
			return f, true
		}
	}

	return Field{}, false
}

// Field is one struct member.
type Field struct {
	// Name is the C++ member name.
	Name string
	// Key is the JSON object key.
	Key      string
	Type     TypeRef
	Required bool
	// Default is nil when the schema declares none. Otherwise it holds a
	// string, uint32, float64 or bool for scalars, a Variant for enums and
	// a []any of scalars or Variants for arrays.
	Default any
	// Nested is the declaration this field introduced, placed right before
	// the field inside the parent struct.
	Nested Decl
}

// AlwaysWritten reports whether the field is written without a default
// comparison: required fields, nested or referenced structs, Vector3 and
// containers.
func (f Field) AlwaysWritten() bool {
	if f.Required {
		return true
	}

	switch f.Type.Kind {
	case TypeKindStruct, TypeKindVector3, TypeKindMap, TypeKindArray:
		return true
	default:
		return false
	}
}

// Unit is the resolved output for one version.
type Unit struct {
	Version string
	// Decls are the top-level declarations in emission order.
	Decls []Decl
	// Enums lists every enum, nested ones included, in emission order.
	Enums []*EnumDecl
	// Structs lists every struct with nested structs before their parent.
	Structs []*StructDecl
	// Diagnostics holds the warnings collected during resolution.
	Diagnostics diagnostic.Diagnostics

	index map[string]Decl
}

// Struct looks up a struct by qualified name, e.g. "BlendshapeGroup" or
// "Expressions::Preset".
func (u *Unit) Struct(name string) (*StructDecl, bool) {
	d, ok := u.index[name].(*StructDecl)

	return d, ok
}

// Enum looks up an enum by qualified name.
func (u *Unit) Enum(name string) (*EnumDecl, bool) {
	d, ok := u.index[name].(*EnumDecl)

	return d, ok
}

// Names returns the qualified names of every declaration, top-level first
// in emission order, each followed by its nested declarations.
func (u *Unit) Names() []string {
	var names []string

	var walk func(d Decl)

	walk = func(d Decl) {
		names = append(names, d.QualifiedName().String())

		if s, ok := d.(*StructDecl); ok {
			for _, f := range s.Fields {
				if f.Nested != nil {
					walk(f.Nested)
				}
			}
		}
	}

	for _, d := range u.Decls {
		walk(d)
	}

	return names
}

// UsesVector3 reports whether any struct has a Vector3 field.
func (u *Unit) UsesVector3() bool {
	for _, s := range u.Structs {
		for _, f := range s.Fields {
			if f.Type.Kind == TypeKindVector3 {
				return true
			}
		}
	}

	return false
}
