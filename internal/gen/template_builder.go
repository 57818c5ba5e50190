package gen

import (
	"bytes"
	"fmt"
	"strings"

	"vrm-type-generator/internal/plan"
)

// versionData holds everything the version template lays out.
type versionData struct {
	Guard     string
	Namespace string
	Prelude   string
	Decls     []string
	Enums     []enumFunctionsData
	Structs   []structFunctionsData
}

// enumDeclData is an enum declaration.
type enumDeclData struct {
	Local    string
	Variants []plan.Variant
}

// structDeclData is a struct declaration.
type structDeclData struct {
	Local   string
	Members []memberData
}

// memberData is one struct member, preceded by the declaration it
// introduced, if any.
type memberData struct {
	Nested string
	Type   string
	Name   string
	Init   string
}

type enumFunctionsData struct {
	Qualified string
	Local     string
	Variants  []plan.Variant
	Branches  []branchData
	Strict    bool
}

// branchData is one literal comparison in an enum from_json chain.
type branchData struct {
	Keyword string
	Literal string
	Name    string
}

type structFunctionsData struct {
	Qualified string
	Fields    []fieldFunctionsData
}

type fieldFunctionsData struct {
	Write string
	Read  string
}

// renderOptions controls spelling choices that do not come from the plan.
type renderOptions struct {
	Guard       string
	Namespace   string
	Prelude     string
	StrictEnums bool
}

// renderVersion renders the guarded namespace block for one unit.
func renderVersion(u *plan.Unit, opts renderOptions) (string, error) {
	data := versionData{
		Guard:     opts.Guard,
		Namespace: opts.Namespace,
		Prelude:   opts.Prelude,
	}

	for _, d := range u.Decls {
		text, err := renderDecl(d)
		if err != nil {
			return "", err
		}

		data.Decls = append(data.Decls, text)
	}

	for _, e := range u.Enums {
		data.Enums = append(data.Enums, buildEnumFunctions(e, opts.StrictEnums))
	}

	for _, s := range u.Structs {
		data.Structs = append(data.Structs, buildStructFunctions(s))
	}

	return execute("version", data)
}

// renderDecl renders a declaration with its nested declarations inline.
func renderDecl(d plan.Decl) (string, error) {
	switch d := d.(type) {
	case *plan.EnumDecl:
		return execute("enum", enumDeclData{Local: d.Name.Local(), Variants: d.Variants})
	case *plan.StructDecl:
		data := structDeclData{Local: d.Name.Local()}

		for _, f := range d.Fields {
			m := memberData{
				Type: cppType(f.Type, d.Name),
				Name: f.Name,
				Init: memberInit(f),
			}

			if f.Nested != nil {
				nested, err := renderDecl(f.Nested)
				if err != nil {
					return "", err
				}

				m.Nested = indent(nested) + "\n"
			}

			data.Members = append(data.Members, m)
		}

		return execute("struct", data)
	default:
		return "", fmt.Errorf("unexpected declaration %T", d)
	}
}

func buildEnumFunctions(e *plan.EnumDecl, strict bool) enumFunctionsData {
	data := enumFunctionsData{
		Qualified: e.Name.String(),
		Local:     e.Name.Local(),
		Variants:  e.Variants,
		Strict:    strict,
	}

	for i, v := range e.Variants {
		keyword := "if"
		if i > 0 {
			keyword = "} else if"
		}

		data.Branches = append(data.Branches, branchData{Keyword: keyword, Literal: v.Literal, Name: v.Name})
	}

	return data
}

func buildStructFunctions(s *plan.StructDecl) structFunctionsData {
	data := structFunctionsData{Qualified: s.Name.String()}

	for _, f := range s.Fields {
		key := quote(f.Key)
		member := f.Name

		write := fmt.Sprintf("VRMC::WriteField(%s, json, in_value.%s)", key, member)
		if !f.AlwaysWritten() {
			write = fmt.Sprintf("VRMC::WriteField(%s, json, in_value.%s, %s)", key, member, defaultExpr(f))
		}

		reader := "VRMC::ReadOptionalField"
		if f.Required {
			reader = "VRMC::ReadRequiredField"
		}

		data.Fields = append(data.Fields, fieldFunctionsData{
			Write: write,
			Read:  fmt.Sprintf("%s(%s, json, out_value.%s)", reader, key, member),
		})
	}

	return data
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := cppTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("execute template %q: %w", name, err)
	}

	return buf.String(), nil
}

// indent prefixes every non-empty line with two spaces.
func indent(s string) string {
	lines := strings.SplitAfter(s, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = "  " + line
		}
	}

	return strings.Join(lines, "")
}
