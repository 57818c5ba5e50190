package gen

import (
	"text/template"
)

var templateFuncs = template.FuncMap{
	"quote": quote,
}

var cppTemplates = template.Must(template.New("cpp").Funcs(templateFuncs).Parse(`
{{- define "enum" -}}
enum class {{.Local}} : uint8_t {
{{range $i, $v := .Variants}}{{if $i}},
{{end}}  {{$v.Name}}{{end}}
};
{{end -}}

{{- define "struct" -}}
struct {{.Local}} {
{{range .Members}}{{.Nested}}  {{.Type}} {{.Name}}{{.Init}};
{{end}}  nlohmann::json extensionsAndExtras{};
};
{{end -}}

{{- define "enum_functions" -}}
inline void to_json(nlohmann::json &json, {{.Qualified}} const &in_value) {
  switch (in_value) {
{{range .Variants}}  case {{$.Qualified}}::{{.Name}}:
    json = {{quote .Literal}};
    break;
{{end}}  default:
    throw std::runtime_error("Unknown {{.Local}} value");
  }
}

inline void from_json(nlohmann::json const &json, {{.Qualified}} &out_value) {
  const std::string type = json.get<std::string>();
{{range .Branches}}  {{.Keyword}} (type == {{quote .Literal}}) {
    out_value = {{$.Qualified}}::{{.Name}};
{{end}}{{if .Strict}}  } else {
    throw std::runtime_error("Unknown {{.Local}} value: " + type);
  }
{{else}}  }
{{end}}}

{{end -}}

{{- define "struct_write" -}}
inline void to_json(nlohmann::json &json, {{.Qualified}} const &in_value) {
{{range .Fields}}  {{.Write}};
{{end}}  VRMC::WriteExtensions(json, in_value.extensionsAndExtras);
}

{{end -}}

{{- define "struct_read" -}}
inline void from_json(nlohmann::json const &json, {{.Qualified}} &out_value) {
{{range .Fields}}  {{.Read}};
{{end}}  VRMC::ReadExtensionsAndExtras(json, out_value.extensionsAndExtras);
}

{{end -}}

{{- define "version" -}}
#ifdef {{.Guard}}

namespace {{.Namespace}} {
{{.Prelude}}{{range .Decls}}{{.}}
{{end}}{{range .Enums}}{{template "enum_functions" .}}{{end -}}
{{range .Structs}}{{template "struct_write" .}}{{end -}}
{{range .Structs}}{{template "struct_read" .}}{{end -}}
} // namespace {{.Namespace}}
#endif

{{end -}}
`))
