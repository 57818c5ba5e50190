// Package gen renders resolved plans into one C++ header.
//
// Generation approach uses text/template over data prepared from plan.Unit,
// so every spelling decision (type names, initializers, default
// expressions) is made in Go and the templates only lay text out.
//
// Output layout per version:
//   - #ifdef guard and namespace
//   - prelude (oldest version only)
//   - declarations, nested ones inside their parent
//   - enum to_json/from_json pairs
//   - struct to_json functions, then struct from_json functions
//
// The whole document is framed by a fixed header and footer.
package gen
