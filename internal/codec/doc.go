// Package codec reads and writes JSON documents against a resolved plan
// using the same rules as the generated C++ functions.
//
// Value representation:
//   - string, uint32, float64 and bool for scalars
//   - plan.Variant for enums
//   - *Object for structs
//   - Vector3 for the prelude vector
//   - map[string]any for maps and []any for arrays
package codec
