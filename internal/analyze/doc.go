// Package analyze loads one version's JSON Schema files into an immutable
// tree of Schema nodes and indexes them in a reference Catalog.
//
// Parsing goes through go-json-experiment/jsontext so that property order,
// enum literal order and allOf order survive exactly as written; those orders
// become field order, variant order and inheritance precedence downstream.
//
// Key types:
//   - Schema: one parsed schema document or subdocument
//   - Catalog: reference key -> Entry, plus the reverse node -> key index
//   - Entry: the file a node came from and whether it is reference-only
package analyze
