// Package diagnostic provides the typed errors and collected warnings
// produced while compiling a schema catalog into declarations.
//
// Every error is fatal to a generation run and carries a Location naming the
// schema version, file, property and reference key involved, so that either
// the schema or the generator's coverage can be fixed.
//
// Key capabilities:
//   - A closed set of error types, each matching a sentinel via errors.Is
//   - Stable diagnostic codes for tooling
//   - Non-fatal warnings (skipped properties, ignored keywords)
package diagnostic
