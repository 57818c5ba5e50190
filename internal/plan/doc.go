// Package plan resolves one version's schema catalog into an intermediate
// representation of C++ declarations that internal/gen renders.
//
// Resolution pipeline:
//  1. Every non-reference root schema becomes a top-level struct or enum.
//  2. Each property is classified by its effective type (possibly inherited
//     through allOf) into a scalar, enum, Vector3, map, struct, named
//     reference or array.
//  3. Nested enums and structs are declared inside their parent, before the
//     field that introduced them.
//  4. Top-level declarations are ordered so every referenced type precedes
//     its users.
//
// A Resolver is built per version and never shared; all failures are typed
// errors from internal/diagnostic.
package plan
