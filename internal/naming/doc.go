// Package naming turns schema titles, file names, property names and enum
// literals into C++ identifiers.
//
// The pipeline for a type name is:
//  1. Sanitize: strip vrm./VRMC_/NN. prefixes, map path separators to '_',
//     drop whitespace and the _schema_json suffix.
//  2. Case: structs capitalise every underscore segment and join them,
//     enums capitalise only the first letter.
//  3. Identifier: replace anything a C++ identifier cannot hold.
package naming
