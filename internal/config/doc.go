// Package config loads the generator configuration.
//
// Sources, lowest precedence first:
//   - built-in defaults
//   - vrmgen.yaml
//   - a .env file next to it
//   - VRMGEN_* variables in the process environment
//
// Relative paths are resolved against the directory of the YAML file.
package config
