// Package match finds the closest known name to a misspelled one, for
// "did you mean" hints on unresolved references and unknown type names.
package match
