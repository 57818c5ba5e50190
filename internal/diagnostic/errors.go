package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a stable identifier for a class of diagnostic.
type Code string

const (
	CodeUnresolvedReference           Code = "unresolved-reference"
	CodeUnknownType                   Code = "unknown-type"
	CodeUnhandledComposition          Code = "unhandled-composition"
	CodeUnhandledAdditionalProperties Code = "unhandled-additional-properties"
	CodeNameCollision                 Code = "name-collision"
	CodeCyclicReference               Code = "cyclic-reference"
	CodeInvalidDefault                Code = "invalid-default"
	CodeDuplicateReference            Code = "duplicate-reference"
	CodeInvalidConfig                 Code = "invalid-config"

	// Warning codes.
	CodeSkippedProperty Code = "skipped-property"
	CodeEmptyStruct     Code = "empty-struct"
)

// Sentinel errors, one per error type, for errors.Is matching.
var (
	ErrUnresolvedReference           = errors.New("unresolved reference")
	ErrUnknownType                   = errors.New("unknown type")
	ErrUnhandledComposition          = errors.New("unhandled allOf composition")
	ErrUnhandledAdditionalProperties = errors.New("unhandled additionalProperties")
	ErrNameCollision                 = errors.New("canonical name collision")
	ErrCyclicReference               = errors.New("cyclic reference")
	ErrInvalidDefault                = errors.New("invalid default value")
	ErrDuplicateReference            = errors.New("duplicate reference key")
	ErrInvalidConfig                 = errors.New("invalid configuration")
)

// Location pins a diagnostic to a place in the schema corpus. Empty parts
// are omitted when formatting.
type Location struct {
	Version  string
	File     string
	Property string
	Ref      string
}

// String formats the location as "version/file: property "p": ref "r"".
func (l Location) String() string {
	var parts []string

	switch {
	case l.Version != "" && l.File != "":
		parts = append(parts, l.Version+"/"+l.File)
	case l.File != "":
		parts = append(parts, l.File)
	case l.Version != "":
		parts = append(parts, "version "+l.Version)
	}

	if l.Property != "" {
		parts = append(parts, fmt.Sprintf("property %q", l.Property))
	}

	if l.Ref != "" {
		parts = append(parts, fmt.Sprintf("ref %q", l.Ref))
	}

	return strings.Join(parts, ": ")
}

// Error is implemented by every typed diagnostic error.
type Error interface {
	error
	Code() Code
	Where() Location
	Detail() string
}

func format(loc Location, detail string) string {
	if where := loc.String(); where != "" {
		return where + ": " + detail
	}

	return detail
}

// UnresolvedReferenceError reports a $ref or allOf target that is missing
// from the catalog, or that only a non-emitting schema declares.
type UnresolvedReferenceError struct {
	Location
	Reason string
}

func (e *UnresolvedReferenceError) Error() string   { return format(e.Location, e.Detail()) }
func (e *UnresolvedReferenceError) Code() Code      { return CodeUnresolvedReference }
func (e *UnresolvedReferenceError) Where() Location { return e.Location }

func (e *UnresolvedReferenceError) Detail() string {
	if e.Reason != "" {
		return ErrUnresolvedReference.Error() + ": " + e.Reason
	}

	return ErrUnresolvedReference.Error()
}

// Is reports whether target is ErrUnresolvedReference.
func (e *UnresolvedReferenceError) Is(target error) bool { return target == ErrUnresolvedReference }

// UnknownTypeError reports a schema node matching none of the
// classification rules. An empty Type means it could not be determined.
type UnknownTypeError struct {
	Location
	Type   string
	Reason string
}

func (e *UnknownTypeError) Error() string   { return format(e.Location, e.Detail()) }
func (e *UnknownTypeError) Code() Code      { return CodeUnknownType }
func (e *UnknownTypeError) Where() Location { return e.Location }

func (e *UnknownTypeError) Detail() string {
	msg := fmt.Sprintf("%s %q", ErrUnknownType, e.Type)
	if e.Type == "" {
		msg = "undetermined type"
	}

	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	return msg
}

// Is reports whether target is ErrUnknownType.
func (e *UnknownTypeError) Is(target error) bool { return target == ErrUnknownType }

// UnhandledCompositionError reports an allOf member whose shape the
// composition rules do not cover.
type UnhandledCompositionError struct {
	Location
	Reason string
}

func (e *UnhandledCompositionError) Error() string   { return format(e.Location, e.Detail()) }
func (e *UnhandledCompositionError) Code() Code      { return CodeUnhandledComposition }
func (e *UnhandledCompositionError) Where() Location { return e.Location }

func (e *UnhandledCompositionError) Detail() string {
	return ErrUnhandledComposition.Error() + ": " + e.Reason
}

// Is reports whether target is ErrUnhandledComposition.
func (e *UnhandledCompositionError) Is(target error) bool { return target == ErrUnhandledComposition }

// UnhandledAdditionalPropertiesError reports a catch-all-only object with no
// enclosing field to attach its target type to.
type UnhandledAdditionalPropertiesError struct {
	Location
}

func (e *UnhandledAdditionalPropertiesError) Error() string   { return format(e.Location, e.Detail()) }
func (e *UnhandledAdditionalPropertiesError) Code() Code      { return CodeUnhandledAdditionalProperties }
func (e *UnhandledAdditionalPropertiesError) Where() Location { return e.Location }

func (e *UnhandledAdditionalPropertiesError) Detail() string {
	return ErrUnhandledAdditionalProperties.Error() + ": no enclosing field to attach the catch-all type to"
}

// Is reports whether target is ErrUnhandledAdditionalProperties.
func (e *UnhandledAdditionalPropertiesError) Is(target error) bool {
	return target == ErrUnhandledAdditionalProperties
}

// NameCollisionError reports two distinct schemas whose canonical names are
// identical within one version.
type NameCollisionError struct {
	Location
	Name         string
	PreviousFile string
}

func (e *NameCollisionError) Error() string   { return format(e.Location, e.Detail()) }
func (e *NameCollisionError) Code() Code      { return CodeNameCollision }
func (e *NameCollisionError) Where() Location { return e.Location }

func (e *NameCollisionError) Detail() string {
	return fmt.Sprintf("%s: %s is already declared by %s", ErrNameCollision, e.Name, e.PreviousFile)
}

// Is reports whether target is ErrNameCollision.
func (e *NameCollisionError) Is(target error) bool { return target == ErrNameCollision }

// CyclicReferenceError reports declarations that reference each other, which
// cannot be ordered for a single-pass compiler.
type CyclicReferenceError struct {
	Location
	Names []string
}

func (e *CyclicReferenceError) Error() string   { return format(e.Location, e.Detail()) }
func (e *CyclicReferenceError) Code() Code      { return CodeCyclicReference }
func (e *CyclicReferenceError) Where() Location { return e.Location }

func (e *CyclicReferenceError) Detail() string {
	return ErrCyclicReference.Error() + " between " + strings.Join(e.Names, ", ")
}

// Is reports whether target is ErrCyclicReference.
func (e *CyclicReferenceError) Is(target error) bool { return target == ErrCyclicReference }

// InvalidDefaultError reports a default that does not fit its field type.
type InvalidDefaultError struct {
	Location
	Cause error
}

func (e *InvalidDefaultError) Error() string   { return format(e.Location, e.Detail()) }
func (e *InvalidDefaultError) Code() Code      { return CodeInvalidDefault }
func (e *InvalidDefaultError) Where() Location { return e.Location }
func (e *InvalidDefaultError) Unwrap() error   { return e.Cause }

func (e *InvalidDefaultError) Detail() string {
	return ErrInvalidDefault.Error() + ": " + e.Cause.Error()
}

// Is reports whether target is ErrInvalidDefault.
func (e *InvalidDefaultError) Is(target error) bool { return target == ErrInvalidDefault }

// DuplicateReferenceError reports two schema files registering the same
// reference key.
type DuplicateReferenceError struct {
	Location
	PreviousFile string
}

func (e *DuplicateReferenceError) Error() string   { return format(e.Location, e.Detail()) }
func (e *DuplicateReferenceError) Code() Code      { return CodeDuplicateReference }
func (e *DuplicateReferenceError) Where() Location { return e.Location }

func (e *DuplicateReferenceError) Detail() string {
	return fmt.Sprintf("%s: already registered by %s", ErrDuplicateReference, e.PreviousFile)
}

// Is reports whether target is ErrDuplicateReference.
func (e *DuplicateReferenceError) Is(target error) bool { return target == ErrDuplicateReference }

// ConfigError reports an unusable configuration value. File is the
// configuration file and Property the offending key.
type ConfigError struct {
	Location
	Reason string
}

func (e *ConfigError) Error() string   { return format(e.Location, e.Detail()) }
func (e *ConfigError) Code() Code      { return CodeInvalidConfig }
func (e *ConfigError) Where() Location { return e.Location }

func (e *ConfigError) Detail() string {
	return fmt.Sprintf("%s: %s", ErrInvalidConfig, e.Reason)
}

// Is reports whether target is ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrInvalidConfig }
