package diagnostic

import (
	"errors"
	"fmt"

	"vrm-type-generator/internal/common"
)

// Diagnostics holds the non-fatal findings of one generation pass.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code Code
	// Message is the human-readable description.
	Message string
	// Location identifies the schema position this relates to.
	Location Location
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError records err. Typed errors keep their code and location.
func (d *Diagnostics) AddError(err error) {
	diag := Diagnostic{Severity: DiagnosticError, Message: err.Error()}

	var typed Error
	if errors.As(err, &typed) {
		diag.Code = typed.Code()
		diag.Location = typed.Where()
		diag.Message = typed.Detail()
	}

	d.Errors = append(d.Errors, diag)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code Code, message string, loc Location) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Location: loc,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if where := d.Location.String(); where != "" {
		return where + ": " + msg
	}

	return msg
}
