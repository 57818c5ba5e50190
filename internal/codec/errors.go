package codec

import (
	"errors"
	"strings"
)

var (
	ErrMissingField   = errors.New("required field not found")
	ErrUnknownLiteral = errors.New("unknown enum literal")
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrUnknownType    = errors.New("type not declared")
)

// PathError locates a read or write failure inside a document with a
// JSON pointer.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	path := e.Path
	if path == "" {
		path = "/"
	}

	return path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error { return e.Err }

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func appendPointer(path, token string) string {
	return path + "/" + pointerEscaper.Replace(token)
}

// at wraps err with path unless it already carries one.
func at(path string, err error) error {
	var pe *PathError
	if errors.As(err, &pe) {
		return err
	}

	return &PathError{Path: path, Err: err}
}
