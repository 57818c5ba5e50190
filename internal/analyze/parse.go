package analyze

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-json-experiment/json/jsontext"
)

// Parse decodes one schema document. Object member order is preserved.
func Parse(data []byte) (*Schema, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(data))

	if dec.PeekKind() != '{' {
		return nil, errors.New("schema document must be a JSON object")
	}

	s, err := parseSchema(dec)
	if err != nil {
		return nil, fmt.Errorf("at %s: %w", dec.StackPointer(), err)
	}

	if _, err := dec.ReadToken(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after schema document")
	}

	return s, nil
}

// parseSchema reads one schema value. Boolean schemas carry no structure
// the generator uses and come back as nil.
func parseSchema(dec *jsontext.Decoder) (*Schema, error) {
	if dec.PeekKind() != '{' {
		if err := dec.SkipValue(); err != nil {
			return nil, err
		}

		return nil, nil
	}

	if _, err := dec.ReadToken(); err != nil {
		return nil, err
	}

	s := &Schema{}

	for dec.PeekKind() != '}' {
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}

		if err := parseKeyword(dec, s, tok.String()); err != nil {
			return nil, err
		}
	}

	if _, err := dec.ReadToken(); err != nil {
		return nil, err
	}

	return s, nil
}

func parseKeyword(dec *jsontext.Decoder, s *Schema, key string) error {
	var err error

	switch key {
	case "$id":
		s.ID, err = readString(dec, key)
	case "$ref":
		s.Ref, err = readString(dec, key)
	case "title":
		s.Title, err = readString(dec, key)
	case "type":
		s.Type, err = readString(dec, key)
	case "properties":
		s.Properties, err = parseProperties(dec)
	case "required":
		s.Required, err = readStrings(dec, key)
	case "enum":
		s.Enum, err = readStrings(dec, key)
	case "items":
		s.Items, err = parseSchema(dec)
	case "allOf":
		s.AllOf, err = parseSchemaList(dec, key)
	case "additionalProperties":
		s.AdditionalProperties, err = parseSchema(dec)
	case "default":
		var raw jsontext.Value

		raw, err = dec.ReadValue()
		if err == nil {
			s.Default = raw.Clone()
		}
	default:
		err = dec.SkipValue()
	}

	return err
}

func parseProperties(dec *jsontext.Decoder) ([]Property, error) {
	if dec.PeekKind() != '{' {
		return nil, errors.New("properties must be an object")
	}

	if _, err := dec.ReadToken(); err != nil {
		return nil, err
	}

	var props []Property

	for dec.PeekKind() != '}' {
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}

		name := tok.String()

		child, err := parseSchema(dec)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}

		if child == nil {
			child = &Schema{}
		}

		props = append(props, Property{Name: name, Schema: child})
	}

	if _, err := dec.ReadToken(); err != nil {
		return nil, err
	}

	return props, nil
}

func parseSchemaList(dec *jsontext.Decoder, key string) ([]*Schema, error) {
	if dec.PeekKind() != '[' {
		return nil, fmt.Errorf("%s must be an array", key)
	}

	if _, err := dec.ReadToken(); err != nil {
		return nil, err
	}

	var list []*Schema

	for dec.PeekKind() != ']' {
		s, err := parseSchema(dec)
		if err != nil {
			return nil, err
		}

		if s != nil {
			list = append(list, s)
		}
	}

	if _, err := dec.ReadToken(); err != nil {
		return nil, err
	}

	return list, nil
}

func readString(dec *jsontext.Decoder, key string) (string, error) {
	if dec.PeekKind() != '"' {
		return "", fmt.Errorf("%s must be a string", key)
	}

	tok, err := dec.ReadToken()
	if err != nil {
		return "", err
	}

	return tok.String(), nil
}

func readStrings(dec *jsontext.Decoder, key string) ([]string, error) {
	if dec.PeekKind() != '[' {
		return nil, fmt.Errorf("%s must be an array", key)
	}

	if _, err := dec.ReadToken(); err != nil {
		return nil, err
	}

	var out []string

	for dec.PeekKind() != ']' {
		s, err := readString(dec, key+" element")
		if err != nil {
			return nil, err
		}

		out = append(out, s)
	}

	if _, err := dec.ReadToken(); err != nil {
		return nil, err
	}

	return out, nil
}
