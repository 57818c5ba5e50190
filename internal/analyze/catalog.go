package analyze

import (
	"vrm-type-generator/internal/diagnostic"
)

// Entry is one registered root schema.
type Entry struct {
	Key    string
	File   string
	Schema *Schema
	// Reference marks NN.ref. files, which resolve but never emit.
	Reference bool
}

// Catalog maps reference keys to root schemas for one version. Build it
// completely before resolving anything so forward references work no
// matter which file comes first.
type Catalog struct {
	Version string

	entries []*Entry
	byKey   map[string]*Entry
	byNode  map[*Schema]*Entry
}

// NewCatalog creates an empty catalog for version.
func NewCatalog(version string) *Catalog {
	return &Catalog{
		Version: version,
		byKey:   make(map[string]*Entry),
		byNode:  make(map[*Schema]*Entry),
	}
}

// Register stores s under the key derived from its $id or file name.
// Registering the same node twice is a no-op; a different node under an
// existing key is a DuplicateReferenceError.
func (c *Catalog) Register(file string, s *Schema) (*Entry, error) {
	key := KeyFor(file, s)

	if prev, ok := c.byKey[key]; ok {
		if prev.Schema == s {
			return prev, nil
		}

		return nil, &diagnostic.DuplicateReferenceError{
			Location:     diagnostic.Location{Version: c.Version, File: file, Ref: key},
			PreviousFile: prev.File,
		}
	}

	e := &Entry{
		Key:       key,
		File:      file,
		Schema:    s,
		Reference: IsReferenceFile(file),
	}

	c.entries = append(c.entries, e)
	c.byKey[key] = e
	c.byNode[s] = e

	return e, nil
}

// Resolve returns the entry registered under key.
func (c *Catalog) Resolve(key string) (*Entry, bool) {
	e, ok := c.byKey[key]

	return e, ok
}

// EntryOf returns the entry whose root node is s.
func (c *Catalog) EntryOf(s *Schema) (*Entry, bool) {
	e, ok := c.byNode[s]

	return e, ok
}

// Entries returns entries in registration order.
func (c *Catalog) Entries() []*Entry {
	return c.entries
}

// Keys returns every reference key in registration order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.Key
	}

	return keys
}

// Len returns the number of registered entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
