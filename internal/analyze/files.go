package analyze

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// SchemaSuffix is the conventional schema file suffix.
const SchemaSuffix = ".schema.json"

var (
	orderPrefix     = regexp.MustCompile(`^\d{2}\.`)
	referencePrefix = regexp.MustCompile(`^\d{2}\.ref\.`)
)

// IsReferenceFile reports whether file follows the NN.ref.<name> convention
// marking a pure reference definition that is never emitted.
func IsReferenceFile(file string) bool {
	return referencePrefix.MatchString(file)
}

// KeyFor derives the catalog key of a file's root node: its $id when
// declared, else the file name without the NN.ref. or NN. prefix, else the
// file name itself.
func KeyFor(file string, s *Schema) string {
	if s != nil && s.ID != "" {
		return s.ID
	}

	if loc := referencePrefix.FindStringIndex(file); loc != nil {
		return file[loc[1]:]
	}

	if loc := orderPrefix.FindStringIndex(file); loc != nil {
		return file[loc[1]:]
	}

	return file
}

// ListSchemaFiles returns the *.json file names in dir, sorted by name.
func ListSchemaFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list schema directory: %w", err)
	}

	var files []string

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}

		files = append(files, e.Name())
	}

	slices.Sort(files)

	return files, nil
}

// ReadSchemaFile reads and parses dir/file.
func ReadSchemaFile(dir, file string) (*Schema, error) {
	data, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		return nil, err
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file, err)
	}

	return s, nil
}
