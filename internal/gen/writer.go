package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes the generated file into outputDir, creating the
// directory if it doesn't exist.
func WriteFile(file GeneratedFile, outputDir string) error {
	if outputDir == "" {
		outputDir = "."
	}

	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	outputPath := filepath.Join(outputDir, file.Filename)

	// Replace the previous output atomically.
	tmp, err := os.CreateTemp(outputDir, "."+file.Filename+".*")
	if err != nil {
		return fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	_, err = tmp.Write(file.Content)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}

	if err == nil {
		err = os.Chmod(tmp.Name(), filePerm)
	}

	if err == nil {
		err = os.Rename(tmp.Name(), outputPath)
	}

	if err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	return nil
}
