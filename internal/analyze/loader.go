package analyze

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Loader reads every schema file of one version into a Catalog.
type Loader struct {
	// Workers bounds concurrent file reads. Zero or less means one.
	Workers int
}

// NewLoader creates a Loader with the given read concurrency.
func NewLoader(workers int) *Loader {
	return &Loader{Workers: workers}
}

// LoadDir loads root/version/*.json. Files are read concurrently but
// registered in sorted name order, so the catalog never depends on
// scheduling.
func (l *Loader) LoadDir(ctx context.Context, root, version string) (*Catalog, error) {
	dir := filepath.Join(root, version)

	files, err := ListSchemaFiles(dir)
	if err != nil {
		return nil, err
	}

	schemas, err := l.readAll(ctx, dir, files)
	if err != nil {
		return nil, err
	}

	catalog := NewCatalog(version)

	for i, file := range files {
		if _, err := catalog.Register(file, schemas[i]); err != nil {
			return nil, err
		}
	}

	return catalog, nil
}

func (l *Loader) readAll(ctx context.Context, dir string, files []string) ([]*Schema, error) {
	schemas := make([]*Schema, len(files))

	workers := l.Workers
	if workers <= 0 {
		workers = 1
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, file := range files {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			s, err := ReadSchemaFile(dir, file)
			if err != nil {
				return fmt.Errorf("version %s: %w", filepath.Base(dir), err)
			}

			schemas[i] = s

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return schemas, nil
}
