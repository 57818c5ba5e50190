package gen

import (
	_ "embed"
	"fmt"
	"os"
)

var (
	//go:embed assets/header.txt
	defaultHeader string
	//go:embed assets/footer.txt
	defaultFooter string
	//go:embed assets/prelude.h
	defaultPrelude string
)

// Assets are the fixed texts framing the generated declarations.
type Assets struct {
	// Header opens the document and defines the VRMC helper namespace.
	Header string
	// Footer closes the document.
	Footer string
	// Prelude is placed at the top of the oldest version's namespace and of
	// every newer namespace that uses Vector3.
	Prelude string
}

// DefaultAssets returns the embedded header, footer and prelude.
func DefaultAssets() Assets {
	return Assets{
		Header:  defaultHeader,
		Footer:  defaultFooter,
		Prelude: defaultPrelude,
	}
}

// LoadAssets starts from the embedded texts and replaces each one whose
// path is non-empty with the contents of that file.
func LoadAssets(headerPath, footerPath, preludePath string) (Assets, error) {
	a := DefaultAssets()

	overrides := []struct {
		path string
		dst  *string
	}{
		{headerPath, &a.Header},
		{footerPath, &a.Footer},
		{preludePath, &a.Prelude},
	}

	for _, o := range overrides {
		if o.path == "" {
			continue
		}

		data, err := os.ReadFile(o.path)
		if err != nil {
			return Assets{}, fmt.Errorf("reading asset %s: %w", o.path, err)
		}

		*o.dst = string(data)
	}

	return a, nil
}
