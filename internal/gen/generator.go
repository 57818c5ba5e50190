package gen

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"vrm-type-generator/internal/analyze"
	"vrm-type-generator/internal/diagnostic"
	"vrm-type-generator/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// SchemaDir contains one subdirectory per version.
	SchemaDir string
	// Versions are generated in order; the first one receives the prelude.
	Versions []string
	// Filename is the name of the generated header.
	Filename string
	// NamespacePrefix is followed by the version, e.g. VRMC_VRM_1_0.
	NamespacePrefix string
	// GuardPrefix is followed by the version, e.g. USE_VRMC_VRM_1_0.
	GuardPrefix string
	// StrictEnums makes generated enum readers throw on unknown literals.
	StrictEnums bool
	// Markers name the identifier and interface base schemas.
	Markers plan.Markers
	// Assets frame the generated declarations.
	Assets Assets
	// Concurrency bounds parallel schema file reads per version.
	Concurrency int
	// Logger receives per-version progress and warnings. Nil discards.
	Logger *slog.Logger
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		SchemaDir:       "./schema",
		Versions:        []string{"0.0", "1.0"},
		Filename:        "VRM.h",
		NamespacePrefix: "VRMC_VRM_",
		GuardPrefix:     "USE_VRMC_VRM_",
		StrictEnums:     true,
		Markers:         plan.DefaultMarkers(),
		Assets:          DefaultAssets(),
		Concurrency:     4,
	}
}

// Generator compiles every configured version into one C++ header.
type Generator struct {
	config GeneratorConfig
	logger *slog.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Generator{config: config, logger: logger}
}

// GeneratedFile represents the generated header.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "VRM.h").
	Filename string
	// Content is the complete header text.
	Content []byte
	// Diagnostics collects the warnings of every version.
	Diagnostics diagnostic.Diagnostics
}

// Generate loads, resolves and renders every version. Nothing is returned
// unless all versions succeed.
func (g *Generator) Generate(ctx context.Context) (*GeneratedFile, error) {
	if len(g.config.Versions) == 0 {
		return nil, fmt.Errorf("no versions configured")
	}

	blocks := make([]versionBlock, 0, len(g.config.Versions))

	var diags diagnostic.Diagnostics

	for i, version := range g.config.Versions {
		unit, err := g.PlanVersion(ctx, version)
		if err != nil {
			return nil, err
		}

		opts := renderOptions{
			Guard:       g.config.GuardPrefix + guardSuffix(version),
			Namespace:   g.config.NamespacePrefix + guardSuffix(version),
			StrictEnums: g.config.StrictEnums,
		}
		// The oldest version always carries Vector3; newer versions get
		// their own copy only when a field needs it.
		if i == 0 || unit.UsesVector3() {
			opts.Prelude = g.config.Assets.Prelude
		}

		text, err := renderVersion(unit, opts)
		if err != nil {
			return nil, fmt.Errorf("version %s: rendering: %w", version, err)
		}

		blocks = append(blocks, versionBlock{Version: version, Text: text})
		diags.Merge(unit.Diagnostics)

		g.logger.Info("version generated",
			slog.String("version", version),
			slog.Int("declarations", len(unit.Decls)),
			slog.Int("structs", len(unit.Structs)),
			slog.Int("enums", len(unit.Enums)),
		)
	}

	filename := g.config.Filename
	if filename == "" {
		filename = DefaultGeneratorConfig().Filename
	}

	return &GeneratedFile{
		Filename:    filepath.Base(filename),
		Content:     assemble(g.config.Assets, blocks),
		Diagnostics: diags,
	}, nil
}

// PlanVersion loads one version's schemas and resolves them into a Unit.
// Warnings are logged and kept on the returned unit.
func (g *Generator) PlanVersion(ctx context.Context, version string) (*plan.Unit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.logger.Debug("loading schemas",
		slog.String("version", version),
		slog.String("dir", filepath.Join(g.config.SchemaDir, version)),
	)

	catalog, err := analyze.NewLoader(g.config.Concurrency).LoadDir(ctx, g.config.SchemaDir, version)
	if err != nil {
		return nil, fmt.Errorf("loading version %s: %w", version, err)
	}

	g.logger.Debug("catalog built", slog.String("version", version), slog.Int("entries", catalog.Len()))

	unit, err := plan.Plan(catalog, g.config.Markers)
	if err != nil {
		return nil, err
	}

	for _, w := range unit.Diagnostics.Warnings {
		g.logger.Warn(w.Message,
			slog.String("code", string(w.Code)),
			slog.String("where", w.Location.String()),
		)
	}

	return unit, nil
}
