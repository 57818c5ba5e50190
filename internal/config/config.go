package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"vrm-type-generator/internal/diagnostic"
	"vrm-type-generator/internal/gen"
	"vrm-type-generator/internal/plan"
)

// DefaultFile is the configuration file looked up when none is given.
const DefaultFile = "vrmgen.yaml"

// Config is the YAML configuration file.
type Config struct {
	// SchemaDir holds one subdirectory of *.json schemas per version.
	SchemaDir string `yaml:"schemaDir"`
	// Versions to generate. They are emitted oldest first.
	Versions []string `yaml:"versions"`
	// Output is the path of the generated header.
	Output string `yaml:"output"`
	// NamespacePrefix and GuardPrefix are followed by the version with
	// dots replaced by underscores.
	NamespacePrefix string `yaml:"namespacePrefix"`
	GuardPrefix     string `yaml:"guardPrefix"`
	// StrictEnums makes enum readers reject unknown literals.
	StrictEnums *bool `yaml:"strictEnums,omitempty"`
	// Concurrency bounds parallel schema reads.
	Concurrency int `yaml:"concurrency"`

	Markers Markers `yaml:"markers"`
	Assets  Assets  `yaml:"assets"`

	// path is the file the configuration was read from, if any.
	path string
}

// Markers name the special base schemas by reference key.
type Markers struct {
	Identifier string `yaml:"identifier"`
	Interface  string `yaml:"interface"`
}

// Assets override the embedded header texts. Empty keeps the default.
type Assets struct {
	Header  string `yaml:"header,omitempty"`
	Footer  string `yaml:"footer,omitempty"`
	Prelude string `yaml:"prelude,omitempty"`
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Default returns the configuration used when no file exists.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)

	return c
}

// LoadFile loads and parses a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	c.path = path
	c.resolvePaths(filepath.Dir(path))

	return c, nil
}

// Load reads path, falling back to defaults when path is DefaultFile and
// does not exist, then applies the .env file next to it and the process
// environment, and validates the result.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}

	c, err := LoadFile(path)

	switch {
	case err == nil:
	case path == DefaultFile && errors.Is(err, os.ErrNotExist):
		c = Default()
	default:
		return nil, err
	}

	env, err := Environ(filepath.Join(filepath.Dir(path), ".env"))
	if err != nil {
		return nil, err
	}

	if err := c.ApplyEnv(env); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var c Config

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	defaults := gen.DefaultGeneratorConfig()
	markers := plan.DefaultMarkers()

	if c.SchemaDir == "" {
		c.SchemaDir = defaults.SchemaDir
	}

	if len(c.Versions) == 0 {
		c.Versions = slices.Clone(defaults.Versions)
	}

	if c.Output == "" {
		c.Output = defaults.Filename
	}

	if c.NamespacePrefix == "" {
		c.NamespacePrefix = defaults.NamespacePrefix
	}

	if c.GuardPrefix == "" {
		c.GuardPrefix = defaults.GuardPrefix
	}

	if c.StrictEnums == nil {
		strict := defaults.StrictEnums
		c.StrictEnums = &strict
	}

	if c.Concurrency == 0 {
		c.Concurrency = defaults.Concurrency
	}

	if c.Markers.Identifier == "" {
		c.Markers.Identifier = markers.Identifier
	}

	if c.Markers.Interface == "" {
		c.Markers.Interface = markers.Interface
	}
}

// resolvePaths makes relative paths relative to dir.
func (c *Config) resolvePaths(dir string) {
	for _, p := range []*string{&c.SchemaDir, &c.Output, &c.Assets.Header, &c.Assets.Footer, &c.Assets.Prelude} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

// Path returns the file the configuration was read from.
func (c *Config) Path() string {
	return c.path
}

// Validate checks the configuration and sorts Versions oldest first.
func (c *Config) Validate() error {
	if c.SchemaDir == "" {
		return c.invalid("schemaDir", "must not be empty")
	}

	if c.Output == "" {
		return c.invalid("output", "must not be empty")
	}

	if len(c.Versions) == 0 {
		return c.invalid("versions", "at least one version is required")
	}

	for _, v := range c.Versions {
		if !semver.IsValid("v" + v) {
			return c.invalid("versions", fmt.Sprintf("%q is not a version number", v))
		}
	}

	slices.SortStableFunc(c.Versions, func(a, b string) int {
		return semver.Compare("v"+a, "v"+b)
	})

	for i := 1; i < len(c.Versions); i++ {
		if semver.Compare("v"+c.Versions[i-1], "v"+c.Versions[i]) == 0 {
			return c.invalid("versions", fmt.Sprintf("%q is listed twice", c.Versions[i]))
		}
	}

	if !identifierPattern.MatchString(c.NamespacePrefix) {
		return c.invalid("namespacePrefix", fmt.Sprintf("%q is not a C++ identifier", c.NamespacePrefix))
	}

	if !identifierPattern.MatchString(c.GuardPrefix) {
		return c.invalid("guardPrefix", fmt.Sprintf("%q is not a macro name", c.GuardPrefix))
	}

	if c.Concurrency < 0 {
		return c.invalid("concurrency", "must not be negative")
	}

	if c.Markers.Identifier == "" || c.Markers.Interface == "" {
		return c.invalid("markers", "identifier and interface keys are required")
	}

	if c.Markers.Identifier == c.Markers.Interface {
		return c.invalid("markers", "identifier and interface must differ")
	}

	return nil
}

func (c *Config) invalid(key, reason string) error {
	return &diagnostic.ConfigError{
		Location: diagnostic.Location{File: c.path, Property: key},
		Reason:   reason,
	}
}

// Strict reports whether enum readers reject unknown literals.
func (c *Config) Strict() bool {
	return c.StrictEnums == nil || *c.StrictEnums
}

// Generator builds the generator configuration, loading asset overrides.
func (c *Config) Generator(logger *slog.Logger) (gen.GeneratorConfig, error) {
	assets, err := gen.LoadAssets(c.Assets.Header, c.Assets.Footer, c.Assets.Prelude)
	if err != nil {
		return gen.GeneratorConfig{}, err
	}

	return gen.GeneratorConfig{
		SchemaDir:       c.SchemaDir,
		Versions:        slices.Clone(c.Versions),
		Filename:        filepath.Base(c.Output),
		NamespacePrefix: c.NamespacePrefix,
		GuardPrefix:     c.GuardPrefix,
		StrictEnums:     c.Strict(),
		Markers: plan.Markers{
			Identifier: c.Markers.Identifier,
			Interface:  c.Markers.Interface,
		},
		Assets:      assets,
		Concurrency: c.Concurrency,
		Logger:      logger,
	}, nil
}

// OutputDir is the directory the header is written to.
func (c *Config) OutputDir() string {
	return filepath.Dir(c.Output)
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}
