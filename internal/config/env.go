package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix starts every environment override.
const EnvPrefix = "VRMGEN_"

// Environ returns the variables of the .env file at path, if it exists,
// overlaid with the VRMGEN_* variables of the process environment.
func Environ(path string) (map[string]string, error) {
	env := make(map[string]string)

	if path != "" {
		fileEnv, err := godotenv.Read(path)

		switch {
		case err == nil:
			for k, v := range fileEnv {
				if strings.HasPrefix(k, EnvPrefix) {
					env[k] = v
				}
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
		}
	}

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}

	return env, nil
}

// ApplyEnv overrides configuration values from VRMGEN_* variables:
// SCHEMA_DIR, OUTPUT, VERSIONS (comma separated), STRICT_ENUMS and
// CONCURRENCY.
func (c *Config) ApplyEnv(env map[string]string) error {
	if v, ok := env[EnvPrefix+"SCHEMA_DIR"]; ok && v != "" {
		c.SchemaDir = v
	}

	if v, ok := env[EnvPrefix+"OUTPUT"]; ok && v != "" {
		c.Output = v
	}

	if v, ok := env[EnvPrefix+"VERSIONS"]; ok && v != "" {
		c.Versions = c.Versions[:0]

		for part := range strings.SplitSeq(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				c.Versions = append(c.Versions, part)
			}
		}
	}

	if v, ok := env[EnvPrefix+"STRICT_ENUMS"]; ok && v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return c.invalid(EnvPrefix+"STRICT_ENUMS", err.Error())
		}

		c.StrictEnums = &strict
	}

	if v, ok := env[EnvPrefix+"CONCURRENCY"]; ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.invalid(EnvPrefix+"CONCURRENCY", err.Error())
		}

		c.Concurrency = n
	}

	return nil
}
