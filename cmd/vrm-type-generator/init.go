package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"vrm-type-generator/internal/config"
)

func runInit(e env, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	force := fs.Bool("force", false, "overwrite an existing file")

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if _, err := os.Stat(e.configPath); err == nil && !*force {
		return &usageError{err: fmt.Errorf("%s already exists, use -force to overwrite", e.configPath)}
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	data, err := config.Marshal(config.Default())
	if err != nil {
		return err
	}

	if err := os.WriteFile(e.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", e.configPath, err)
	}

	_, err = fmt.Fprintf(e.stdout, "wrote %s\n", e.configPath)

	return err
}
