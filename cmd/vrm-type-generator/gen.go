package main

import (
	"context"
	"flag"
	"log/slog"

	"vrm-type-generator/internal/gen"
)

func runGen(ctx context.Context, e env, args []string) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	output := fs.String("o", "", "override the output header path")

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cfg, err := e.loadConfig()
	if err != nil {
		return err
	}

	if *output != "" {
		cfg.Output = *output
	}

	genCfg, err := cfg.Generator(e.logger)
	if err != nil {
		return err
	}

	file, err := gen.NewGenerator(genCfg).Generate(ctx)
	if err != nil {
		return err
	}

	if err := gen.WriteFile(*file, cfg.OutputDir()); err != nil {
		return err
	}

	e.logger.Info("header written",
		slog.String("path", cfg.Output),
		slog.Int("bytes", len(file.Content)),
		slog.Int("warnings", len(file.Diagnostics.Warnings)),
	)

	return nil
}
