package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/davecgh/go-spew/spew"

	"vrm-type-generator/internal/codec"
	"vrm-type-generator/internal/gen"
)

func runCheck(ctx context.Context, e env, args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	version := fs.String("version", "", "schema version (default: newest configured)")
	typeName := fs.String("type", "Vrm", "qualified name of the struct to read")
	extension := fs.String("extension", "", "read extensions.<name> of a glTF JSON document")
	dump := fs.Bool("dump", false, "print the decoded value")
	rewrite := fs.Bool("rewrite", false, "print the document as the generated writer would emit it")

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return &usageError{err: errors.New("check needs exactly one JSON document")}
	}

	cfg, err := e.loadConfig()
	if err != nil {
		return err
	}

	if *version == "" {
		*version = cfg.Versions[len(cfg.Versions)-1]
	} else if !slices.Contains(cfg.Versions, *version) {
		return &usageError{err: fmt.Errorf("version %q is not configured", *version)}
	}

	genCfg, err := cfg.Generator(e.logger)
	if err != nil {
		return err
	}

	unit, err := gen.NewGenerator(genCfg).PlanVersion(ctx, *version)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	if *extension != "" {
		data, err = codec.Extension(data, *extension)
		if err != nil {
			return err
		}
	}

	c := codec.New(unit, codec.Options{StrictEnums: cfg.Strict()})

	obj, err := c.Decode(*typeName, data)
	if err != nil {
		return err
	}

	e.logger.Info("document ok",
		slog.String("file", fs.Arg(0)),
		slog.String("type", *typeName),
		slog.String("version", *version),
	)

	if *dump {
		spew.Fdump(e.stdout, obj)
	}

	if *rewrite {
		out, err := c.Encode(obj)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(e.stdout, string(out))

		return err
	}

	return nil
}
