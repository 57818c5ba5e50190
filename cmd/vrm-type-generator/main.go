// Package main provides the CLI entrypoint for vrm-type-generator.
//
// vrm-type-generator compiles the versioned VRM JSON schemas into one C++
// header of structs, enums and nlohmann::json conversion functions.
//
// Commands:
//   - gen (default): regenerate the header from vrmgen.yaml
//   - check: read a JSON document as a generated type and report errors
//   - init: write a vrmgen.yaml with the default settings
//   - version: print build information
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"

	"vrm-type-generator/internal/config"
	"vrm-type-generator/internal/diagnostic"
)

const usage = `Usage: vrm-type-generator [-config vrmgen.yaml] [-v] [command] [flags]

Commands:
  gen       regenerate the C++ header (default)
  check     read a JSON document as a generated type
  init      write a default configuration file
  version   print build information

Options:
`

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return runWithArgs(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// env is shared by every command.
type env struct {
	configPath string
	logger     *slog.Logger
	stdout     io.Writer
	stderr     io.Writer
}

// loadConfig reads the configuration named by -config.
func (e env) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		return nil, err
	}

	source := cfg.Path()
	if source == "" {
		source = "defaults"
	}

	e.logger.Info("config loaded", slog.String("path", source), slog.Any("versions", cfg.Versions))

	return cfg, nil
}

func runWithArgs(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vrm-type-generator", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", config.DefaultFile, "path to the configuration file")
	verbose := fs.Bool("v", false, "log debug output")
	fs.Usage = func() {
		_, _ = fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	e := env{
		configPath: *configPath,
		logger:     slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
		stdout:     stdout,
		stderr:     stderr,
	}

	command, rest := "gen", fs.Args()
	if len(rest) > 0 {
		command, rest = rest[0], rest[1:]
	}

	var err error

	switch command {
	case "gen":
		err = runGen(ctx, e, rest)
	case "check":
		err = runCheck(ctx, e, rest)
	case "init":
		err = runInit(e, rest)
	case "version":
		err = runVersion(e)
	default:
		_, _ = fmt.Fprintf(stderr, "error: unknown command %q\n\n", command)
		fs.Usage()

		return 2
	}

	var usageErr *usageError

	switch {
	case err == nil:
		return 0
	case errors.As(err, &usageErr):
		_, _ = fmt.Fprintf(stderr, "error: %v\n", usageErr.err)

		return 2
	case errors.Is(err, flag.ErrHelp):
		return 0
	default:
		var diags diagnostic.Diagnostics
		diags.AddError(err)

		for _, d := range diags.Errors {
			attrs := []any{slog.String("error", d.Message)}
			if d.Code != "" {
				attrs = append(attrs, slog.String("code", string(d.Code)), slog.String("where", d.Location.String()))
			}

			e.logger.Error(command+" failed", attrs...)
		}

		return 1
	}
}

// usageError reports bad command-line arguments.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// parseFlags parses a command's flags. The flag package has already
// printed the problem, so a failure only needs the usage exit code.
func parseFlags(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}

	return &usageError{err: err}
}

func runVersion(e env) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		_, err := fmt.Fprintln(e.stdout, "vrm-type-generator (unknown version)")

		return err
	}

	_, err := fmt.Fprintf(e.stdout, "vrm-type-generator %s (%s)\n", info.Main.Version, info.GoVersion)

	return err
}
