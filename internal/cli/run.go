// Package cli implements the shared body of the subfiles commands: resolve
// the configuration, run the pipeline and translate the outcome into status
// lines and an exit code.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-subfiles/pkg/cleaner"
	"github.com/goliatone/go-subfiles/pkg/config"
	"github.com/goliatone/go-subfiles/pkg/fragments"
	"github.com/goliatone/go-subfiles/pkg/output"
	"github.com/goliatone/go-subfiles/pkg/pipeline"
)

const (
	ExitOK    = 0
	ExitFatal = 1
)

// Options describes one command invocation.
type Options struct {
	// Root is the working directory; empty means the process directory.
	Root string
	// Clean enables the fragment cleanup step.
	Clean bool
	// Env overrides the process environment when non-nil.
	Env    map[string]string
	Stdout io.Writer
	Logger zerolog.Logger
}

// Run executes a command and returns its exit code. Fatal conditions are a
// missing fragment directory, an invalid configuration and a failed master
// document write; per-fragment cleanup failures are reported but not fatal.
func Run(ctx context.Context, opts Options) int {
	out := opts.Stdout
	if out == nil {
		out = io.Discard
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return ExitFatal
	}

	pipelineOpts := []pipeline.Option{pipeline.WithLogger(opts.Logger)}
	if opts.Clean {
		c, err := cleaner.New(cleaner.WithLogger(opts.Logger))
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return ExitFatal
		}
		pipelineOpts = append(pipelineOpts, pipeline.WithCleaner(c))
	}

	p, err := pipeline.New(cfg, pipelineOpts...)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return ExitFatal
	}

	report, err := p.Run(ctx)
	if report.Cleanup != nil {
		printCleanup(out, cfg, *report.Cleanup)
	}
	if err != nil {
		printFailure(out, cfg, err)
		return ExitFatal
	}

	fmt.Fprintf(out, "Success! '%s' updated with %d subfiles.\n", cfg.OutputFile, report.Included())
	return ExitOK
}

func resolveConfig(opts Options) (config.Config, error) {
	cfg := config.Default()
	if opts.Root != "" {
		cfg.Root = opts.Root
	}
	if opts.Env != nil {
		return config.FromEnvironment(cfg, opts.Env)
	}
	return config.FromEnv(cfg)
}

func printCleanup(out io.Writer, cfg config.Config, summary cleaner.Summary) {
	fmt.Fprintf(out, "Processing %d files in '%s'...\n", len(summary.Results), cfg.FragmentDir)
	for _, failure := range summary.Failures() {
		fmt.Fprintf(out, "Error cleaning %s: %v\n", failure.Fragment.Path, failure.Err)
	}
	if n := summary.Modified(); n > 0 {
		fmt.Fprintf(out, "Note: removed unwanted commands from %d files.\n", n)
	}
}

func printFailure(out io.Writer, cfg config.Config, err error) {
	var writeErr *output.WriteError
	switch {
	case errors.Is(err, fragments.ErrDirNotFound):
		fmt.Fprintf(out, "Error: the directory '%s' does not exist.\n", cfg.FragmentDir)
	case errors.Is(err, fragments.ErrNotDirectory):
		fmt.Fprintf(out, "Error: '%s' is not a directory.\n", cfg.FragmentDir)
	case errors.As(err, &writeErr):
		fmt.Fprintf(out, "Error writing '%s': %v\n", cfg.OutputFile, writeErr.Err)
	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}
