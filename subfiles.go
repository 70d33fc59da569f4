// Package subfiles generates a LaTeX master document that pulls in every
// fragment of a subfiles directory through \subfile directives, optionally
// stripping standalone-only declarations from the fragments first.
package subfiles

import (
	"context"

	"github.com/goliatone/go-subfiles/pkg/cleaner"
	"github.com/goliatone/go-subfiles/pkg/config"
	"github.com/goliatone/go-subfiles/pkg/pipeline"
)

// Config aliases config.Config for callers that only import the root package.
type Config = config.Config

// Report aliases pipeline.Report.
type Report = pipeline.Report

// DefaultConfig returns the standard layout: subfiles/*.tex into main.tex.
func DefaultConfig() Config {
	return config.Default()
}

// Generate lists the fragments and writes the master document.
func Generate(ctx context.Context, cfg Config, options ...pipeline.Option) (Report, error) {
	p, err := pipeline.New(cfg, options...)
	if err != nil {
		return Report{}, err
	}
	return p.Run(ctx)
}

// GenerateAndClean strips the default cleanup patterns from every fragment
// before writing the master document.
func GenerateAndClean(ctx context.Context, cfg Config, options ...pipeline.Option) (Report, error) {
	c, err := cleaner.New()
	if err != nil {
		return Report{}, err
	}
	options = append([]pipeline.Option{pipeline.WithCleaner(c)}, options...)
	return Generate(ctx, cfg, options...)
}
