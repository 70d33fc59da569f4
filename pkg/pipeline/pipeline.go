package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-subfiles/pkg/cleaner"
	"github.com/goliatone/go-subfiles/pkg/config"
	"github.com/goliatone/go-subfiles/pkg/fragments"
	"github.com/goliatone/go-subfiles/pkg/output"
	"github.com/goliatone/go-subfiles/pkg/render"
)

// Option customises the pipeline.
type Option func(*Pipeline)

// WithCleaner enables the cleanup step.
func WithCleaner(c *cleaner.Cleaner) Option {
	return func(p *Pipeline) {
		p.cleaner = c
	}
}

// WithStore injects the store the cleaner reads and rewrites fragments through.
func WithStore(store cleaner.Store) Option {
	return func(p *Pipeline) {
		p.store = store
	}
}

// WithFS injects the filesystem fragments are listed from. It must be rooted
// at the configured Root.
func WithFS(fsys fs.FS) Option {
	return func(p *Pipeline) {
		p.fsys = fsys
	}
}

// WithRenderer injects a prebuilt document renderer.
func WithRenderer(r *render.Renderer) Option {
	return func(p *Pipeline) {
		p.renderer = r
	}
}

// WithWriter replaces the function used to persist the master document.
func WithWriter(write func(path, content string) error) Option {
	return func(p *Pipeline) {
		p.write = write
	}
}

// WithLogger routes step diagnostics to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// Pipeline generates the master document for a configuration.
type Pipeline struct {
	cfg      config.Config
	fsys     fs.FS
	store    cleaner.Store
	cleaner  *cleaner.Cleaner
	renderer *render.Renderer
	write    func(path, content string) error
	logger   zerolog.Logger
}

// Report describes a completed run.
type Report struct {
	// Fragments lists the included fragments in document order.
	Fragments []fragments.Fragment
	// Cleanup is nil when the cleaner step did not run.
	Cleanup    *cleaner.Summary
	OutputPath string
	Document   string
}

// Included returns the number of fragments referenced by the document.
func (r Report) Included() int {
	return len(r.Fragments)
}

// New validates cfg and assembles a pipeline. Missing collaborators default to
// the operating system filesystem rooted at cfg.Root and the embedded
// document skeleton.
func New(cfg config.Config, options ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{
		cfg:    cfg,
		write:  output.Write,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}

	if p.fsys == nil {
		p.fsys = os.DirFS(cfg.Root)
	}
	if p.store == nil {
		p.store = cleaner.DirStore{Root: cfg.Root}
	}
	if p.renderer == nil {
		r, err := render.NewRenderer(cfg)
		if err != nil {
			return nil, fmt.Errorf("pipeline: %w", err)
		}
		p.renderer = r
	}
	return p, nil
}

// Run lists the fragments, optionally cleans them, renders the master document
// and writes it. A missing fragment directory stops the run before anything is
// written. The returned Report is populated as far as the run progressed.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	if ctx == nil {
		return Report{}, errors.New("pipeline: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	report := Report{OutputPath: p.cfg.OutputPath()}

	frags, err := fragments.List(p.fsys, p.cfg.FragmentDir, p.cfg.FragmentExt)
	if err != nil {
		return report, err
	}
	report.Fragments = frags
	p.logger.Debug().
		Str("dir", p.cfg.FragmentDir).
		Int("fragments", len(frags)).
		Msg("fragments listed")

	if p.cleaner != nil {
		summary, err := p.cleaner.Run(ctx, p.store, frags)
		report.Cleanup = &summary
		if err != nil {
			return report, fmt.Errorf("pipeline: clean: %w", err)
		}
		p.logger.Debug().
			Int("modified", summary.Modified()).
			Int("failed", summary.Failed()).
			Msg("fragments cleaned")
	}

	report.Document = p.renderer.Render(fragments.Names(frags))

	if err := p.write(report.OutputPath, report.Document); err != nil {
		return report, err
	}
	p.logger.Debug().
		Str("path", report.OutputPath).
		Int("bytes", len(report.Document)).
		Msg("master document written")
	return report, nil
}
