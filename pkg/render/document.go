package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-subfiles/pkg/config"
	"github.com/goliatone/go-subfiles/pkg/render/template"
	"github.com/goliatone/go-subfiles/pkg/render/template/gotemplate"
)

// Option customises a Renderer.
type Option func(*Renderer)

// WithEngine renders the skeleton with engine instead of the embedded pongo2
// templates.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		r.engine = engine
	}
}

// WithTemplate uses tmpl verbatim as the document template, skipping skeleton
// rendering altogether.
func WithTemplate(tmpl string) Option {
	return func(r *Renderer) {
		r.template = tmpl
		r.templateSet = true
	}
}

// Renderer produces master document text for a fixed configuration.
type Renderer struct {
	engine      template.TemplateRenderer
	template    string
	templateSet bool

	dir         string
	token       string
	emptyMarker string
}

// NewRenderer renders the document skeleton for cfg and returns a Renderer
// ready to substitute inclusion lists into it.
func NewRenderer(cfg config.Config, options ...Option) (*Renderer, error) {
	r := &Renderer{
		dir:         cfg.FragmentDir,
		token:       cfg.Placeholder,
		emptyMarker: cfg.EmptyMarker,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if strings.TrimSpace(r.token) == "" {
		return nil, errors.New("render: placeholder token is required")
	}
	if r.templateSet {
		return r, nil
	}

	if r.engine == nil {
		engine, err := NewEngine()
		if err != nil {
			return nil, err
		}
		r.engine = engine
	}

	skeleton, err := r.engine.RenderTemplate(MasterTemplate, skeletonData(cfg))
	if err != nil {
		return nil, fmt.Errorf("render: master skeleton: %w", err)
	}
	r.template = skeleton
	return r, nil
}

// NewEngine builds the pongo2 engine over the embedded templates with the
// LaTeX argument filters registered.
func NewEngine() (*gotemplate.Engine, error) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(TemplatesFS()),
		gotemplate.WithFilter("latexarg", filterLatexArg),
		gotemplate.WithFilter("latexopts", filterLatexOpts),
	)
	if err != nil {
		return nil, fmt.Errorf("render: template engine: %w", err)
	}
	return engine, nil
}

// Template returns the document template the placeholder is substituted into.
func (r *Renderer) Template() string {
	return r.template
}

// Render builds the master document for names. An empty list yields the empty
// marker in place of the inclusion block.
func (r *Renderer) Render(names []string) string {
	replacement := strings.TrimSpace(InclusionBlock(r.dir, names))
	if replacement == "" {
		replacement = r.emptyMarker
	}
	return Substitute(r.template, r.token, replacement)
}

func skeletonData(cfg config.Config) map[string]any {
	return map[string]any{
		"placeholder": cfg.Placeholder,
		"document": map[string]any{
			"class":         cfg.Document.Class,
			"class_options": cfg.Document.ClassOptions,
			"preamble":      cfg.Document.Preamble,
		},
	}
}

// filterLatexArg wraps the value in a mandatory argument group: {value}.
func filterLatexArg(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue("{" + strings.TrimSpace(in.String()) + "}"), nil
}

// filterLatexOpts wraps a non-empty value in an optional argument group.
func filterLatexOpts(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	opts := strings.TrimSpace(in.String())
	if opts == "" {
		return pongo2.AsSafeValue(""), nil
	}
	return pongo2.AsSafeValue("[" + opts + "]"), nil
}
