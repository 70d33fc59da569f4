package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "SUBFILES_"

// ErrInvalid is wrapped by every validation failure returned from Validate.
var ErrInvalid = errors.New("config: invalid")

// Config describes a single generator run.
type Config struct {
	// Root is the working directory every other path is relative to.
	Root string `env:"ROOT"`

	// FragmentDir names the directory holding the fragments. It doubles as the
	// path prefix written into each inclusion directive.
	FragmentDir string `env:"DIR"`

	// FragmentExt is the case-sensitive suffix a file must carry to be listed.
	FragmentExt string `env:"EXT"`

	// OutputFile is the master document filename, written under Root.
	OutputFile string `env:"OUTPUT"`

	// Placeholder is the token in the document template replaced by the
	// inclusion block.
	Placeholder string `env:"PLACEHOLDER"`

	// EmptyMarker replaces the placeholder when no fragment is found.
	EmptyMarker string `env:"EMPTY_MARKER"`

	Document Document `envPrefix:"DOCUMENT_"`
}

// Document parameterises the master document skeleton.
type Document struct {
	Class        string `env:"CLASS"`
	ClassOptions string `env:"CLASS_OPTIONS"`
	// Preamble is referenced through \input but never read.
	Preamble string `env:"PREAMBLE"`
}

// Default returns the configuration the generators run with when nothing is
// overridden.
func Default() Config {
	return Config{
		Root:        ".",
		FragmentDir: "subfiles",
		FragmentExt: ".tex",
		OutputFile:  "main.tex",
		Placeholder: "[SUBFILES]",
		EmptyMarker: "% No subfiles found",
		Document: Document{
			Class:        "article",
			ClassOptions: "10pt",
			Preamble:     "preamble.tex",
		},
	}
}

// FromEnv overlays SUBFILES_* variables from the process environment onto cfg.
// Unset variables leave the corresponding field untouched.
func FromEnv(cfg Config) (Config, error) {
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}

// FromEnvironment behaves like FromEnv but reads from the supplied variables
// instead of the process environment.
func FromEnvironment(cfg Config, vars map[string]string) (Config, error) {
	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: vars,
	}); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}

// OutputPath returns the master document location relative to the process
// working directory.
func (c Config) OutputPath() string {
	return filepath.Join(c.Root, c.OutputFile)
}

// Validate reports every problem found in cfg. The returned error wraps
// ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	require := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%s is required", field))
		}
	}

	require("root", c.Root)
	require("fragment dir", c.FragmentDir)
	require("fragment extension", c.FragmentExt)
	require("output file", c.OutputFile)
	require("placeholder", c.Placeholder)
	require("empty marker", c.EmptyMarker)
	require("document class", c.Document.Class)
	require("document preamble", c.Document.Preamble)

	if dir := c.FragmentDir; dir != "" {
		if path.IsAbs(dir) || strings.HasPrefix(dir, `\`) {
			errs = append(errs, fmt.Errorf("fragment dir %q must be relative", dir))
		}
		leaves := false
		for _, segment := range strings.Split(dir, "/") {
			if segment == ".." {
				errs = append(errs, fmt.Errorf("fragment dir %q must not leave the root", dir))
				leaves = true
				break
			}
		}
		if !leaves && !path.IsAbs(dir) && !fs.ValidPath(dir) {
			errs = append(errs, fmt.Errorf("fragment dir %q must be a clean slash-separated path", dir))
		}
	}
	if ext := c.FragmentExt; ext != "" && !strings.HasPrefix(ext, ".") {
		errs = append(errs, fmt.Errorf("fragment extension %q must start with a dot", ext))
	}
	if out := c.OutputFile; strings.ContainsAny(out, `/\`) {
		errs = append(errs, fmt.Errorf("output file %q must be a bare filename", out))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
