package cleaner

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-subfiles/pkg/fragments"
)

// ErrInvalidEncoding reports a fragment whose content is not valid UTF-8.
var ErrInvalidEncoding = errors.New("cleaner: content is not valid UTF-8")

// Outcome classifies what happened to a single fragment.
type Outcome int

const (
	Unchanged Outcome = iota
	Modified
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Modified:
		return "modified"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Stage names the step a failed fragment stopped at.
type Stage string

const (
	StageRead  Stage = "read"
	StageWrite Stage = "write"
)

// Result is the per-fragment record collected by Run.
type Result struct {
	Fragment fragments.Fragment
	Outcome  Outcome
	// Stage and Err are set only when Outcome is Failed.
	Stage    Stage
	Err      error
	Removals []Removal
}

// Summary aggregates the results of a cleaning pass in fragment order.
type Summary struct {
	Results []Result
}

// Modified returns how many fragments were rewritten.
func (s Summary) Modified() int {
	return s.count(Modified)
}

// Failed returns how many fragments could not be processed.
func (s Summary) Failed() int {
	return s.count(Failed)
}

// Failures returns the failed results in fragment order.
func (s Summary) Failures() []Result {
	var out []Result
	for _, r := range s.Results {
		if r.Outcome == Failed {
			out = append(out, r)
		}
	}
	return out
}

func (s Summary) count(outcome Outcome) int {
	n := 0
	for _, r := range s.Results {
		if r.Outcome == outcome {
			n++
		}
	}
	return n
}

// Option customises a Cleaner.
type Option func(*Cleaner)

// WithMatchers replaces the built-in pattern set.
func WithMatchers(matchers ...Matcher) Option {
	return func(c *Cleaner) {
		c.matchers = append([]Matcher(nil), matchers...)
		c.matchersSet = true
	}
}

// WithLogger routes per-fragment diagnostics to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Cleaner) {
		c.logger = logger
	}
}

// Cleaner applies an ordered matcher list to fragment files.
type Cleaner struct {
	matchers    []Matcher
	matchersSet bool
	logger      zerolog.Logger
}

// New builds a Cleaner. Without WithMatchers the embedded default patterns
// are used.
func New(options ...Option) (*Cleaner, error) {
	c := &Cleaner{logger: zerolog.Nop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if !c.matchersSet {
		matchers, err := DefaultMatchers()
		if err != nil {
			return nil, err
		}
		c.matchers = matchers
	}
	return c, nil
}

// Run cleans every fragment in order. A fragment that cannot be read or
// written is recorded as Failed and the pass moves on; only context
// cancellation stops it early.
func (c *Cleaner) Run(ctx context.Context, store Store, frags []fragments.Fragment) (Summary, error) {
	if ctx == nil {
		return Summary{}, errors.New("cleaner: context is required")
	}
	if store == nil {
		return Summary{}, errors.New("cleaner: store is required")
	}

	summary := Summary{Results: make([]Result, 0, len(frags))}
	for _, frag := range frags {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		result := c.Clean(store, frag)
		c.log(result)
		summary.Results = append(summary.Results, result)
	}
	return summary, nil
}

// Clean processes a single fragment. The file is only written when cleaning
// changed its content.
func (c *Cleaner) Clean(store Store, frag fragments.Fragment) Result {
	result := Result{Fragment: frag, Outcome: Unchanged}

	data, err := store.ReadFile(frag.Path)
	if err != nil {
		return failed(result, StageRead, err)
	}
	if !utf8.Valid(data) {
		return failed(result, StageRead, ErrInvalidEncoding)
	}

	original := string(data)
	cleaned, removals := CleanText(original, c.matchers)
	if cleaned == original {
		return result
	}

	if err := store.WriteFile(frag.Path, []byte(cleaned)); err != nil {
		return failed(result, StageWrite, err)
	}
	result.Outcome = Modified
	result.Removals = removals
	return result
}

func (c *Cleaner) log(result Result) {
	switch result.Outcome {
	case Failed:
		c.logger.Warn().
			Err(result.Err).
			Str("fragment", result.Fragment.Path).
			Str("stage", string(result.Stage)).
			Msg("fragment cleanup failed")
	case Modified:
		c.logger.Debug().
			Str("fragment", result.Fragment.Path).
			Int("removed_lines", len(result.Removals)).
			Msg("fragment cleaned")
	default:
		c.logger.Debug().
			Str("fragment", result.Fragment.Path).
			Msg("fragment unchanged")
	}
}

func failed(result Result, stage Stage, err error) Result {
	result.Outcome = Failed
	result.Stage = stage
	result.Err = err
	return result
}
