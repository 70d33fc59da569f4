package cleaner

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Matcher decides whether a single line must be removed.
type Matcher interface {
	Name() string
	Match(line string) bool
}

// LinePattern matches a line against a regular expression anchored at the
// line start.
type LinePattern struct {
	name string
	re   *regexp.Regexp
}

var _ Matcher = (*LinePattern)(nil)

// NewLinePattern compiles expr, adding a leading ^ when the expression is not
// already anchored.
func NewLinePattern(name, expr string) (*LinePattern, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("cleaner: pattern name is required")
	}
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("cleaner: pattern %q has an empty expression", name)
	}
	if !strings.HasPrefix(expr, "^") {
		expr = "^(?:" + expr + ")"
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("cleaner: compile pattern %q: %w", name, err)
	}
	return &LinePattern{name: name, re: re}, nil
}

// Name returns the pattern identifier used in logs and removal records.
func (p *LinePattern) Name() string {
	return p.name
}

// Match reports whether line, without its terminator, matches the pattern.
func (p *LinePattern) Match(line string) bool {
	return p.re.MatchString(line)
}

// String returns the compiled expression.
func (p *LinePattern) String() string {
	return p.re.String()
}

//go:embed patterns.yaml
var defaultPatterns []byte

type patternFile struct {
	Patterns []patternEntry `yaml:"patterns"`
}

type patternEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Expr        string `yaml:"expr"`
}

// DefaultMatchers returns the built-in pattern set in declaration order.
func DefaultMatchers() ([]Matcher, error) {
	return ParsePatterns(defaultPatterns)
}

// ParsePatterns decodes a YAML pattern list into matchers, preserving order.
func ParsePatterns(data []byte) ([]Matcher, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("cleaner: pattern document is empty")
	}

	var doc patternFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cleaner: parse patterns: %w", err)
	}
	if len(doc.Patterns) == 0 {
		return nil, errors.New("cleaner: pattern document defines no patterns")
	}

	seen := make(map[string]struct{}, len(doc.Patterns))
	out := make([]Matcher, 0, len(doc.Patterns))
	for idx, entry := range doc.Patterns {
		pattern, err := NewLinePattern(entry.Name, entry.Expr)
		if err != nil {
			return nil, fmt.Errorf("cleaner: pattern at index %d: %w", idx, err)
		}
		if _, exists := seen[pattern.Name()]; exists {
			return nil, fmt.Errorf("cleaner: duplicate pattern %q", pattern.Name())
		}
		seen[pattern.Name()] = struct{}{}
		out = append(out, pattern)
	}
	return out, nil
}
