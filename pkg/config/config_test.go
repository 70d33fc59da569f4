package config_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-subfiles/pkg/config"
)

func TestDefault_Validates(t *testing.T) {
	if err := config.Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDefault_Paths(t *testing.T) {
	cfg := config.Default()
	if got := cfg.OutputPath(); got != "main.tex" {
		t.Fatalf("output path: got %q", got)
	}

	cfg.Root = filepath.Join("work", "notes")
	if got, want := cfg.OutputPath(), filepath.Join("work", "notes", "main.tex"); got != want {
		t.Fatalf("output path: want %q got %q", want, got)
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := config.Default()
	cfg.FragmentDir = "../outside"
	cfg.FragmentExt = "tex"
	cfg.OutputFile = "out/main.tex"
	cfg.Placeholder = " "

	err := cfg.Validate()
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	for _, fragment := range []string{
		"must not leave the root",
		"must start with a dot",
		"must be a bare filename",
		"placeholder is required",
	} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("error %q does not mention %q", err, fragment)
		}
	}
}

func TestValidate_RejectsAbsoluteFragmentDir(t *testing.T) {
	cfg := config.Default()
	cfg.FragmentDir = "/abs/subfiles"
	if err := cfg.Validate(); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate_RejectsUncleanFragmentDir(t *testing.T) {
	for _, dir := range []string{"subfiles/", "./subfiles", "chapters//one"} {
		cfg := config.Default()
		cfg.FragmentDir = dir
		err := cfg.Validate()
		if !errors.Is(err, config.ErrInvalid) {
			t.Fatalf("dir %q: expected ErrInvalid, got %v", dir, err)
		}
		if !strings.Contains(err.Error(), "clean slash-separated path") {
			t.Fatalf("dir %q: unexpected message %q", dir, err)
		}
	}

	cfg := config.Default()
	cfg.FragmentDir = "chapters/part-one"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("nested dir rejected: %v", err)
	}
}

func TestFromEnvironment_RejectsTrailingSlashDir(t *testing.T) {
	cfg, err := config.FromEnvironment(config.Default(), map[string]string{"SUBFILES_DIR": "subfiles/"})
	if err != nil {
		t.Fatalf("from environment: %v", err)
	}
	if err := cfg.Validate(); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestFromEnvironment_NoVariablesKeepsDefaults(t *testing.T) {
	got, err := config.FromEnvironment(config.Default(), map[string]string{})
	if err != nil {
		t.Fatalf("from environment: %v", err)
	}
	if diff := cmp.Diff(config.Default(), got); diff != "" {
		t.Fatalf("config changed without overrides (-want +got):\n%s", diff)
	}
}

func TestFromEnvironment_Overrides(t *testing.T) {
	got, err := config.FromEnvironment(config.Default(), map[string]string{
		"SUBFILES_DIR":                    "chapters",
		"SUBFILES_OUTPUT":                 "book.tex",
		"SUBFILES_DOCUMENT_CLASS":         "report",
		"SUBFILES_DOCUMENT_CLASS_OPTIONS": "12pt,a4paper",
		"UNRELATED":                       "ignored",
	})
	if err != nil {
		t.Fatalf("from environment: %v", err)
	}

	want := config.Default()
	want.FragmentDir = "chapters"
	want.OutputFile = "book.tex"
	want.Document.Class = "report"
	want.Document.ClassOptions = "12pt,a4paper"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}
