package subfiles_test

import (
	"io/fs"
	"strings"
	"testing"

	subfiles "github.com/goliatone/go-subfiles"
	"github.com/goliatone/go-subfiles/pkg/testsupport"
)

func TestEmbeddedTemplates(t *testing.T) {
	data, err := fs.ReadFile(subfiles.EmbeddedTemplates(), "master.tpl")
	if err != nil {
		t.Fatalf("read master template: %v", err)
	}
	if !strings.Contains(string(data), "{{ placeholder|safe }}") {
		t.Fatalf("master template lacks placeholder slot:\n%s", data)
	}
}

func TestGenerate(t *testing.T) {
	root := testsupport.FragmentRoot(t, map[string]string{"intro.tex": "\\title{Intro}\n"})
	cfg := subfiles.DefaultConfig()
	cfg.Root = root

	report, err := subfiles.Generate(testsupport.Context(), cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if report.Included() != 1 || report.Cleanup != nil {
		t.Fatalf("unexpected report %+v", report)
	}
	if got := testsupport.ReadFile(t, root, "subfiles/intro.tex"); got != "\\title{Intro}\n" {
		t.Fatalf("Generate must not touch fragments, got %q", got)
	}
}

func TestGenerateAndClean(t *testing.T) {
	root := testsupport.FragmentRoot(t, map[string]string{"intro.tex": "\\title{Intro}\nBody\n"})
	cfg := subfiles.DefaultConfig()
	cfg.Root = root

	report, err := subfiles.GenerateAndClean(testsupport.Context(), cfg)
	if err != nil {
		t.Fatalf("generate and clean: %v", err)
	}
	if report.Cleanup == nil || report.Cleanup.Modified() != 1 {
		t.Fatalf("unexpected cleanup summary %+v", report.Cleanup)
	}
	if got := testsupport.ReadFile(t, root, "subfiles/intro.tex"); got != "\nBody\n" {
		t.Fatalf("unexpected fragment content %q", got)
	}
	if !strings.Contains(testsupport.ReadFile(t, root, "main.tex"), "\\subfile{subfiles/intro}") {
		t.Fatal("master document lacks the fragment")
	}
}
