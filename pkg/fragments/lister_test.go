package fragments_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-subfiles/pkg/fragments"
)

func TestList_SortsByFilename(t *testing.T) {
	fsys := fstest.MapFS{
		"subfiles/c.tex": {Data: []byte("c")},
		"subfiles/a.tex": {Data: []byte("a")},
		"subfiles/b.tex": {Data: []byte("b")},
	}

	got, err := fragments.List(fsys, "subfiles", ".tex")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []fragments.Fragment{
		{Name: "a.tex", Base: "a", Path: "subfiles/a.tex"},
		{Name: "b.tex", Base: "b", Path: "subfiles/b.tex"},
		{Name: "c.tex", Base: "c", Path: "subfiles/c.tex"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fragments mismatch (-want +got):\n%s", diff)
	}
}

func TestList_CodePointOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"subfiles/b.tex":     {},
		"subfiles/B.tex":     {},
		"subfiles/10-x.tex":  {},
		"subfiles/2-y.tex":   {},
		"subfiles/élan.tex":  {},
		"subfiles/_misc.tex": {},
	}

	got, err := fragments.List(fsys, "subfiles", ".tex")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []string{"10-x", "2-y", "B", "_misc", "b", "élan"}
	if diff := cmp.Diff(want, fragments.Names(got)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestList_IgnoresOtherFilesAndSubdirectories(t *testing.T) {
	fsys := fstest.MapFS{
		"subfiles/intro.tex":         {},
		"subfiles/notes.txt":         {},
		"subfiles/intro.TEX":         {},
		"subfiles/intro.tex.bak":     {},
		"subfiles/nested.tex/x.tex":  {},
		"subfiles/deep/chapter.tex":  {},
		"subfiles/images/figure.png": {},
		"other/ignored.tex":          {},
		"subfiles/.hidden-draft.tex": {},
	}

	got, err := fragments.List(fsys, "subfiles", ".tex")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []string{".hidden-draft", "intro"}
	if diff := cmp.Diff(want, fragments.Names(got)); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestList_EmptyDirectory(t *testing.T) {
	fsys := fstest.MapFS{
		"subfiles": {Mode: fs.ModeDir},
	}

	got, err := fragments.List(fsys, "subfiles", ".tex")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no fragments, got %v", got)
	}
}

func TestList_MissingDirectory(t *testing.T) {
	_, err := fragments.List(fstest.MapFS{}, "subfiles", ".tex")
	if !errors.Is(err, fragments.ErrDirNotFound) {
		t.Fatalf("expected ErrDirNotFound, got %v", err)
	}
}

func TestList_PathIsAFile(t *testing.T) {
	fsys := fstest.MapFS{
		"subfiles": {Data: []byte("not a directory")},
	}
	_, err := fragments.List(fsys, "subfiles", ".tex")
	if !errors.Is(err, fragments.ErrNotDirectory) {
		t.Fatalf("expected ErrNotDirectory, got %v", err)
	}
}

func TestList_OnDisk(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "subfiles")
	if err := os.MkdirAll(filepath.Join(dir, "skip.tex"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"b.tex", "a.tex", "readme.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	got, err := fragments.List(os.DirFS(root), "subfiles", ".tex")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, fragments.Names(got)); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestBaseName(t *testing.T) {
	cases := map[string]string{
		"chapter.tex": "chapter",
		"v1.2.tex":    "v1.2",
		"a..tex":      "a.",
		".tex":        ".tex",
		"..tex":       "..tex",
		".hidden.tex": ".hidden",
	}
	for name, want := range cases {
		if got := fragments.BaseName(name, ".tex"); got != want {
			t.Errorf("BaseName(%q): want %q got %q", name, want, got)
		}
	}
}
