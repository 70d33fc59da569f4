package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTree creates files under root. Keys are slash-separated paths; parent
// directories are created as needed.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

// FragmentRoot returns a temporary root holding a "subfiles" directory with
// the given fragments, keyed by filename.
func FragmentRoot(t *testing.T, fragments map[string]string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "subfiles"), 0o755); err != nil {
		t.Fatalf("mkdir subfiles: %v", err)
	}
	files := make(map[string]string, len(fragments))
	for name, content := range fragments {
		files["subfiles/"+name] = content
	}
	WriteTree(t, root, files)
	return root
}

// ReadFile returns the content of a slash-separated path under root.
func ReadFile(t *testing.T, root, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}
