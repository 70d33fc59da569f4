package cleaner

import (
	"errors"
	"os"
	"path/filepath"
)

// Store reads and rewrites fragment files addressed by slash-separated paths.
type Store interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte) error
}

// DirStore is a Store backed by the operating system, rooted at Root.
type DirStore struct {
	Root string
}

var _ Store = DirStore{}

// ReadFile reads the named file under Root.
func (s DirStore) ReadFile(name string) ([]byte, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// WriteFile replaces the named file under Root. Existing permissions are kept.
func (s DirStore) WriteFile(name string, data []byte) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (s DirStore) resolve(name string) (string, error) {
	if name == "" {
		return "", errors.New("cleaner: file name is required")
	}
	root := s.Root
	if root == "" {
		root = "."
	}
	return filepath.Join(root, filepath.FromSlash(name)), nil
}
