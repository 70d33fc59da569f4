// Package fragments enumerates the fragment files a master document includes.
package fragments

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

var (
	// ErrDirNotFound reports that the fragment directory does not exist.
	ErrDirNotFound = errors.New("fragments: directory does not exist")
	// ErrNotDirectory reports that the fragment path exists but is not a directory.
	ErrNotDirectory = errors.New("fragments: path is not a directory")
)

// Fragment is a single eligible file inside the fragment directory.
type Fragment struct {
	// Name is the filename, extension included.
	Name string
	// Base is the filename without the fragment extension.
	Base string
	// Path is the slash-separated location relative to the listing root.
	Path string
}

// List returns the files directly inside dir whose names end with ext, sorted
// by filename. Subdirectories are skipped and never descended into.
func List(fsys fs.FS, dir, ext string) ([]Fragment, error) {
	if fsys == nil {
		return nil, errors.New("fragments: fs is nil")
	}
	if dir == "" {
		dir = "."
	}

	info, err := fs.Stat(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
		}
		return nil, fmt.Errorf("fragments: stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("fragments: read %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ext) {
			continue
		}
		if isDir(fsys, dir, entry) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Fragment, 0, len(names))
	for _, name := range names {
		out = append(out, Fragment{
			Name: name,
			Base: BaseName(name, ext),
			Path: joinPath(dir, name),
		})
	}
	return out, nil
}

// Names returns the base names of frags in order, the inclusion list of a
// master document.
func Names(frags []Fragment) []string {
	out := make([]string, 0, len(frags))
	for _, frag := range frags {
		out = append(out, frag.Base)
	}
	return out
}

// BaseName strips ext from name. Names made only of dots ahead of the
// extension, such as ".tex", are treated as having no extension and are
// returned whole.
func BaseName(name, ext string) string {
	base := strings.TrimSuffix(name, ext)
	if strings.Trim(base, ".") == "" {
		return name
	}
	return base
}

func isDir(fsys fs.FS, dir string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := fs.Stat(fsys, joinPath(dir, entry.Name()))
	return err == nil && info.IsDir()
}

func joinPath(dir, name string) string {
	if dir == "." {
		return name
	}
	return strings.TrimSuffix(dir, "/") + "/" + name
}
