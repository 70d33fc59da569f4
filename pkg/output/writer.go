// Package output persists the generated master document.
package output

import (
	"errors"
	"fmt"
	"os"
)

// WriteError reports a failed master document write.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("output: write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Write replaces the file at path with content encoded as UTF-8.
func Write(path, content string) error {
	if path == "" {
		return &WriteError{Path: path, Err: errors.New("path is required")}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
