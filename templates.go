package subfiles

import (
	"io/fs"

	"github.com/goliatone/go-subfiles/pkg/render"
)

// EmbeddedTemplates exposes the built-in master document templates so callers
// can inspect or extend them without importing the render package directly.
func EmbeddedTemplates() fs.FS {
	return render.TemplatesFS()
}
