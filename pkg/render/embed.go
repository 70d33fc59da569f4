package render

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var templatesFS embed.FS

// MasterTemplate names the embedded master document skeleton.
const MasterTemplate = "master.tpl"

// TemplatesFS exposes the embedded document templates rooted at the templates
// directory.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return templatesFS
	}
	return sub
}
