package template

import (
	"io"
)

// TemplateRenderer is the seam between the document renderer and a concrete
// template engine.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
