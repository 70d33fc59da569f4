package render

import "strings"

// InclusionBlock emits one \subfile directive per name, in order, each
// followed by a newline. References always use a forward slash between dir
// and name.
func InclusionBlock(dir string, names []string) string {
	if len(names) == 0 {
		return ""
	}
	dir = strings.TrimSuffix(dir, "/")

	var b strings.Builder
	for _, name := range names {
		b.WriteString(`\subfile{`)
		if dir != "" {
			b.WriteString(dir)
			b.WriteByte('/')
		}
		b.WriteString(name)
		b.WriteString("}\n")
	}
	return b.String()
}

// Substitute replaces the first occurrence of token in tmpl. A template
// without the token is returned unchanged.
func Substitute(tmpl, token, replacement string) string {
	if token == "" || !strings.Contains(tmpl, token) {
		return tmpl
	}
	return strings.Replace(tmpl, token, replacement, 1)
}
