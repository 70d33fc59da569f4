package cleaner

import "strings"

// Removal records a line cleared by a matcher.
type Removal struct {
	// Line is the 1-based line number in the original text.
	Line    int
	Matcher string
	// Text is the removed line content, without its terminator.
	Text string
}

// CleanText clears every line of text matched by any of matchers. The line
// terminator of a cleared line ("\n" or "\r\n") is kept, so the line count
// never changes. Matchers see the line without its terminator. When
// nothing matches, text is returned as is.
func CleanText(text string, matchers []Matcher) (string, []Removal) {
	if text == "" || len(matchers) == 0 {
		return text, nil
	}

	var (
		out      strings.Builder
		removals []Removal
		lineNo   int
	)
	out.Grow(len(text))

	rest := text
	for len(rest) > 0 {
		lineNo++
		line, terminator := rest, ""
		if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
			line, terminator = rest[:idx], "\n"
			rest = rest[idx+1:]
		} else {
			rest = ""
		}
		if strings.HasSuffix(line, "\r") && terminator != "" {
			line, terminator = line[:len(line)-1], "\r\n"
		}

		if name, ok := firstMatch(line, matchers); ok {
			removals = append(removals, Removal{Line: lineNo, Matcher: name, Text: line})
			out.WriteString(terminator)
			continue
		}
		out.WriteString(line)
		out.WriteString(terminator)
	}

	if len(removals) == 0 {
		return text, nil
	}
	return out.String(), removals
}

func firstMatch(line string, matchers []Matcher) (string, bool) {
	for _, m := range matchers {
		if m == nil {
			continue
		}
		if m.Match(line) {
			return m.Name(), true
		}
	}
	return "", false
}
