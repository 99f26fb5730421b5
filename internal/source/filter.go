package source

import "bytes"

// TextFilter selects lines containing a substring.
// An empty filter matches every line.
type TextFilter struct {
	text []byte
}

// NewTextFilter creates a substring filter
func NewTextFilter(text string) *TextFilter {
	if text == "" {
		return &TextFilter{}
	}
	return &TextFilter{text: []byte(text)}
}

// Match reports whether the line passes the filter
func (f *TextFilter) Match(line *Line) bool {
	if f == nil || len(f.text) == 0 {
		return true
	}
	return bytes.Contains(trimTerminator(line.Content), f.text)
}

func trimTerminator(content []byte) []byte {
	return bytes.TrimRight(content, "\r\n")
}
