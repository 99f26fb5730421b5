package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/mattn/go-runewidth"
)

// ExpandTabs replaces tabs with spaces up to the next multiple of width.
// Columns are counted across token boundaries from the start of the line.
// A width of zero leaves tokens untouched.
func ExpandTabs(tokens []chroma.Token, width int) []chroma.Token {
	if width <= 0 {
		return tokens
	}

	out := make([]chroma.Token, 0, len(tokens))
	col := 0
	for _, tok := range tokens {
		if !strings.ContainsRune(tok.Value, '\t') {
			col = advance(col, tok.Value)
			out = append(out, tok)
			continue
		}

		var b strings.Builder
		for _, r := range tok.Value {
			switch r {
			case '\t':
				n := width - col%width
				b.WriteString(strings.Repeat(" ", n))
				col += n
			case '\n', '\r':
				b.WriteRune(r)
				col = 0
			default:
				b.WriteRune(r)
				col += runewidth.RuneWidth(r)
			}
		}
		out = append(out, chroma.Token{Type: tok.Type, Value: b.String()})
	}
	return out
}

func advance(col int, s string) int {
	for _, r := range s {
		if r == '\n' || r == '\r' {
			col = 0
			continue
		}
		col += runewidth.RuneWidth(r)
	}
	return col
}
