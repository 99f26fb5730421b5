package render

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
)

// Reset returns the terminal to its default style
const Reset = "\x1b[0m"

// Encoder turns chroma tokens into terminal escape sequences
type Encoder struct {
	name      string
	formatter chroma.Formatter
	style     *chroma.Style
}

// NewEncoder creates an encoder for a registered chroma formatter
func NewEncoder(formatterName string, style *chroma.Style) (*Encoder, error) {
	formatter, ok := formatters.Registry[formatterName]
	if !ok {
		return nil, fmt.Errorf("unknown formatter %q", formatterName)
	}
	return &Encoder{
		name:      formatterName,
		formatter: formatter,
		style:     style,
	}, nil
}

// Encode writes tokens to w. With resetAtEnd a reset code follows the
// last token so colours never reach the next line.
func (e *Encoder) Encode(w io.Writer, tokens []chroma.Token, resetAtEnd bool) error {
	if err := e.formatter.Format(w, e.style, chroma.Literator(tokens...)); err != nil {
		return err
	}
	if resetAtEnd && e.Colored() {
		if _, err := io.WriteString(w, Reset); err != nil {
			return err
		}
	}
	return nil
}

// Colored reports whether the formatter emits escape codes
func (e *Encoder) Colored() bool {
	return e.name != "noop"
}

// Name returns the formatter name
func (e *Encoder) Name() string {
	return e.name
}
