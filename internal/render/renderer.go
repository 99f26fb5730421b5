package render

import (
	"io"

	"github.com/alecthomas/chroma/v2"

	"github.com/TimelordUK/hilite/internal/source"
)

// Renderer writes one line of output
type Renderer interface {
	// Render writes the highlighted form of line
	Render(w io.Writer, line *source.Line, tokens []chroma.Token) error

	// RenderPlain writes line without styling
	RenderPlain(w io.Writer, line *source.Line) error
}

// Options configures line rendering
type Options struct {
	Gutter   *Gutter // nil disables line numbers
	TabWidth int     // 0 leaves tabs alone
}

// SyntaxRenderer encodes chroma tokens into escape sequences
type SyntaxRenderer struct {
	encoder *Encoder
	opts    Options
}

// NewSyntaxRenderer creates a syntax highlighting renderer
func NewSyntaxRenderer(encoder *Encoder, opts Options) *SyntaxRenderer {
	return &SyntaxRenderer{encoder: encoder, opts: opts}
}

// Render writes tokens followed by a reset code
func (r *SyntaxRenderer) Render(w io.Writer, line *source.Line, tokens []chroma.Token) error {
	if err := writeGutter(w, r.opts.Gutter, line); err != nil {
		return err
	}
	return r.encoder.Encode(w, ExpandTabs(tokens, r.opts.TabWidth), true)
}

// RenderPlain writes the raw line, used when highlighting fails
func (r *SyntaxRenderer) RenderPlain(w io.Writer, line *source.Line) error {
	if err := writePlain(w, line, r.opts); err != nil {
		return err
	}
	if !r.encoder.Colored() {
		return nil
	}
	_, err := io.WriteString(w, Reset)
	return err
}

// PlainRenderer renders without styling
type PlainRenderer struct {
	opts Options
}

// NewPlainRenderer creates a plain renderer
func NewPlainRenderer(opts Options) *PlainRenderer {
	return &PlainRenderer{opts: opts}
}

// Render ignores tokens and writes the line content as-is
func (r *PlainRenderer) Render(w io.Writer, line *source.Line, _ []chroma.Token) error {
	return writePlain(w, line, r.opts)
}

// RenderPlain writes the line content as-is
func (r *PlainRenderer) RenderPlain(w io.Writer, line *source.Line) error {
	return writePlain(w, line, r.opts)
}

func writePlain(w io.Writer, line *source.Line, opts Options) error {
	if err := writeGutter(w, opts.Gutter, line); err != nil {
		return err
	}
	content := line.Content
	if opts.TabWidth > 0 {
		expanded := ExpandTabs([]chroma.Token{{Type: chroma.Text, Value: string(content)}}, opts.TabWidth)
		content = []byte(expanded[0].Value)
	}
	_, err := w.Write(content)
	return err
}

func writeGutter(w io.Writer, g *Gutter, line *source.Line) error {
	if g == nil {
		return nil
	}
	_, err := io.WriteString(w, g.Render(line.Number))
	return err
}
