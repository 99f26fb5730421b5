// Package driver runs the read, highlight, write loop over one file.
package driver

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"

	"github.com/TimelordUK/hilite/internal/highlight"
	"github.com/TimelordUK/hilite/internal/log"
	"github.com/TimelordUK/hilite/internal/render"
	"github.com/TimelordUK/hilite/internal/source"
)

// Mode decides what a line that cannot be highlighted does to the run
type Mode string

const (
	// ModeStrict aborts the run on the first highlighting failure
	ModeStrict Mode = "strict"
	// ModeBestEffort writes the line unstyled and carries on
	ModeBestEffort Mode = "best-effort"
)

// ParseMode validates a --mode value
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeStrict, ModeBestEffort:
		return m, nil
	default:
		return "", fmt.Errorf("invalid mode %q (want strict or best-effort)", s)
	}
}

// Session is the highlighting state the driver consumes
type Session interface {
	source.LineReader

	// Highlight returns the tokens for exactly line. It is called once
	// for every line read, in order.
	Highlight(line string) ([]chroma.Token, error)

	// Path names the file for error messages
	Path() string
}

// Options configures a run
type Options struct {
	Mode     Mode
	Renderer render.Renderer
	Filter   *source.TextFilter // nil writes every line
}

// Run streams every line of sess to w.
//
// Lines the filter rejects are still highlighted so the lexer state stays
// correct for the lines that follow; they are just not written.
func Run(w io.Writer, sess Session, opts Options) error {
	if opts.Renderer == nil {
		return errors.New("driver: no renderer")
	}

	var (
		buf     []byte
		number  int
		written int
		failed  int
	)

	for {
		// ReadLine appends, so every line starts from an empty buffer
		buf = buf[:0]

		var err error
		buf, err = sess.ReadLine(buf)
		last := errors.Is(err, io.EOF)
		if last && len(buf) == 0 {
			break
		}
		if err != nil && !last {
			log.ErrorErr(log.CatDriver, "read failed", err, "line", number+1)
			return highlight.NewIOError(sess.Path(), number+1, err)
		}

		number++
		line := &source.Line{Content: buf, Number: number}
		show := opts.Filter.Match(line)

		tokens, err := sess.Highlight(string(buf))
		if err != nil {
			if !highlight.IsHighlight(err) {
				err = highlight.NewHighlightError(sess.Path(), number, err)
			}
			if opts.Mode != ModeBestEffort {
				log.ErrorErr(log.CatDriver, "highlight failed", err, "line", number)
				return err
			}

			failed++
			log.Warn(log.CatDriver, "writing line unstyled", "line", number, "error", err)
			if show {
				if err := opts.Renderer.RenderPlain(w, line); err != nil {
					return highlight.NewIOError(sess.Path(), number, err)
				}
				written++
			}
		} else if show {
			if err := opts.Renderer.Render(w, line, tokens); err != nil {
				return highlight.NewIOError(sess.Path(), number, err)
			}
			written++
		}

		if last {
			break
		}
	}

	log.Debug(log.CatDriver, "run complete",
		"path", sess.Path(), "lines", number, "written", written, "failed", failed)
	return nil
}
