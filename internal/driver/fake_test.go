package driver

import (
	"bytes"
	"errors"
	"io"

	"github.com/alecthomas/chroma/v2"

	"github.com/TimelordUK/hilite/internal/source"
)

// fakeSession serves fixed lines and fails on request
type fakeSession struct {
	lines        []string
	next         int
	readErrAt    int // 1-based, 0 disables
	readErr      error
	highlightErr map[int]error // 1-based line -> error
	highlighted  []string
}

func newFakeSession(lines ...string) *fakeSession {
	return &fakeSession{lines: lines, highlightErr: make(map[int]error)}
}

func (f *fakeSession) ReadLine(buf []byte) ([]byte, error) {
	if f.readErrAt > 0 && f.next+1 == f.readErrAt {
		return buf, f.readErr
	}
	if f.next >= len(f.lines) {
		return buf, io.EOF
	}
	buf = append(buf, f.lines[f.next]...)
	f.next++
	return buf, nil
}

func (f *fakeSession) Highlight(line string) ([]chroma.Token, error) {
	f.highlighted = append(f.highlighted, line)
	if err, ok := f.highlightErr[len(f.highlighted)]; ok {
		return nil, err
	}
	return []chroma.Token{{Type: chroma.Text, Value: line}}, nil
}

func (f *fakeSession) Path() string {
	return "fake.txt"
}

// recorder captures each line's rendering separately
type recorder struct {
	renders []string
	plain   []string
	fail    error
}

func (r *recorder) Render(w io.Writer, line *source.Line, tokens []chroma.Token) error {
	if r.fail != nil {
		return r.fail
	}
	var b bytes.Buffer
	for _, tok := range tokens {
		b.WriteString(tok.Value)
	}
	r.renders = append(r.renders, b.String())
	_, err := w.Write(b.Bytes())
	return err
}

func (r *recorder) RenderPlain(w io.Writer, line *source.Line) error {
	if r.fail != nil {
		return r.fail
	}
	r.plain = append(r.plain, string(line.Content))
	_, err := w.Write(line.Content)
	return err
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

var errBoom = errors.New("boom")
