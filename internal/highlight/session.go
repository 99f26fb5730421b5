package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"

	"github.com/TimelordUK/hilite/internal/log"
	"github.com/TimelordUK/hilite/internal/source"
)

// Session highlights one file line by line.
//
// The whole file is tokenised through a single lazy chroma iterator, so
// lexer state (open comments, strings, heredocs) carries from one line
// to the next. Highlight must be called once per line, in order, with
// exactly the bytes ReadLine returned.
type Session struct {
	src   *source.FileSource
	lexer chroma.Lexer
	style *chroma.Style

	content string
	offset  int // bytes of content already handed out by Highlight
	line    int // lines highlighted so far

	next    chroma.Iterator
	pending chroma.Token // tail of a token split at a line end
}

// Open starts a highlighting session for path using the given grammar
// set and theme.
func Open(path string, grammars *Grammars, style *chroma.Style) (*Session, error) {
	src, err := source.NewFileSource(path)
	if err != nil {
		return nil, NewInitError(path, err)
	}

	content, err := src.Content()
	if err != nil {
		_ = src.Close()
		return nil, NewInitError(path, err)
	}

	s := &Session{
		src:     src,
		lexer:   grammars.Select(path, content),
		style:   style,
		content: string(content),
		pending: chroma.EOF,
	}

	if err := s.restart(0); err != nil {
		_ = src.Close()
		return nil, NewInitError(path, err)
	}

	log.Debug(log.CatSession, "session opened",
		"path", path, "lexer", s.LexerName(), "theme", style.Name, "bytes", len(content))
	return s, nil
}

// restart tokenises content from offset with a fresh lexer state
func (s *Session) restart(offset int) error {
	it, err := s.lexer.Tokenise(&chroma.TokeniseOptions{State: "root"}, s.content[offset:])
	if err != nil {
		return err
	}
	s.next = it
	s.offset = offset
	s.pending = chroma.EOF
	return nil
}

// ReadLine appends the next line of the file to buf
func (s *Session) ReadLine(buf []byte) ([]byte, error) {
	return s.src.ReadLine(buf)
}

// Highlight returns the tokens covering exactly line.
//
// On failure the session restarts the lexer at the following line so a
// caller that chooses to continue gets sensible tokens afterwards.
func (s *Session) Highlight(line string) ([]chroma.Token, error) {
	s.line++

	tokens, ok := s.collect(line)
	if !ok {
		log.Warn(log.CatSession, "token stream desynchronised",
			"path", s.src.Path(), "line", s.line)
		if err := s.restart(min(s.offset+len(line), len(s.content))); err != nil {
			return nil, NewHighlightError(s.src.Path(), s.line, err)
		}
		return nil, NewHighlightError(s.src.Path(), s.line, ErrDesync)
	}

	s.offset += len(line)
	return tokens, nil
}

func (s *Session) collect(line string) ([]chroma.Token, bool) {
	var tokens []chroma.Token
	remaining := len(line)

	for remaining > 0 {
		tok := s.take()
		if tok == chroma.EOF {
			return nil, false
		}
		if tok.Value == "" {
			continue
		}
		if len(tok.Value) > remaining {
			s.pending = chroma.Token{Type: tok.Type, Value: tok.Value[remaining:]}
			tok.Value = tok.Value[:remaining]
		}
		tokens = append(tokens, tok)
		remaining -= len(tok.Value)
	}

	var got strings.Builder
	for _, tok := range tokens {
		got.WriteString(tok.Value)
	}
	if got.String() != line {
		return nil, false
	}
	return tokens, true
}

func (s *Session) take() chroma.Token {
	if s.pending != chroma.EOF {
		tok := s.pending
		s.pending = chroma.EOF
		return tok
	}
	return s.next()
}

// Style returns the session theme
func (s *Session) Style() *chroma.Style {
	return s.style
}

// LexerName returns the name of the selected lexer
func (s *Session) LexerName() string {
	return s.lexer.Config().Name
}

// LineCount returns the number of lines in the file
func (s *Session) LineCount() (int, error) {
	return s.src.LineCount()
}

// Path returns the file path
func (s *Session) Path() string {
	return s.src.Path()
}

// Close releases the underlying file
func (s *Session) Close() error {
	return s.src.Close()
}
