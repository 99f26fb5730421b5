package highlight

import (
	"errors"
	"fmt"
)

// Errors returned by highlighting operations.
var (
	// ErrThemeNotFound indicates the theme name is not in the collection.
	ErrThemeNotFound = errors.New("theme not found")

	// ErrLexerNotFound indicates the lexer name is not in the grammar set.
	ErrLexerNotFound = errors.New("lexer not found")

	// ErrDesync indicates the token stream no longer lines up with the
	// lines being read, typically because of invalid UTF-8 input.
	ErrDesync = errors.New("token stream out of step with input")
)

// Kind classifies a failure by the phase it happened in.
type Kind int

const (
	KindInit Kind = iota + 1
	KindIO
	KindHighlight
)

func (k Kind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindIO:
		return "io"
	case KindHighlight:
		return "highlight"
	default:
		return "unknown"
	}
}

// Error is the error type returned by sessions and the driver.
type Error struct {
	// Kind is the phase that failed.
	Kind Kind
	// Path is the file being highlighted (may be empty for theme lookups).
	Path string
	// Line is the 1-based line number, zero when not line specific.
	Line int
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Kind == KindInit && e.Path == "":
		return e.Err.Error()
	case e.Kind == KindInit:
		return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("%s error in %s at line %d: %v", e.Kind, e.Path, e.Line, e.Err)
	default:
		return fmt.Sprintf("%s error in %s: %v", e.Kind, e.Path, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewInitError wraps a failure to set up a session.
func NewInitError(path string, err error) *Error {
	return &Error{Kind: KindInit, Path: path, Err: err}
}

// NewIOError wraps a read or write failure on a given line.
func NewIOError(path string, line int, err error) *Error {
	return &Error{Kind: KindIO, Path: path, Line: line, Err: err}
}

// NewHighlightError wraps a failure to style a given line.
func NewHighlightError(path string, line int, err error) *Error {
	return &Error{Kind: KindHighlight, Path: path, Line: line, Err: err}
}

// IsInit reports whether err is an initialization failure.
func IsInit(err error) bool { return isKind(err, KindInit) }

// IsIO reports whether err is a read or write failure.
func IsIO(err error) bool { return isKind(err, KindIO) }

// IsHighlight reports whether err is a line highlighting failure.
func IsHighlight(err error) bool { return isKind(err, KindHighlight) }

func isKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
