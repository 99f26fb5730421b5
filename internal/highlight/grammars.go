package highlight

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Grammars selects chroma lexers for files.
//
// Selection order: a forced lexer, then an extension alias, then the
// filename patterns registered by each lexer, then content analysis,
// and finally the plaintext fallback.
type Grammars struct {
	forced  string
	aliases map[string]string // ".ext" -> lexer name
}

// LoadDefaultGrammars returns the built-in chroma lexer set with no
// overrides.
func LoadDefaultGrammars() *Grammars {
	return &Grammars{aliases: make(map[string]string)}
}

// Force makes every file use the named lexer.
// An empty name clears the override.
func (g *Grammars) Force(name string) error {
	if name == "" {
		g.forced = ""
		return nil
	}
	if _, err := g.Get(name); err != nil {
		return err
	}
	g.forced = name
	return nil
}

// SetAlias maps a file extension to a lexer name.
func (g *Grammars) SetAlias(ext, name string) error {
	if _, err := g.Get(name); err != nil {
		return err
	}
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	g.aliases[ext] = name
	return nil
}

// Get returns the lexer registered under name or one of its aliases.
func (g *Grammars) Get(name string) (chroma.Lexer, error) {
	lexer := lexers.Get(name)
	if lexer == nil {
		return nil, fmt.Errorf("%w: %q", ErrLexerNotFound, name)
	}
	return lexer, nil
}

// Select picks the lexer for path, using content when the name alone
// is not enough.
func (g *Grammars) Select(path string, content []byte) chroma.Lexer {
	var lexer chroma.Lexer

	if g.forced != "" {
		lexer = lexers.Get(g.forced)
	}
	if lexer == nil {
		if name, ok := g.aliases[strings.ToLower(filepath.Ext(path))]; ok {
			lexer = lexers.Get(name)
		}
	}
	if lexer == nil {
		lexer = lexers.Match(filepath.Base(path))
	}
	if lexer == nil && len(content) > 0 {
		lexer = lexers.Analyse(string(content))
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}

	return chroma.Coalesce(lexer)
}

// Names returns the names of all registered lexers.
func (g *Grammars) Names() []string {
	return lexers.Names(false)
}
