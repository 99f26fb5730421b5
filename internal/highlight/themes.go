package highlight

import (
	"fmt"
	"maps"
	"slices"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultTheme is a base16 dark theme shipped with chroma.
const DefaultTheme = "base16-snazzy"

// Themes is a collection of named chroma styles.
type Themes struct {
	styles map[string]*chroma.Style
}

// LoadDefaultThemes returns every style registered with chroma.
func LoadDefaultThemes() *Themes {
	return &Themes{styles: styles.Registry}
}

// Get returns the named style. Unlike styles.Get it never falls back to
// a different theme.
func (t *Themes) Get(name string) (*chroma.Style, error) {
	style, ok := t.styles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	return style, nil
}

// Names returns the names of all themes, sorted.
func (t *Themes) Names() []string {
	return slices.Sorted(maps.Keys(t.styles))
}
