package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Gutter renders right-aligned line numbers
type Gutter struct {
	width int
	style lipgloss.Style
}

// NewGutter sizes the gutter for lineCount lines and styles it for the
// given profile
func NewGutter(lineCount int, out io.Writer, profile termenv.Profile) *Gutter {
	renderer := lipgloss.NewRenderer(out)
	renderer.SetColorProfile(profile)
	return &Gutter{
		width: len(strconv.Itoa(max(lineCount, 1))),
		style: renderer.NewStyle().Foreground(lipgloss.Color("240")), // Dark gray
	}
}

// Render returns the gutter for line n, including the separating space
func (g *Gutter) Render(n int) string {
	return g.style.Render(fmt.Sprintf("%*d", g.width, n)) + " "
}
