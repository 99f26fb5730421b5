package render

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// ColorMode controls whether output carries escape codes
type ColorMode string

const (
	ColorAlways ColorMode = "always"
	ColorAuto   ColorMode = "auto"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a --color value
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAlways, ColorAuto, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want always, auto or never)", s)
	}
}

// Profile resolves the colour profile used for out.
// Auto asks the terminal, honouring NO_COLOR and CLICOLOR_FORCE.
func Profile(mode ColorMode, out io.Writer) termenv.Profile {
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAuto:
		return termenv.NewOutput(out).EnvColorProfile()
	default:
		return termenv.TrueColor
	}
}

// FormatterName maps a colour profile to a chroma terminal formatter
func FormatterName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal16"
	default:
		return "noop"
	}
}
