package ansi

import (
	"github.com/fatih/color"
)

// Reset ends every colored span.
const Reset = "\x1b[0m"

// Color is an SGR foreground color code.
type Color int

// Foreground colors.
const (
	Black  = Color(color.FgBlack)
	Red    = Color(color.FgRed)
	Green  = Color(color.FgGreen)
	Yellow = Color(color.FgYellow)
	Blue   = Color(color.FgBlue)
	Purple = Color(color.FgMagenta)
	Cyan   = Color(color.FgCyan)
	White  = Color(color.FgWhite)
)

var palette = map[Color]*color.Color{}

func init() {
	for _, c := range []Color{Black, Red, Green, Yellow, Blue, Purple, Cyan, White} {
		p := color.New(color.Attribute(c))
		// Fixed codes: ignore NO_COLOR and TTY detection.
		p.EnableColor()
		palette[c] = p
	}
}

// Colorize wraps text in the escape code for c and [Reset]. Unknown colors
// return text unchanged.
func Colorize(c Color, text string) string {
	p, ok := palette[c]
	if !ok {
		return text
	}

	return p.Sprint(text)
}

// FgBlack formats text with black foreground color.
func FgBlack(text string) string { return Colorize(Black, text) }

// FgRed formats text with red foreground color.
func FgRed(text string) string { return Colorize(Red, text) }

// FgGreen formats text with green foreground color.
func FgGreen(text string) string { return Colorize(Green, text) }

// FgYellow formats text with yellow foreground color.
func FgYellow(text string) string { return Colorize(Yellow, text) }

// FgBlue formats text with blue foreground color.
func FgBlue(text string) string { return Colorize(Blue, text) }

// FgPurple formats text with purple foreground color.
func FgPurple(text string) string { return Colorize(Purple, text) }

// FgCyan formats text with cyan foreground color.
func FgCyan(text string) string { return Colorize(Cyan, text) }

// FgWhite formats text with white foreground color.
func FgWhite(text string) string { return Colorize(White, text) }
