package ansi

import (
	"go.dw1.io/rex/builder"
)

// sgr matches Select Graphic Rendition sequences such as "\x1b[31m".
var sgr = builder.New().
	Text("\x1b[").
	ZeroOrMore(builder.New().CharacterClass("0-9;")).
	Literal('m').
	MustCompile()

// Strip removes SGR escape sequences from s.
func Strip(s string) string {
	return sgr.ReplaceAllString(s, "")
}
