// Package ansi wraps text in fixed ANSI foreground color codes.
//
// Output never depends on the terminal: FgRed("x") is always
// "\x1b[31mx\x1b[0m". Deciding whether to color at all is left to the caller.
package ansi
