package builder

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"go.dw1.io/rex/regexp"
)

// Builder accumulates a pattern string. The zero value is an empty builder
// ready to use.
type Builder struct {
	buf    []byte
	global bool
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// String returns the accumulated pattern.
func (b *Builder) String() string {
	if b == nil {
		return ""
	}

	return string(b.buf)
}

// Build returns the accumulated pattern. It is the same as [Builder.String].
func (b *Builder) Build() string {
	return b.String()
}

// Len returns the length of the pattern in bytes.
func (b *Builder) Len() int {
	if b == nil {
		return 0
	}

	return len(b.buf)
}

// Global reports whether [Builder.GlobalSearch] was used on b or on any
// builder nested into it.
func (b *Builder) Global() bool {
	return b != nil && b.global
}

// Reset empties the builder.
func (b *Builder) Reset() *Builder {
	b.buf = b.buf[:0]
	b.global = false
	return b
}

// Clone returns an independent copy of b.
func (b *Builder) Clone() *Builder {
	if b == nil {
		return New()
	}

	return &Builder{
		buf:    append([]byte(nil), b.buf...),
		global: b.global,
	}
}

// Compile hands the pattern to the engine facade and returns its result
// unchanged.
func (b *Builder) Compile(opts ...regexp.Option) (*regexp.Regexp, error) {
	return regexp.Compile(b.String(), opts...)
}

// MustCompile is like Compile but panics with the engine's error.
func (b *Builder) MustCompile(opts ...regexp.Option) *regexp.Regexp {
	return regexp.MustCompile(b.String(), opts...)
}

func (b *Builder) appendRune(r rune) *Builder {
	b.buf = utf8.AppendRune(b.buf, r)
	return b
}

func (b *Builder) appendString(s string) *Builder {
	b.buf = append(b.buf, s...)
	return b
}

// appendNested appends prefix, the pattern of x and suffix.
func (b *Builder) appendNested(prefix string, x *Builder, suffix string) *Builder {
	b.buf = append(b.buf, prefix...)
	if x != nil {
		b.buf = append(b.buf, x.buf...)
		b.global = b.global || x.global
	}
	b.buf = append(b.buf, suffix...)
	return b
}

// Literal appends r unchanged. Metacharacters keep their meaning; use
// [Builder.Escape] or [Builder.Text] to match them literally.
func (b *Builder) Literal(r rune) *Builder {
	return b.appendRune(r)
}

// Text appends s with every metacharacter quoted.
func (b *Builder) Text(s string) *Builder {
	return b.appendString(regexp.QuoteMeta(s))
}

// Raw appends s unchanged.
func (b *Builder) Raw(s string) *Builder {
	return b.appendString(s)
}

// Dot appends ".", matching any single character.
func (b *Builder) Dot() *Builder {
	return b.appendRune('.')
}

// Escape appends a backslash followed by r.
func (b *Builder) Escape(r rune) *Builder {
	b.buf = append(b.buf, '\\')
	return b.appendRune(r)
}

// StartOfLine appends the "^" anchor.
func (b *Builder) StartOfLine() *Builder {
	return b.appendRune('^')
}

// EndOfLine appends the "$" anchor.
func (b *Builder) EndOfLine() *Builder {
	return b.appendRune('$')
}

// CharacterClass appends "[chars]".
func (b *Builder) CharacterClass(chars string) *Builder {
	return b.appendString("[" + chars + "]")
}

// NegatedCharacterClass appends "[^chars]".
func (b *Builder) NegatedCharacterClass(chars string) *Builder {
	return b.appendString("[^" + chars + "]")
}

// RangeCharacterClass appends "[start-end]".
func (b *Builder) RangeCharacterClass(start, end rune) *Builder {
	b.buf = append(b.buf, '[')
	b.buf = utf8.AppendRune(b.buf, start)
	b.buf = append(b.buf, '-')
	b.buf = utf8.AppendRune(b.buf, end)
	b.buf = append(b.buf, ']')
	return b
}

// DashSpaceCharacterClass appends `[-\s]`, a dash or any whitespace.
func (b *Builder) DashSpaceCharacterClass() *Builder {
	return b.appendString(`[-\s]`)
}

// Digit appends `\d`.
func (b *Builder) Digit() *Builder { return b.appendString(`\d`) }

// NonDigit appends `\D`.
func (b *Builder) NonDigit() *Builder { return b.appendString(`\D`) }

// WordCharacter appends `\w`.
func (b *Builder) WordCharacter() *Builder { return b.appendString(`\w`) }

// NonWordCharacter appends `\W`.
func (b *Builder) NonWordCharacter() *Builder { return b.appendString(`\W`) }

// Whitespace appends `\s`.
func (b *Builder) Whitespace() *Builder { return b.appendString(`\s`) }

// NonWhitespace appends `\S`.
func (b *Builder) NonWhitespace() *Builder { return b.appendString(`\S`) }

// WordBoundary appends `\b`.
func (b *Builder) WordBoundary() *Builder { return b.appendString(`\b`) }

// NonWordBoundary appends `\B`.
func (b *Builder) NonWordBoundary() *Builder { return b.appendString(`\B`) }

// ZeroOrMore appends x followed by "*". The quantifier binds to the last atom
// of x; wrap x in [Builder.Group] to repeat all of it.
func (b *Builder) ZeroOrMore(x *Builder) *Builder {
	return b.appendNested("", x, "*")
}

// OneOrMore appends x followed by "+".
func (b *Builder) OneOrMore(x *Builder) *Builder {
	return b.appendNested("", x, "+")
}

// ZeroOrOne appends x followed by "?".
func (b *Builder) ZeroOrOne(x *Builder) *Builder {
	return b.appendNested("", x, "?")
}

// ExactRepetitions appends x followed by "{n}".
func (b *Builder) ExactRepetitions(x *Builder, n int) *Builder {
	return b.appendNested("", x, "{"+strconv.Itoa(n)+"}")
}

// MinRepetitions appends x followed by "{n,}".
func (b *Builder) MinRepetitions(x *Builder, n int) *Builder {
	return b.appendNested("", x, "{"+strconv.Itoa(n)+",}")
}

// RangeRepetitions appends x followed by "{n,m}". n > m is left for the
// engine to reject.
func (b *Builder) RangeRepetitions(x *Builder, n, m int) *Builder {
	return b.appendNested("", x, fmt.Sprintf("{%d,%d}", n, m))
}

// Group appends "(?:x)".
func (b *Builder) Group(x *Builder) *Builder {
	return b.appendNested("(?:", x, ")")
}

// CapturingGroup appends "(x)".
func (b *Builder) CapturingGroup(x *Builder) *Builder {
	return b.appendNested("(", x, ")")
}

// NonCapturingGroup appends "(?:x)".
func (b *Builder) NonCapturingGroup(x *Builder) *Builder {
	return b.appendNested("(?:", x, ")")
}

// NamedGroup appends "(?<name>x)", the named-group form every engine
// accepts.
func (b *Builder) NamedGroup(name string, x *Builder) *Builder {
	return b.appendNested("(?<"+name+">", x, ")")
}

// Backreference appends `\n`, a reference to capturing group n. Only regexp2
// executes backreferences; the default engine selection picks it.
func (b *Builder) Backreference(n int) *Builder {
	return b.appendString(`\` + strconv.Itoa(n))
}

// BoundWord appends `\b(?:x)\b`.
func (b *Builder) BoundWord(x *Builder) *Builder {
	return b.appendNested(`\b(?:`, x, `)\b`)
}

// NegativeWordBoundary appends `\B(?:x)\B`.
func (b *Builder) NegativeWordBoundary(x *Builder) *Builder {
	return b.appendNested(`\B(?:`, x, `)\B`)
}

// CaseInsensitive appends "(?i:x)".
func (b *Builder) CaseInsensitive(x *Builder) *Builder {
	return b.appendNested("(?i:", x, ")")
}

// Multiline appends "(?m:x)", letting ^ and $ match at line breaks inside x.
func (b *Builder) Multiline(x *Builder) *Builder {
	return b.appendNested("(?m:", x, ")")
}

// DotAll appends "(?s:x)", letting "." match newlines inside x.
func (b *Builder) DotAll(x *Builder) *Builder {
	return b.appendNested("(?s:", x, ")")
}

// GlobalSearch appends "(?:x)" and marks the builder global. None of the
// engines has an inline global flag; callers consult [Builder.Global] to
// choose between the Find and FindAll families.
func (b *Builder) GlobalSearch(x *Builder) *Builder {
	b.global = true
	return b.appendNested("(?:", x, ")")
}

// Alternative appends the alternatives joined by "|". Nothing is appended
// when alts is empty. The alternation is not grouped; wrap the alternatives
// in [Builder.Group] to bound it.
func (b *Builder) Alternative(alts ...*Builder) *Builder {
	for i, x := range alts {
		sep := "|"
		if i == 0 {
			sep = ""
		}
		b.appendNested(sep, x, "")
	}
	return b
}

// PositiveLookahead appends "(?=x)".
func (b *Builder) PositiveLookahead(x *Builder) *Builder {
	return b.appendNested("(?=", x, ")")
}

// NegativeLookahead appends "(?!x)".
func (b *Builder) NegativeLookahead(x *Builder) *Builder {
	return b.appendNested("(?!", x, ")")
}

// PositiveLookbehind appends "(?<=x)".
func (b *Builder) PositiveLookbehind(x *Builder) *Builder {
	return b.appendNested("(?<=", x, ")")
}

// NegativeLookbehind appends "(?<!x)".
func (b *Builder) NegativeLookbehind(x *Builder) *Builder {
	return b.appendNested("(?<!", x, ")")
}
