package regexp

import (
	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
	"github.com/wasilibs/go-re2"
)

// backend is the stdlib-shaped method set shared by every engine. coregex and
// go-re2 satisfy it directly; regexp2 goes through [pcre].
type backend interface {
	Match(b []byte) bool
	MatchString(s string) bool
	Find(b []byte) []byte
	FindString(s string) string
	FindIndex(b []byte) []int
	FindStringIndex(s string) []int
	FindSubmatch(b []byte) [][]byte
	FindSubmatchIndex(b []byte) []int
	FindStringSubmatch(s string) []string
	FindStringSubmatchIndex(s string) []int
	FindAll(b []byte, n int) [][]byte
	FindAllIndex(b []byte, n int) [][]int
	FindAllSubmatch(b []byte, n int) [][][]byte
	FindAllSubmatchIndex(b []byte, n int) [][]int
	FindAllString(s string, n int) []string
	FindAllStringIndex(s string, n int) [][]int
	FindAllStringSubmatch(s string, n int) [][]string
	FindAllStringSubmatchIndex(s string, n int) [][]int
	ReplaceAll(src, repl []byte) []byte
	ReplaceAllString(src, repl string) string
	Split(s string, n int) []string
	NumSubexp() int
	SubexpNames() []string
}

var (
	_ backend = (*coregex.Regex)(nil)
	_ backend = (*re2.Regexp)(nil)
	_ backend = (*pcre)(nil)
)

// Regexp is a compiled regular expression that delegates to coregex,
// regexp2 or RE2 depending on the engine chosen at compile time.
type Regexp struct {
	pattern string
	engine  Engine
	be      backend
}

// Compile parses a regular expression and returns a compiled Regexp.
//
// With the default [EngineAuto], patterns that require PCRE/Perl-only
// features (detected by needsPCRE) are compiled with regexp2, patterns with a
// case-insensitive flag group use RE2, and everything else uses coregex for
// speed. Errors are returned exactly as the engine reports
// them.
func Compile(pattern string, opts ...Option) (*Regexp, error) {
	o := newOptions(opts)

	engine := o.engine
	if engine == EngineAuto {
		switch {
		case needsPCRE(pattern):
			engine = EnginePCRE
		case foldsCase(pattern):
			engine = EngineRE2
		default:
			engine = EngineCore
		}
	}

	var (
		be  backend
		err error
	)
	switch engine {
	case EnginePCRE:
		be, err = compilePCRE(pattern, o)
	case EngineRE2:
		be, err = compileRE2(pattern, o)
	case EngineCore:
		be, err = compileCore(pattern, o)
	default:
		return nil, ErrUnknownEngine
	}
	if err != nil {
		return nil, err
	}

	return &Regexp{pattern: pattern, engine: engine, be: be}, nil
}

func compileCore(pattern string, o *options) (backend, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}

	if o.longest {
		re.Longest()
	}

	return re, nil
}

func compileRE2(pattern string, o *options) (backend, error) {
	re, err := re2.Compile(pattern)
	if err != nil {
		return nil, err
	}

	if o.longest {
		re.Longest()
	}

	return re, nil
}

func compilePCRE(pattern string, o *options) (backend, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, err
	}

	if o.timeout > 0 {
		re.MatchTimeout = o.timeout
	}

	return &pcre{re: re}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(pattern string, opts ...Option) *Regexp {
	re, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return re
}

// Match reports whether the byte slice b matches the regular expression
// pattern. This mirrors regexp.Match.
func Match(pattern string, b []byte) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	defer re.Release()

	return re.Match(b), nil
}

// MatchString reports whether the string s matches the regular expression
// pattern. This mirrors regexp.MatchString.
func MatchString(pattern, s string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	defer re.Release()

	return re.MatchString(s), nil
}

// QuoteMeta escapes all regular expression metacharacters in s.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// String returns the source pattern used to compile the Regexp.
func (r *Regexp) String() string {
	return r.pattern
}

// Engine reports which engine compiled the Regexp. It is never [EngineAuto].
func (r *Regexp) Engine() Engine {
	return r.engine
}

// Release frees engine resources held outside the Go heap. Only RE2 holds
// any; for the other engines it is a no-op. The Regexp must not be used
// afterwards.
func (r *Regexp) Release() {
	if rel, ok := r.be.(interface{ Release() }); ok {
		rel.Release()
	}
}

// Longest switches the underlying engine to leftmost-longest matching when
// supported. coregex and RE2 provide this directly; regexp2 is already
// PCRE-style and does not change behavior here.
func (r *Regexp) Longest() {
	if l, ok := r.be.(interface{ Longest() }); ok {
		l.Longest()
	}
}

// Match reports whether the byte slice b contains any match of the Regexp.
func (r *Regexp) Match(b []byte) bool { return r.be.Match(b) }

// MatchString reports whether the string s contains any match of the Regexp.
func (r *Regexp) MatchString(s string) bool { return r.be.MatchString(s) }

// Find returns the leftmost match of the Regexp in b.
func (r *Regexp) Find(b []byte) []byte { return r.be.Find(b) }

// FindString returns the leftmost match of the Regexp in s.
func (r *Regexp) FindString(s string) string { return r.be.FindString(s) }

// FindIndex returns a two-element slice with the start and end index of the
// leftmost match in b.
func (r *Regexp) FindIndex(b []byte) []int { return r.be.FindIndex(b) }

// FindStringIndex returns a two-element slice with the start and end index of
// the leftmost match in s.
func (r *Regexp) FindStringIndex(s string) []int { return r.be.FindStringIndex(s) }

// FindSubmatch returns slices identifying the leftmost match of the Regexp in
// b and its submatches.
func (r *Regexp) FindSubmatch(b []byte) [][]byte { return r.be.FindSubmatch(b) }

// FindSubmatchIndex returns slices holding the index pairs identifying the
// leftmost match of the Regexp in b and its submatches.
func (r *Regexp) FindSubmatchIndex(b []byte) []int { return r.be.FindSubmatchIndex(b) }

// FindStringSubmatch returns the leftmost match of the Regexp in s and its
// submatches as strings.
func (r *Regexp) FindStringSubmatch(s string) []string { return r.be.FindStringSubmatch(s) }

// FindStringSubmatchIndex returns the index pairs identifying the leftmost
// match of the Regexp in s and its submatches.
func (r *Regexp) FindStringSubmatchIndex(s string) []int {
	return r.be.FindStringSubmatchIndex(s)
}

// FindAll returns a slice of all successive matches of the Regexp in b.
func (r *Regexp) FindAll(b []byte, n int) [][]byte { return r.be.FindAll(b, n) }

// FindAllIndex returns a slice of all successive match indices of the Regexp
// in b.
func (r *Regexp) FindAllIndex(b []byte, n int) [][]int { return r.be.FindAllIndex(b, n) }

// FindAllSubmatch returns a slice of all successive matches of the Regexp in b
// and their submatches.
func (r *Regexp) FindAllSubmatch(b []byte, n int) [][][]byte { return r.be.FindAllSubmatch(b, n) }

// FindAllSubmatchIndex returns a slice of all successive match index pairs of
// the Regexp in b and their submatches.
func (r *Regexp) FindAllSubmatchIndex(b []byte, n int) [][]int {
	return r.be.FindAllSubmatchIndex(b, n)
}

// FindAllString returns a slice of all successive matches of the Regexp in s.
func (r *Regexp) FindAllString(s string, n int) []string { return r.be.FindAllString(s, n) }

// FindAllStringIndex returns a slice of all successive match indices of the
// Regexp in s.
func (r *Regexp) FindAllStringIndex(s string, n int) [][]int {
	return r.be.FindAllStringIndex(s, n)
}

// FindAllStringSubmatch returns a slice of all successive matches of the
// Regexp in s and their submatches.
func (r *Regexp) FindAllStringSubmatch(s string, n int) [][]string {
	return r.be.FindAllStringSubmatch(s, n)
}

// FindAllStringSubmatchIndex returns a slice of all successive match index
// pairs of the Regexp in s and their submatches.
func (r *Regexp) FindAllStringSubmatchIndex(s string, n int) [][]int {
	return r.be.FindAllStringSubmatchIndex(s, n)
}

// ReplaceAll returns a copy of src, replacing matches of the Regexp with repl.
func (r *Regexp) ReplaceAll(src, repl []byte) []byte { return r.be.ReplaceAll(src, repl) }

// ReplaceAllString returns a copy of src, replacing matches of the Regexp with
// repl.
func (r *Regexp) ReplaceAllString(src, repl string) string {
	return r.be.ReplaceAllString(src, repl)
}

// Split slices s into substrings separated by the Regexp.
func (r *Regexp) Split(s string, n int) []string { return r.be.Split(s, n) }

// NumSubexp returns the number of parenthesized subexpressions in this Regexp.
func (r *Regexp) NumSubexp() int { return r.be.NumSubexp() }

// SubexpNames returns the names of the parenthesized subexpressions in this
// Regexp. The name for the first sub-expression is names[1].
func (r *Regexp) SubexpNames() []string { return r.be.SubexpNames() }
