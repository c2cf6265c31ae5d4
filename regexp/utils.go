package regexp

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// needsPCRE checks if the pattern contains PCRE2-only features, based on
// pcre2syntax.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
func needsPCRE(pattern string) bool {
	// Tokens and constructs
	pcre2Tokens := []string{
		// Lookahead/lookbehind assertions (atomic and non-atomic)
		"(?=", "(?!", "(?<=", "(?<!", // Perl-style lookarounds
		"(*pla:", "(*positive_lookahead:",
		"(*nla:", "(*negative_lookahead:",
		"(*plb:", "(*positive_lookbehind:",
		"(*nlb:", "(*negative_lookbehind:",
		"(?*", "(*napla:", "(*non_atomic_positive_lookahead:",
		"(?<*", "(*naplb:", "(*non_atomic_positive_lookbehind:",
		// Substring scan assertion
		"(*scan_substring:", "(*scs:",
		// Script runs
		"(*script_run:", "(*sr:", "(*atomic_script_run:", "(*asr:",
		// Backtracking control verbs
		"(*ACCEPT)", "(*FAIL)", "(*F)", "(*MARK:", "(*:", "(*COMMIT)", "(*PRUNE)", "(*SKIP)", "(*THEN)",
		// Option setting (PCRE2 extensions)
		"(*LIMIT_DEPTH=", "(*LIMIT_HEAP=", "(*LIMIT_MATCH=", "(*CASELESS_RESTRICT)", "(*NOTEMPTY)", "(*NOTEMPTY_ATSTART)",
		"(*NO_AUTO_POSSESS)", "(*NO_DOTSTAR_ANCHOR)", "(*NO_JIT)", "(*NO_START_OPT)", "(*TURKISH_CASING)", "(*UTF)", "(*UCP)",
		// Newline conventions
		"(*CR)", "(*LF)", "(*CRLF)", "(*ANYCRLF)", "(*ANY)", "(*NUL)",
		// What \R matches
		"(*BSR_ANYCRLF)", "(*BSR_UNICODE)",
		// Atomic groups
		"(?>", "(*atomic:",
		// Branch reset group
		"(?|",
		// Conditional group
		"(?(DEFINE)", "(?(", // (?(DEFINE) and (?(condition)
		// Comment
		"(?#",
		// Recursion/subroutine calls
		"(?R)", "(?P>", "(?&", // (?R), (?P>name), (?&name)
		// Perl extended character classes
		"(?[",
	}

	// Escapes and character types
	pcre2Escapes := []string{
		`(?C`,      // callout
		`\C`,       // one code unit (dangerous, not in Go)
		`\h`, `\H`, // horizontal whitespace
		`\v`, `\V`, // vertical whitespace
		`\R`,         // newline sequence
		`\X`,         // Unicode extended grapheme cluster
		`\N`,         // not newline (not supported in Go)
		`\K`,         // set reported start of match
		`\e`,         // escape character
		`\f`,         // form feed
		`\a`,         // alarm
		`\o{`,        // octal code
		`\N{U+`,      // Unicode code point
		`\x{`,        // hex code (Go only supports \xhh)
		`\p{`, `\P{`, // Unicode property escapes (Go supports a subset)
	}

	// Backreference and subroutine call syntax not supported by Go
	pcre2Backrefs := []string{
		`\\g`, `\\k`, // \g, \k (named/numbered backrefs)
		`(?P=`,         // Python-style named backref
		`\\g<`, `\\g'`, // Oniguruma-style subroutine call
	}

	// Named backreferences
	pcre2NamedBackrefs := []string{
		`\k<`, `\k'`, `\k{`,
	}

	// Named group call
	pcre2NamedGroupCall := []string{
		`(?P>`, `(?&`, // Perl-style named group call
	}

	// Anchors (Go supports ^ and $ only)
	pcre2Anchors := []string{`\A`, `\Z`, `\z`, `\G`}

	// Check for any PCRE2-only features
	checks := [][]string{
		pcre2Tokens,
		pcre2Escapes,
		pcre2Backrefs,
		pcre2NamedBackrefs,
		pcre2NamedGroupCall,
		pcre2Anchors,
	}
	for _, group := range checks {
		for _, v := range group {
			if strings.Contains(pattern, v) {
				return true
			}
		}
	}

	// Check for backreferences: \1, \2, ... (Go does not support these)
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '\\' {
			if !escaped && i+1 < len(pattern) {
				next := pattern[i+1]
				if next >= '1' && next <= '9' {
					return true
				}
			}
			escaped = !escaped
		} else {
			escaped = false
		}
	}

	// Named capturing groups: (?P<name>...) and (?<name>...) are RE2 syntax;
	// lookbehinds starting with "(?<" are caught above. (?'name'...) is not.
	return strings.Contains(pattern, "(?'")
}

// foldsCase reports whether the pattern sets the case-insensitive flag in a
// flag group such as "(?i)", "(?i:" or "(?si:". coregex mismatches these,
// so they are routed to RE2.
func foldsCase(pattern string) bool {
	for i := 0; i+2 < len(pattern); i++ {
		if pattern[i] != '(' || pattern[i+1] != '?' || (i > 0 && isEscaped(pattern, i)) {
			continue
		}

		for j := i + 2; j < len(pattern); j++ {
			c := pattern[j]
			if c == 'i' {
				// A negated flag ("-i") turns folding off.
				if !strings.Contains(pattern[i+2:j], "-") {
					return true
				}
				continue
			}
			if c != 'm' && c != 's' && c != 'U' && c != '-' {
				break
			}
		}
	}

	return false
}

// isEscaped reports whether pattern[i] is preceded by an odd number of
// backslashes.
func isEscaped(pattern string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && pattern[j] == '\\'; j-- {
		n++
	}

	return n%2 == 1
}

func groupsToStrings(s string, groups []regexp2.Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		if len(g.Captures) == 0 {
			continue
		}
		start, end := runeRangeToByte(s, g.Index, g.Length)
		out[i] = s[start:end]
	}
	return out
}

func groupsToIndexes(s string, groups []regexp2.Group) []int {
	out := make([]int, 0, len(groups)*2)
	for _, g := range groups {
		if len(g.Captures) == 0 {
			out = append(out, -1, -1)
			continue
		}
		start, end := runeRangeToByte(s, g.Index, g.Length)
		out = append(out, start, end)
	}
	return out
}

func stringsToBytes(ss []string) [][]byte {
	if ss == nil {
		return nil
	}

	out := make([][]byte, len(ss))
	for i := range ss {
		out[i] = []byte(ss[i])
	}
	return out
}

func runeRangeToByte(s string, startRune, length int) (int, int) {
	if startRune < 0 || length < 0 {
		return -1, -1
	}

	start := runeToByteOffset(s, startRune)
	end := runeToByteOffset(s, startRune+length)
	return start, end
}

func runeToByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}

	count := 0
	for i := range s {
		if count == runeIndex {
			return i
		}
		count++
	}

	return len(s)
}
