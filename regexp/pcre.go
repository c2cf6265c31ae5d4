package regexp

import (
	"strconv"

	"github.com/dlclark/regexp2"
)

// pcre adapts regexp2 to the stdlib-shaped method set. regexp2 reports
// positions in runes; they are converted to byte offsets here. Match errors
// (timeouts) are reported as no match.
type pcre struct {
	re *regexp2.Regexp
}

func (p *pcre) Match(b []byte) bool {
	return p.MatchString(string(b))
}

func (p *pcre) MatchString(s string) bool {
	matched, err := p.re.MatchString(s)
	return err == nil && matched
}

func (p *pcre) Find(b []byte) []byte {
	m, err := p.re.FindStringMatch(string(b))
	if err != nil || m == nil {
		return nil
	}

	return []byte(m.String())
}

func (p *pcre) FindString(s string) string {
	m, err := p.re.FindStringMatch(s)
	if err != nil || m == nil {
		return ""
	}

	return m.String()
}

func (p *pcre) FindIndex(b []byte) []int {
	return p.FindStringIndex(string(b))
}

func (p *pcre) FindStringIndex(s string) []int {
	m, err := p.re.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	start, end := runeRangeToByte(s, m.Index, m.Length)
	return []int{start, end}
}

func (p *pcre) FindSubmatch(b []byte) [][]byte {
	return stringsToBytes(p.FindStringSubmatch(string(b)))
}

func (p *pcre) FindSubmatchIndex(b []byte) []int {
	return p.FindStringSubmatchIndex(string(b))
}

func (p *pcre) FindStringSubmatch(s string) []string {
	m, err := p.re.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	return groupsToStrings(s, m.Groups())
}

func (p *pcre) FindStringSubmatchIndex(s string) []int {
	m, err := p.re.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	return groupsToIndexes(s, m.Groups())
}

func (p *pcre) FindAll(b []byte, n int) [][]byte {
	return stringsToBytes(p.FindAllString(string(b), n))
}

func (p *pcre) FindAllIndex(b []byte, n int) [][]int {
	return p.FindAllStringIndex(string(b), n)
}

func (p *pcre) FindAllSubmatch(b []byte, n int) [][][]byte {
	matches := p.FindAllStringSubmatch(string(b), n)
	if matches == nil {
		return nil
	}

	out := make([][][]byte, len(matches))
	for i := range matches {
		out[i] = stringsToBytes(matches[i])
	}
	return out
}

func (p *pcre) FindAllSubmatchIndex(b []byte, n int) [][]int {
	return p.FindAllStringSubmatchIndex(string(b), n)
}

func (p *pcre) FindAllString(s string, n int) []string {
	var matches []string
	p.each(s, n, func(m *regexp2.Match) {
		matches = append(matches, m.String())
	})
	return matches
}

func (p *pcre) FindAllStringIndex(s string, n int) [][]int {
	var matches [][]int
	p.each(s, n, func(m *regexp2.Match) {
		start, end := runeRangeToByte(s, m.Index, m.Length)
		matches = append(matches, []int{start, end})
	})
	return matches
}

func (p *pcre) FindAllStringSubmatch(s string, n int) [][]string {
	var matches [][]string
	p.each(s, n, func(m *regexp2.Match) {
		matches = append(matches, groupsToStrings(s, m.Groups()))
	})
	return matches
}

func (p *pcre) FindAllStringSubmatchIndex(s string, n int) [][]int {
	var matches [][]int
	p.each(s, n, func(m *regexp2.Match) {
		matches = append(matches, groupsToIndexes(s, m.Groups()))
	})
	return matches
}

func (p *pcre) ReplaceAll(src, repl []byte) []byte {
	replaced, err := p.re.Replace(string(src), string(repl), -1, -1)
	if err != nil {
		return src
	}

	return []byte(replaced)
}

func (p *pcre) ReplaceAllString(src, repl string) string {
	replaced, err := p.re.Replace(src, repl, -1, -1)
	if err != nil {
		return src
	}

	return replaced
}

func (p *pcre) Split(s string, n int) []string {
	if n == 0 {
		return nil
	}

	parts := make([]string, 0)
	last := 0
	count := 0

	m, err := p.re.FindStringMatch(s)
	for err == nil && m != nil {
		if n > 0 && count+1 >= n {
			break
		}

		start, end := runeRangeToByte(s, m.Index, m.Length)
		parts = append(parts, s[last:start])
		last = end
		count++

		m, err = p.re.FindNextMatch(m)
	}

	parts = append(parts, s[last:])
	return parts
}

func (p *pcre) NumSubexp() int {
	return p.maxGroup()
}

func (p *pcre) SubexpNames() []string {
	max := p.maxGroup()

	names := make([]string, max+1)
	for i := 1; i <= max; i++ {
		name := p.re.GroupNameFromNumber(i)
		// regexp2 names unnamed groups by their number.
		if name == strconv.Itoa(i) {
			name = ""
		}
		names[i] = name
	}

	return names
}

func (p *pcre) maxGroup() int {
	max := 0
	for _, v := range p.re.GetGroupNumbers() {
		if v > max {
			max = v
		}
	}
	return max
}

// each calls fn for successive matches, at most n of them when n >= 0.
func (p *pcre) each(s string, n int, fn func(*regexp2.Match)) {
	count := 0
	m, err := p.re.FindStringMatch(s)
	for err == nil && m != nil {
		if n >= 0 && count >= n {
			return
		}

		fn(m)
		count++
		m, err = p.re.FindNextMatch(m)
	}
}
