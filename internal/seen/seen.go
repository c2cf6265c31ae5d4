package seen

import "go.dw1.io/fastcache"

// DefaultSize is the number of distinct lines a [Set] remembers by default.
const DefaultSize = 16_384

// Set is a bounded set of lines. It is not safe for concurrent use.
type Set struct {
	lines *fastcache.Cache[uint64, int]
	seq   int
}

// New returns a Set remembering about size distinct lines. A size below 1
// means [DefaultSize].
func New(size int) *Set {
	if size < 1 {
		size = DefaultSize
	}

	return &Set{lines: fastcache.New[uint64, int](size)}
}

// Add records line and reports whether it was new.
func (s *Set) Add(line []byte) bool {
	key := sum64(line, 0)
	if _, found := s.lines.Get(key); found {
		return false
	}

	s.seq++
	s.lines.Set(key, s.seq)
	return true
}

// Len returns the number of lines added as new.
func (s *Set) Len() int {
	return s.seq
}
