package regexp

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownEngine is returned by [ParseEngine] for names it does not know.
var ErrUnknownEngine = errors.New("regexp: unknown engine")

// Engine identifies the backend a [Regexp] was compiled with.
type Engine int

const (
	// EngineAuto picks coregex, or regexp2 when the pattern needs PCRE.
	EngineAuto Engine = iota
	// EngineCore is coregex.
	EngineCore
	// EnginePCRE is regexp2.
	EnginePCRE
	// EngineRE2 is RE2 on wazero.
	EngineRE2
)

var engineNames = [...]string{
	EngineAuto: "auto",
	EngineCore: "core",
	EnginePCRE: "pcre",
	EngineRE2:  "re2",
}

// String returns the engine name accepted by [ParseEngine].
func (e Engine) String() string {
	if e < 0 || int(e) >= len(engineNames) {
		return fmt.Sprintf("Engine(%d)", int(e))
	}

	return engineNames[e]
}

// ParseEngine maps a case-insensitive engine name to an [Engine]. The empty
// string is [EngineAuto].
func ParseEngine(name string) (Engine, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return EngineAuto, nil
	}

	for i, n := range engineNames {
		if n == name {
			return Engine(i), nil
		}
	}

	return EngineAuto, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}

type options struct {
	engine  Engine
	longest bool
	timeout time.Duration
}

// Option configures [Compile].
type Option func(*options)

// WithEngine forces the engine used to compile the pattern.
func WithEngine(engine Engine) Option {
	return func(o *options) {
		o.engine = engine
	}
}

// WithLongest compiles the pattern for leftmost-longest matching. It has no
// effect on regexp2.
func WithLongest() Option {
	return func(o *options) {
		o.longest = true
	}
}

// WithTimeout bounds a single regexp2 match. Zero means no timeout.
// coregex and RE2 run in linear time and ignore it.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return o
}
