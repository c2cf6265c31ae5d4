package recipe

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownStep is wrapped by a *StepError naming a call the builder
	// does not have.
	ErrUnknownStep = errors.New("unknown step")
	// ErrBadArgument is wrapped by a *StepError whose argument has the wrong
	// shape.
	ErrBadArgument = errors.New("bad argument")
)

// StepError locates a step that could not be replayed.
type StepError struct {
	// Path is the step's location, e.g. "steps[2].group[0]".
	Path string
	Step string
	Err  error
}

func (e *StepError) Error() string {
	if e.Step == "" {
		return fmt.Sprintf("recipe: %s: %v", e.Path, e.Err)
	}

	return fmt.Sprintf("recipe: %s: %s: %v", e.Path, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// SampleError lists samples that did not behave as declared.
type SampleError struct {
	Recipe string
	// Missed should have matched but did not.
	Missed []string
	// Matched should have been rejected but matched.
	Matched []string
}

func (e *SampleError) Error() string {
	var parts []string
	if len(e.Missed) > 0 {
		parts = append(parts, fmt.Sprintf("%d expected match(es) missed %q", len(e.Missed), e.Missed))
	}
	if len(e.Matched) > 0 {
		parts = append(parts, fmt.Sprintf("%d expected rejection(s) matched %q", len(e.Matched), e.Matched))
	}

	return fmt.Sprintf("recipe %q: %s", e.Recipe, strings.Join(parts, "; "))
}
