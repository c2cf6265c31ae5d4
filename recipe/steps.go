package recipe

import (
	"errors"
	"fmt"
	"sort"

	"go.dw1.io/rex/builder"
)

type (
	nullaryFunc func(*builder.Builder) *builder.Builder
	runeFunc    func(*builder.Builder, rune) *builder.Builder
	stringFunc  func(*builder.Builder, string) *builder.Builder
	wrapFunc    func(b, x *builder.Builder) *builder.Builder
	countFunc   func(b, x *builder.Builder, n int) *builder.Builder
)

var nullarySteps = map[string]nullaryFunc{
	"dot":                        (*builder.Builder).Dot,
	"start_of_line":              (*builder.Builder).StartOfLine,
	"end_of_line":                (*builder.Builder).EndOfLine,
	"dash_space_character_class": (*builder.Builder).DashSpaceCharacterClass,
	"digit":                      (*builder.Builder).Digit,
	"non_digit":                  (*builder.Builder).NonDigit,
	"word_character":             (*builder.Builder).WordCharacter,
	"non_word_character":         (*builder.Builder).NonWordCharacter,
	"whitespace":                 (*builder.Builder).Whitespace,
	"non_whitespace":             (*builder.Builder).NonWhitespace,
	"word_boundary":              (*builder.Builder).WordBoundary,
	"non_word_boundary":          (*builder.Builder).NonWordBoundary,
}

var runeSteps = map[string]runeFunc{
	"literal": (*builder.Builder).Literal,
	"escape":  (*builder.Builder).Escape,
}

var stringSteps = map[string]stringFunc{
	"text":                    (*builder.Builder).Text,
	"raw":                     (*builder.Builder).Raw,
	"character_class":         (*builder.Builder).CharacterClass,
	"negated_character_class": (*builder.Builder).NegatedCharacterClass,
}

var wrapSteps = map[string]wrapFunc{
	"zero_or_more":           (*builder.Builder).ZeroOrMore,
	"one_or_more":            (*builder.Builder).OneOrMore,
	"zero_or_one":            (*builder.Builder).ZeroOrOne,
	"group":                  (*builder.Builder).Group,
	"capturing_group":        (*builder.Builder).CapturingGroup,
	"non_capturing_group":    (*builder.Builder).NonCapturingGroup,
	"bound_word":             (*builder.Builder).BoundWord,
	"negative_word_boundary": (*builder.Builder).NegativeWordBoundary,
	"case_insensitive":       (*builder.Builder).CaseInsensitive,
	"multiline":              (*builder.Builder).Multiline,
	"dot_all":                (*builder.Builder).DotAll,
	"global_search":          (*builder.Builder).GlobalSearch,
	"positive_lookahead":     (*builder.Builder).PositiveLookahead,
	"negative_lookahead":     (*builder.Builder).NegativeLookahead,
	"positive_lookbehind":    (*builder.Builder).PositiveLookbehind,
	"negative_lookbehind":    (*builder.Builder).NegativeLookbehind,
}

var countSteps = map[string]countFunc{
	"exact_repetitions": (*builder.Builder).ExactRepetitions,
	"min_repetitions":   (*builder.Builder).MinRepetitions,
}

// StepNames returns every step name a recipe may use, sorted.
func StepNames() []string {
	names := []string{"range_character_class", "backreference", "range_repetitions", "named_group", "alternative"}
	for name := range nullarySteps {
		names = append(names, name)
	}
	for name := range runeSteps {
		names = append(names, name)
	}
	for name := range stringSteps {
		names = append(names, name)
	}
	for name := range wrapSteps {
		names = append(names, name)
	}
	for name := range countSteps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func applySteps(b *builder.Builder, steps []any, path string) error {
	for i, step := range steps {
		if err := applyStep(b, step, fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func applyStep(b *builder.Builder, step any, path string) error {
	switch s := step.(type) {
	case string:
		fn, ok := nullarySteps[s]
		if !ok {
			if isKnownStep(s) {
				return &StepError{Path: path, Step: s, Err: fmt.Errorf("%w: argument required", ErrBadArgument)}
			}
			return &StepError{Path: path, Step: s, Err: ErrUnknownStep}
		}
		fn(b)
		return nil
	case map[string]any:
		if len(s) != 1 {
			return &StepError{Path: path, Err: fmt.Errorf("%w: a step mapping needs exactly one key, got %d", ErrBadArgument, len(s))}
		}
		for name, arg := range s {
			if err := applyCall(b, name, arg, path+"."+name); err != nil {
				var serr *StepError
				if errors.As(err, &serr) {
					return serr
				}
				return &StepError{Path: path, Step: name, Err: err}
			}
		}
		return nil
	default:
		return &StepError{Path: path, Err: fmt.Errorf("%w: a step is a name or a one-key mapping, got %T", ErrBadArgument, step)}
	}
}

func applyCall(b *builder.Builder, name string, arg any, path string) error {
	if fn, ok := nullarySteps[name]; ok {
		if arg != nil {
			return fmt.Errorf("%w: takes no argument", ErrBadArgument)
		}
		fn(b)
		return nil
	}

	if fn, ok := runeSteps[name]; ok {
		r, err := toRune(arg)
		if err != nil {
			return err
		}
		fn(b, r)
		return nil
	}

	if fn, ok := stringSteps[name]; ok {
		s, err := toString(arg)
		if err != nil {
			return err
		}
		fn(b, s)
		return nil
	}

	if fn, ok := wrapSteps[name]; ok {
		steps, err := stepsArg(arg)
		if err != nil {
			return err
		}
		x := builder.New()
		if err := applySteps(x, steps, path); err != nil {
			return err
		}
		fn(b, x)
		return nil
	}

	if fn, ok := countSteps[name]; ok {
		x, n, _, err := repetition(arg, path, false)
		if err != nil {
			return err
		}
		fn(b, x, n)
		return nil
	}

	switch name {
	case "range_repetitions":
		x, n, m, err := repetition(arg, path, true)
		if err != nil {
			return err
		}
		b.RangeRepetitions(x, n, m)
	case "range_character_class":
		bounds, ok := arg.([]any)
		if !ok || len(bounds) != 2 {
			return fmt.Errorf("%w: want [start, end]", ErrBadArgument)
		}
		start, err := toRune(bounds[0])
		if err != nil {
			return err
		}
		end, err := toRune(bounds[1])
		if err != nil {
			return err
		}
		b.RangeCharacterClass(start, end)
	case "backreference":
		n, err := toInt(arg)
		if err != nil {
			return err
		}
		b.Backreference(n)
	case "named_group":
		m, err := toMap(arg)
		if err != nil {
			return err
		}
		groupName, err := toString(m["name"])
		if err != nil {
			return fmt.Errorf("name: %w", err)
		}
		steps, err := stepsArg(m["steps"])
		if err != nil {
			return fmt.Errorf("steps: %w", err)
		}
		x := builder.New()
		if err := applySteps(x, steps, path+".steps"); err != nil {
			return err
		}
		b.NamedGroup(groupName, x)
	case "alternative":
		alts, ok := arg.([]any)
		if !ok {
			return fmt.Errorf("%w: want a list of step lists", ErrBadArgument)
		}
		xs := make([]*builder.Builder, len(alts))
		for i, alt := range alts {
			steps, err := stepsArg(alt)
			if err != nil {
				return err
			}
			xs[i] = builder.New()
			if err := applySteps(xs[i], steps, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		b.Alternative(xs...)
	default:
		return ErrUnknownStep
	}

	return nil
}

// repetition decodes {n, steps} or, when ranged, {n, m, steps}.
func repetition(arg any, path string, ranged bool) (*builder.Builder, int, int, error) {
	m, err := toMap(arg)
	if err != nil {
		return nil, 0, 0, err
	}

	n, err := toInt(m["n"])
	if err != nil {
		return nil, 0, 0, fmt.Errorf("n: %w", err)
	}

	var upper int
	if ranged {
		if upper, err = toInt(m["m"]); err != nil {
			return nil, 0, 0, fmt.Errorf("m: %w", err)
		}
	}

	steps, err := stepsArg(m["steps"])
	if err != nil {
		return nil, 0, 0, fmt.Errorf("steps: %w", err)
	}

	x := builder.New()
	if err := applySteps(x, steps, path+".steps"); err != nil {
		return nil, 0, 0, err
	}

	return x, n, upper, nil
}

func isKnownStep(name string) bool {
	for _, known := range StepNames() {
		if known == name {
			return true
		}
	}
	return false
}
