package recipe

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// toInt converts a decoded scalar to int. The decoders disagree on number
// types (int from YAML, int64 from TOML, float64 from JSON): integers go
// through safemath so out-of-range values are rejected instead of wrapped,
// floats must be whole, and anything else is left to cast.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		i, err := safemath.ConvertAny[int](v)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrBadArgument, err)
		}
		return i, nil
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case bool, nil:
		return 0, fmt.Errorf("%w: want integer, got %T", ErrBadArgument, v)
	}

	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadArgument, err)
	}

	return i, nil
}

func floatToInt(f float64) (int, error) {
	if f != math.Trunc(f) || f > math.MaxInt || f < math.MinInt {
		return 0, fmt.Errorf("%w: %v is not a valid integer", ErrBadArgument, f)
	}

	return int(f), nil
}

// toString converts a decoded scalar to string. Lists and mappings are
// rejected.
func toString(v any) (string, error) {
	switch v.(type) {
	case []any, map[string]any, nil:
		return "", fmt.Errorf("%w: want string, got %T", ErrBadArgument, v)
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadArgument, err)
	}

	return s, nil
}

// toRune converts a decoded scalar holding exactly one character.
func toRune(v any) (rune, error) {
	s, err := toString(v)
	if err != nil {
		return 0, err
	}

	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: want one character, got %q", ErrBadArgument, s)
	}

	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// stepsArg returns v as a step list; a single step becomes a one-element
// list.
func stepsArg(v any) ([]any, error) {
	switch l := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: steps required", ErrBadArgument)
	case []any:
		return l, nil
	default:
		return []any{v}, nil
	}
}

// toMap returns v as a mapping with string keys.
func toMap(v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: want mapping, got %T", ErrBadArgument, v)
	}

	return m, nil
}
