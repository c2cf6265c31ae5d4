package recipe

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.dw1.io/rex/regexp"
)

const phonePattern = `^\s*(?:\+?[0-9]{10}|\(\d{3}\)|\d{3})(?:[-\s]?\d{3}[-\s]?\d{4})?\s*$`

func TestLoadFile(t *testing.T) {
	cases := []struct {
		file    string
		name    string
		pattern string
		engine  regexp.Engine
	}{
		{"phone.yaml", "phone", phonePattern, regexp.EngineCore},
		{"year.toml", "year", `\b(?<year>\d{4})\b`, regexp.EngineCore},
		{"email.json", "email", `\b(?:[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})\b`, regexp.EngineCore},
		{"price.yaml", "price", `(?<=\$)\d+(?:\.\d{2})?`, regexp.EnginePCRE},
	}

	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			r, err := LoadFile(filepath.Join("testdata", tc.file))
			require.NoError(t, err)

			assert.Equal(t, tc.name, r.Name)

			pattern, err := r.Pattern()
			require.NoError(t, err)
			assert.Equal(t, tc.pattern, pattern)

			re, err := r.Compile()
			require.NoError(t, err)
			assert.Equal(t, tc.engine, re.Engine())
			assert.NoError(t, r.Check(re))
		})
	}
}

func TestCompileOptionsOverrideRecipeEngine(t *testing.T) {
	r, err := LoadFile(filepath.Join("testdata", "year.toml"))
	require.NoError(t, err)

	re, err := r.Compile(regexp.WithEngine(regexp.EngineRE2))
	require.NoError(t, err)
	t.Cleanup(re.Release)

	assert.Equal(t, regexp.EngineRE2, re.Engine())
	assert.Equal(t, []string{"", "year"}, re.SubexpNames())
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"a.yaml": FormatYAML,
		"a.YML":  FormatYAML,
		"a.toml": FormatTOML,
		"a.json": FormatJSON,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("recipe.txt")
	assert.Error(t, err)
}

func TestParseFormatsAgree(t *testing.T) {
	docs := map[Format]string{
		FormatYAML: `
steps:
  - backreference: 1
  - range_repetitions: {n: 2, m: 5, steps: dot}
`,
		FormatTOML: `
steps = [ { backreference = 1 }, { range_repetitions = { n = 2, m = 5, steps = "dot" } } ]
`,
		FormatJSON: `{"steps": [{"backreference": 1}, {"range_repetitions": {"n": 2, "m": 5, "steps": "dot"}}]}`,
	}

	for format, doc := range docs {
		t.Run(string(format), func(t *testing.T) {
			r, err := Parse([]byte(doc), format)
			require.NoError(t, err)

			pattern, err := r.Pattern()
			require.NoError(t, err)
			assert.Equal(t, `\1.{2,5}`, pattern)
		})
	}
}

func TestEveryStepName(t *testing.T) {
	doc := `
steps:
  - dot
  - start_of_line
  - end_of_line
  - dash_space_character_class
  - digit
  - non_digit
  - word_character
  - non_word_character
  - whitespace
  - non_whitespace
  - word_boundary
  - non_word_boundary
  - literal: a
  - escape: "."
  - text: "a+b"
  - raw: "x|y"
  - character_class: abc
  - negated_character_class: abc
  - range_character_class: [a, z]
  - zero_or_more: digit
  - one_or_more: digit
  - zero_or_one: digit
  - group: digit
  - capturing_group: digit
  - non_capturing_group: digit
  - bound_word: digit
  - negative_word_boundary: digit
  - case_insensitive: digit
  - multiline: digit
  - dot_all: digit
  - global_search: digit
  - positive_lookahead: digit
  - negative_lookahead: digit
  - positive_lookbehind: digit
  - negative_lookbehind: digit
  - exact_repetitions: {n: 1, steps: digit}
  - min_repetitions: {n: 1, steps: digit}
  - range_repetitions: {n: 1, m: 2, steps: digit}
  - backreference: 1
  - named_group: {name: g, steps: digit}
  - alternative: [digit, dot]
`
	r, err := Parse([]byte(doc), FormatYAML)
	require.NoError(t, err)
	assert.Len(t, r.Steps, len(StepNames()))

	b, err := r.Builder()
	require.NoError(t, err)
	assert.True(t, b.Global())
	assert.Equal(t,
		`.^$[-\s]\d\D\w\W\s\S\b\Ba\.a\+bx|y[abc][^abc][a-z]\d*\d+\d?(?:\d)(\d)(?:\d)\b(?:\d)\b\B(?:\d)\B`+
			`(?i:\d)(?m:\d)(?s:\d)(?:\d)(?=\d)(?!\d)(?<=\d)(?<!\d)\d{1}\d{1,}\d{1,2}\1(?<g>\d)\d|.`,
		b.String())

	re, err := r.Compile()
	require.NoError(t, err)
	assert.Equal(t, regexp.EnginePCRE, re.Engine())

	_, err = r.Compile(regexp.WithEngine(regexp.EnginePCRE))
	require.NoError(t, err)

	// coregex and RE2 have no lookarounds or backreferences.
	portable := &Recipe{Name: "portable"}
	for _, step := range r.Steps {
		if !needsBacktracking(step) {
			portable.Steps = append(portable.Steps, step)
		}
	}
	require.Len(t, portable.Steps, len(r.Steps)-5)

	for _, engine := range []regexp.Engine{regexp.EngineCore, regexp.EngineRE2} {
		re, err := portable.Compile(regexp.WithEngine(engine))
		require.NoError(t, err, engine.String())
		assert.Equal(t, []string{"", "", "g"}, re.SubexpNames(), engine.String())
		re.Release()
	}
}

func needsBacktracking(step any) bool {
	m, ok := step.(map[string]any)
	if !ok {
		return false
	}

	for _, name := range []string{"positive_lookahead", "negative_lookahead", "positive_lookbehind", "negative_lookbehind", "backreference"} {
		if _, ok := m[name]; ok {
			return true
		}
	}
	return false
}

func TestStepErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		path string
		want error
	}{
		{"unknownName", "steps: [digits]", "steps[0]", ErrUnknownStep},
		{"unknownCall", "steps: [{lookahead: digit}]", "steps[0]", ErrUnknownStep},
		{"argumentRequired", "steps: [group]", "steps[0]", ErrBadArgument},
		{"nullaryWithArgument", "steps: [{digit: 3}]", "steps[0]", ErrBadArgument},
		{"twoKeys", "steps: [{digit: null, dot: null}]", "steps[0]", ErrBadArgument},
		{"literalTooLong", "steps: [{literal: ab}]", "steps[0]", ErrBadArgument},
		{"classNotString", "steps: [{character_class: [a]}]", "steps[0]", ErrBadArgument},
		{"rangeArity", "steps: [{range_character_class: [a]}]", "steps[0]", ErrBadArgument},
		{"countNotInteger", "steps: [{exact_repetitions: {n: 1.5, steps: digit}}]", "steps[0]", ErrBadArgument},
		{"countMissing", "steps: [{exact_repetitions: {steps: digit}}]", "steps[0]", ErrBadArgument},
		{"stepsMissing", "steps: [{min_repetitions: {n: 2}}]", "steps[0]", ErrBadArgument},
		{"nested", "steps: [dot, {group: [digit, {capturing_group: [nope]}]}]", "steps[1].group[1].capturing_group[0]", ErrUnknownStep},
		{"nestedAlternative", "steps: [{alternative: [[digit], [dot, 7]]}]", "steps[0].alternative[1][1]", ErrBadArgument},
		{"namedGroupName", "steps: [{named_group: {steps: digit}}]", "steps[0]", ErrBadArgument},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc), FormatYAML)
			require.Error(t, err)

			var serr *StepError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tc.path, serr.Path)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseRejects(t *testing.T) {
	_, err := Parse([]byte("name: empty\n"), FormatYAML)
	assert.ErrorContains(t, err, "no steps")

	_, err = Parse([]byte("steps: [digit]\nengine: perl\n"), FormatYAML)
	assert.ErrorIs(t, err, regexp.ErrUnknownEngine)

	_, err = Parse([]byte("steps: [digit]\nflavour: x\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Parse([]byte(`steps = ["digit"]`+"\nflavour = 1\n"), FormatTOML)
	assert.Error(t, err)

	_, err = Parse([]byte(`{"steps": [`), FormatJSON)
	assert.Error(t, err)

	_, err = Parse([]byte("steps: [digit]"), Format("ini"))
	assert.Error(t, err)
}

func TestCheckReportsSamples(t *testing.T) {
	r, err := Parse([]byte(`
name: digits
steps: [{one_or_more: digit}]
samples:
  match: ["42", "none"]
  reject: ["abc", "a1"]
`), FormatYAML)
	require.NoError(t, err)

	re, err := r.Compile()
	require.NoError(t, err)

	err = r.Check(re)
	var serr *SampleError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "digits", serr.Recipe)
	assert.Equal(t, []string{"none"}, serr.Missed)
	assert.Equal(t, []string{"a1"}, serr.Matched)
	assert.Contains(t, err.Error(), `missed ["none"]`)
	assert.Contains(t, err.Error(), `matched ["a1"]`)
}

func TestCompileSurfacesEngineError(t *testing.T) {
	r, err := Parse([]byte(`steps: [{range_repetitions: {n: 5, m: 3, steps: digit}}]`), FormatYAML)
	require.NoError(t, err)

	_, err = r.Compile()
	assert.Error(t, err)
}

func TestToInt(t *testing.T) {
	for _, v := range []any{3, int64(3), uint8(3), float64(3), float32(3), "3"} {
		n, err := toInt(v)
		require.NoError(t, err, "%T", v)
		assert.Equal(t, 3, n)
	}

	for _, v := range []any{nil, true, 2.5, "three", uint64(math.MaxUint64), math.Inf(1)} {
		_, err := toInt(v)
		assert.Error(t, err, "%T %v", v, v)
	}
}
