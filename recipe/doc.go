// Package recipe loads declarative builder programs.
//
// A recipe names a pattern and lists the builder calls that produce it:
//
//	name: year
//	steps:
//	  - word_boundary
//	  - named_group:
//	      name: year
//	      steps:
//	        - exact_repetitions: {n: 4, steps: [digit]}
//	  - word_boundary
//	samples:
//	  match: ["in 2024"]
//	  reject: ["in 24"]
//
// Recipes are read from YAML, TOML or JSON. A step is either the bare name of
// a call without arguments ("digit", "start_of_line") or a one-key mapping
// from the call name to its argument:
//
//   - a string for literal, escape, text, raw, character_class and
//     negated_character_class
//   - a two-element list for range_character_class
//   - an integer for backreference
//   - a step or list of steps for the wrapping calls (group, zero_or_more,
//     positive_lookahead, ...)
//   - {n, steps} for exact_repetitions and min_repetitions, {n, m, steps}
//     for range_repetitions
//   - {name, steps} for named_group
//   - a list of step lists for alternative
//
// The steps are replayed on a [builder.Builder]; nothing beyond argument
// shapes is checked before the pattern reaches the engine.
package recipe
