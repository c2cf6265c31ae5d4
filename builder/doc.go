// Package builder assembles regular-expression pattern strings from chained
// method calls.
//
// A [Builder] is a growable buffer. Every method appends a fixed fragment of
// pattern syntax and returns the receiver, so calls chain:
//
//	b := builder.New().
//		StartOfLine().
//		ExactRepetitions(builder.New().Digit(), 3).
//		Literal('-').
//		ExactRepetitions(builder.New().Digit(), 4).
//		EndOfLine()
//
//	b.String() // ^\d{3}-\d{4}$
//
// Nested builders are only read. Nothing is validated while building: the
// accumulated string is handed to [regexp.Compile] by [Builder.Compile], and
// an invalid pattern surfaces as that engine's own error.
//
// Builders are not safe for concurrent use.
package builder
