// Package regexp compiles pattern strings with an external engine and exposes
// them behind a single stdlib-shaped [Regexp] type.
//
// Three engines are available:
//
//   - [EngineCore]: coregex, an accelerated RE2-compatible engine.
//   - [EnginePCRE]: [regexp2], for PCRE/Perl features such as lookarounds and
//     backreferences.
//   - [EngineRE2]: RE2 compiled to WebAssembly and run on wazero, via go-re2.
//
// By default ([EngineAuto]) patterns are compiled with coregex. When the
// pattern requires PCRE/Perl features that RE2/coregex cannot execute, the
// package automatically falls back to regexp2. Patterns that turn on
// case-insensitive matching with a flag group ("(?i)", "(?i:...)") are
// compiled with RE2, since coregex does not fold case correctly in them.
//
// The package never inspects a pattern beyond engine selection: syntax errors
// are whatever the chosen engine reports.
package regexp
