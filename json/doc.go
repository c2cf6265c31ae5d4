// Package json encodes and decodes JSON with [sonic].
//
// The default configuration is sonic's standard-library compatible one with
// HTML escaping turned off, so patterns such as "(?<=a)b" are written as-is
// rather than as "(?\u003c=a)b".
package json
