// Package seen remembers which lines have already been printed.
//
// Lines are keyed by their 64-bit wyhash and kept in a bounded
// [fastcache.Cache], so memory stays flat on large inputs. A line last seen
// more than roughly size distinct lines ago may be reported as new again.
//
// [fastcache.Cache]: https://pkg.go.dev/go.dw1.io/fastcache#Cache
package seen
