// Package input opens subject files for scanning.
//
// Files are memory-mapped read-only via [mmapfile] when possible, giving
// zero-copy access to their contents. When mmap is unavailable or unsuitable
// (empty files, special files, unsupported platforms) the file is read into
// memory with [os.ReadFile] instead. Either way [File.Bytes] returns the
// whole content.
package input
