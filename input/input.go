package input

import (
	"bytes"
	"io"
	"iter"
	"os"

	"go.dw1.io/mmapfile"
)

var _ io.Closer = (*File)(nil)

// File is a read-only view of a subject file.
type File struct {
	name string
	mm   *mmapfile.MmapFile
	data []byte
}

// Open maps the named file into memory, falling back to reading it whole.
func Open(name string) (*File, error) {
	if info, err := os.Stat(name); err == nil && info.Mode().IsRegular() && info.Size() > 0 {
		if mf, err := mmapfile.Open(name); err == nil {
			return &File{name: name, mm: mf}, nil
		}
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	return &File{name: name, data: data}, nil
}

// Name returns the name the file was opened with.
func (f *File) Name() string {
	return f.name
}

// Mapped reports whether the contents are memory-mapped.
func (f *File) Mapped() bool {
	return f.mm != nil
}

// Bytes returns the file contents. The slice must not be modified and is
// invalid after Close when the file is mapped.
func (f *File) Bytes() []byte {
	if f.mm != nil {
		return f.mm.Bytes()
	}

	return f.data
}

// Len returns the content length in bytes.
func (f *File) Len() int {
	if f.mm != nil {
		return f.mm.Len()
	}

	return len(f.data)
}

// Lines yields every line with its 1-based number. Line terminators ("\n"
// or "\r\n") are stripped; a final line without a terminator is still
// yielded.
func (f *File) Lines() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		data := f.Bytes()
		for n := 1; len(data) > 0; n++ {
			line := data
			i := bytes.IndexByte(data, '\n')
			if i >= 0 {
				line, data = data[:i], data[i+1:]
			} else {
				data = nil
			}

			line = bytes.TrimSuffix(line, []byte{'\r'})
			if !yield(n, line) {
				return
			}
		}
	}
}

// Close releases the mapping, if any.
func (f *File) Close() error {
	if f.mm != nil {
		err := f.mm.Close()
		f.mm = nil
		return err
	}

	f.data = nil
	return nil
}
