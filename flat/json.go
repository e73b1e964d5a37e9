package flat

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/rotblauer/siteidx/params"
)

type WriteOptions struct {
	// TrailingNewline ends JSON output with a newline.
	TrailingNewline bool
	// GZip also writes a gzipped copy alongside, named with a .gz suffix.
	GZip bool
}

// Written reports what a write put on disk.
type Written struct {
	Path   string
	Size   int64
	GZPath string
	GZSize int64
}

// MarshalIndent encodes v with two-space indentation and without escaping
// HTML characters. The output has no trailing newline.
func MarshalIndent(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteJSON writes v as indented JSON to the named file.
func (f *Flat) WriteJSON(name string, v any, opts WriteOptions) (*Written, error) {
	data, err := MarshalIndent(v)
	if err != nil {
		return nil, err
	}
	if opts.TrailingNewline {
		data = append(data, '\n')
	}
	return f.WriteFile(name, data, opts)
}

// WriteFile atomically writes data to the named file,
// plus the gzipped copy if opts.GZip is set.
func (f *Flat) WriteFile(name string, data []byte, opts WriteOptions) (*Written, error) {
	err := f.WriteFileAtomic(name, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := &Written{Path: f.Join(name), Size: int64(len(data))}
	if !opts.GZip {
		return out, nil
	}
	gzName := name + params.GZipSuffix
	n, err := f.WriteGZFileAtomic(gzName, data, nil)
	if err != nil {
		return out, err
	}
	out.GZPath = f.Join(gzName)
	out.GZSize = n
	return out, nil
}
