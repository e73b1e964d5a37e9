package flat

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/rotblauer/siteidx/params"
	"github.com/spf13/afero"
)

type GZFileWriterConfig struct {
	CompressionLevel int
}

func DefaultGZFileWriterConfig() *GZFileWriterConfig {
	return &GZFileWriterConfig{
		CompressionLevel: params.DefaultGZipCompressionLevel,
	}
}

// WriteGZFileAtomic writes data gzipped to the named file.
// It returns the compressed size.
func (f *Flat) WriteGZFileAtomic(name string, data []byte, config *GZFileWriterConfig) (int64, error) {
	if config == nil {
		config = DefaultGZFileWriterConfig()
	}
	var written int64
	err := f.WriteFileAtomic(name, func(w io.Writer) error {
		cw := &countingWriter{w: w}
		gzw, err := gzip.NewWriterLevel(cw, config.CompressionLevel)
		if err != nil {
			return err
		}
		if _, err := gzw.Write(data); err != nil {
			return err
		}
		if err := gzw.Close(); err != nil {
			return err
		}
		written = cw.n
		return nil
	})
	return written, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// gzFileReader reads back a gzipped file written by WriteGZFileAtomic.
type gzFileReader struct {
	f      afero.File
	gzr    *gzip.Reader
	closed bool
}

func (f *Flat) namedGZReader(name string) (*gzFileReader, error) {
	fi, err := f.fs.Open(f.Join(name))
	if err != nil {
		return nil, err
	}
	gzr, err := gzip.NewReader(fi)
	if err != nil {
		_ = fi.Close()
		return nil, err
	}
	return &gzFileReader{f: fi, gzr: gzr}, nil
}

func (g *gzFileReader) Path() string {
	return g.f.Name()
}

// Read satisfies the io.Reader interface.
func (g *gzFileReader) Read(p []byte) (int, error) {
	return g.gzr.Read(p)
}

// Close closes the gzip reader and the file.
func (g *gzFileReader) Close() error {
	if g.closed {
		return nil
	}
	defer func() {
		g.closed = true
	}()
	if err := g.gzr.Close(); err != nil {
		return err
	}
	return g.f.Close()
}
