package flat

import (
	"io"

	"github.com/rotblauer/siteidx/params"
	"github.com/spf13/afero"
)

// WriteFileAtomic creates or replaces the named file with whatever write
// puts into it. Content goes to a temp file in the same directory first and
// is renamed into place only once write succeeds, so a failed or partial
// write leaves any previous file intact.
func (f *Flat) WriteFileAtomic(name string, write func(w io.Writer) error) (err error) {
	if err := f.MkdirAll(); err != nil {
		return err
	}
	tmp, err := afero.TempFile(f.fs, f.path, "."+name+".*.tmp")
	if err != nil {
		return err
	}
	closed := false
	defer func() {
		if err == nil {
			return
		}
		if !closed {
			_ = tmp.Close()
		}
		_ = f.fs.Remove(tmp.Name())
	}()

	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	closed = true
	if err = tmp.Close(); err != nil {
		return err
	}
	// TempFile creates with 0600.
	if err = f.fs.Chmod(tmp.Name(), params.DefaultFilePerm); err != nil {
		return err
	}
	return f.fs.Rename(tmp.Name(), f.Join(name))
}
