// Package flat reads source documents from, and writes index files to,
// a plain directory of the site.
package flat

import (
	"os"
	"path/filepath"

	"github.com/rotblauer/siteidx/params"
	"github.com/spf13/afero"
)

type Flat struct {
	fs afero.Fs
	// path is the directory, including the root.
	path string
}

func NewFlatWithRoot(root string) *Flat {
	root = filepath.Clean(root)
	// If root is not absolute, make it absolute.
	if !filepath.IsAbs(root) {
		root, _ = filepath.Abs(root)
	}
	return &Flat{fs: afero.NewOsFs(), path: root}
}

// NewFlatWithFs is NewFlatWithRoot on an arbitrary filesystem.
func NewFlatWithFs(fs afero.Fs, root string) *Flat {
	return &Flat{fs: fs, path: filepath.Clean(root)}
}

// Joining returns a Flat for the subdirectory at paths.
func (f *Flat) Joining(paths ...string) *Flat {
	return &Flat{
		fs:   f.fs,
		path: filepath.Join(append([]string{f.path}, paths...)...),
	}
}

// Exists returns true if the directory exists.
func (f *Flat) Exists() bool {
	ok, err := afero.DirExists(f.fs, f.path)
	return err == nil && ok
}

func (f *Flat) MkdirAll() error {
	return f.fs.MkdirAll(f.path, params.DefaultDirPerm)
}

func (f *Flat) Path() string {
	return f.path
}

// Join returns the path of name inside the directory.
func (f *Flat) Join(name string) string {
	return filepath.Join(f.path, name)
}

// ListFiles returns the names of the regular files in the directory
// for which keep returns true, in directory order.
// Symlinks are followed; subdirectories are never listed.
func (f *Flat) ListFiles(keep func(name string) bool) ([]string, error) {
	infos, err := afero.ReadDir(f.fs, f.path)
	if err != nil {
		return nil, err
	}
	names := []string{}
	for _, fi := range infos {
		if keep != nil && !keep(fi.Name()) {
			continue
		}
		if fi.Mode()&os.ModeSymlink != 0 {
			target, err := f.fs.Stat(f.Join(fi.Name()))
			if err != nil {
				continue
			}
			fi = target
		}
		if !fi.Mode().IsRegular() {
			continue
		}
		names = append(names, fi.Name())
	}
	return names, nil
}

// ReadFile reads the whole of the named file.
func (f *Flat) ReadFile(name string) ([]byte, error) {
	return afero.ReadFile(f.fs, f.Join(name))
}
