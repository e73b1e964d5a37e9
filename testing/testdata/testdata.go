package testdata

import (
	"os"
	"path/filepath"
	"runtime"
)

// basepath is the root directory of this package.
var basepath string

func init() {
	_, currentFile, _, _ := runtime.Caller(0)
	basepath = filepath.Dir(currentFile)
}

// Path returns the absolute path the given relative file or directory path,
// relative to this testdata/ directory in the user's GOPATH.
// If rel is already absolute, it is returned unmodified.
// Taken from https://github.com/grpc/grpc-go/blob/master/testdata/testdata.go.
func Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}

	return filepath.Join(basepath, rel)
}

// GPX fixtures, relative to Path.
var (
	// GPX_Equator is three points along the equator:
	// (0,0,ele=0,t=0s) -> (0,1,ele=50,t=600s) -> (0.01,1,ele=48,t=1200s).
	GPX_Equator = "./gpx/equator.gpx"
	// GPX_MultiSegment has two tracks, three segments, a blank metadata name,
	// and a handful of unusable points and values.
	GPX_MultiSegment = "./gpx/multi_segment.gpx"
	// GPX_NoPoints is well-formed but has no track points.
	GPX_NoPoints = "./gpx/no_points.gpx"
	// GPX_Malformed is not well-formed XML.
	GPX_Malformed = "./gpx/malformed.gpx"
	// GPX_Latin1 is encoded as ISO-8859-1.
	GPX_Latin1 = "./gpx/latin1.gpx"
)

// CopyFixture copies the fixture at rel into dir as name.
func CopyFixture(rel, dir, name string) error {
	data, err := os.ReadFile(Path(rel))
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, name), data, 0644)
}
