package hike

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Entry is one record of the hikes index.
// Key order in JSON is title, file, url, then the Summary fields.
type Entry struct {
	Title string `json:"title"`
	File  string `json:"file"` // source file name, e.g. rjukan.gpx
	URL   string `json:"url"`  // site-relative, e.g. /hikes/rjukan.gpx
	Summary
}

// NewEntry builds an index entry for file. An empty title
// falls back to TitleFromFilename.
func NewEntry(file, title, urlPrefix string, s Summary) Entry {
	if strings.TrimSpace(title) == "" {
		title = TitleFromFilename(file)
	}
	return Entry{
		Title:   title,
		File:    file,
		URL:     urlPrefix + file,
		Summary: s,
	}
}

var filenameSeparators = regexp.MustCompile(`[_-]+`)

// TitleFromFilename strips the directory and extension from name
// and turns each run of underscores and hyphens into one space.
// Eg. "rjukan__gausta-toppen.gpx" -> "rjukan gausta toppen".
func TitleFromFilename(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filenameSeparators.ReplaceAllString(base, " ")
}
