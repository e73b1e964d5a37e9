// Package recipe validates recipe documents and reduces them to the
// items listed in the recipes index.
package recipe

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/rotblauer/siteidx/params"
	"github.com/tidwall/gjson"
)

var (
	ErrInvalidJSON   = errors.New("invalid json")
	ErrMissingFields = errors.New("missing required fields")
)

// IndexItem is one record of the recipes index.
type IndexItem struct {
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	TimeMinutes float64 `json:"time_minutes"`
	Serves      float64 `json:"serves"`
	// Tags are passed through as found, whatever their element types.
	Tags []any `json:"tags"`
}

// IsRecipeFile reports whether name is a recipe document,
// i.e. a .json file other than the index itself.
func IsRecipeFile(name string) bool {
	return strings.HasSuffix(name, params.JSONExt) && name != params.IndexFileName
}

var jsonSuffix = regexp.MustCompile(`(?i)\.json$`)

// Slug is the file name without its .json extension, in any case.
func Slug(name string) string {
	return jsonSuffix.ReplaceAllString(name, "")
}

// NewIndexItem validates the recipe document data and returns its index item.
// Required are a non-empty title, numeric time_minutes and serves,
// and a tags array. Other fields (ingredients, steps) are not checked.
func NewIndexItem(slug string, data []byte) (IndexItem, error) {
	if !gjson.ValidBytes(data) {
		return IndexItem{}, ErrInvalidJSON
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return IndexItem{}, fmt.Errorf("%w: not an object", ErrMissingFields)
	}

	fields := gjson.GetManyBytes(data, "title", "time_minutes", "serves", "tags")
	title, minutes, serves, tags := fields[0], fields[1], fields[2], fields[3]

	var missing []string
	if title.Type != gjson.String || title.Str == "" {
		missing = append(missing, "title")
	}
	if !isNumber(minutes) {
		missing = append(missing, "time_minutes")
	}
	if !isNumber(serves) {
		missing = append(missing, "serves")
	}
	if !tags.IsArray() {
		missing = append(missing, "tags")
	}
	if len(missing) > 0 {
		return IndexItem{}, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	tagValues, _ := tags.Value().([]any)
	if tagValues == nil {
		tagValues = []any{}
	}
	return IndexItem{
		Slug:        slug,
		Title:       title.Str,
		TimeMinutes: minutes.Num,
		Serves:      serves.Num,
		Tags:        tagValues,
	}, nil
}

func isNumber(r gjson.Result) bool {
	return r.Type == gjson.Number && !math.IsInf(r.Num, 0) && !math.IsNaN(r.Num)
}
