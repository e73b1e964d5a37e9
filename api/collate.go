package api

import (
	"slices"
	"strings"

	"github.com/rotblauer/siteidx/params"
	"golang.org/x/text/collate"
)

// sortCollated sorts items in place by key, in the language-aware order
// a reader expects (accents next to their base letters, lower case before
// upper case) rather than byte order. Ties under the collator fall back
// to byte order so the result is deterministic.
func sortCollated[T any](items []T, key func(T) string) {
	c := collate.New(params.CollationLanguage)
	slices.SortStableFunc(items, func(a, b T) int {
		ka, kb := key(a), key(b)
		if r := c.CompareString(ka, kb); r != 0 {
			return r
		}
		return strings.Compare(ka, kb)
	})
}
