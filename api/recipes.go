package api

import (
	"fmt"
	"log/slog"

	"github.com/rotblauer/siteidx/flat"
	"github.com/rotblauer/siteidx/params"
	"github.com/rotblauer/siteidx/types/recipe"
)

type RecipesOptions struct {
	GZip bool
}

func RecipesOptionsFromConfig(c *params.Config) *RecipesOptions {
	return &RecipesOptions{GZip: c.GZip}
}

type RecipesResult struct {
	Items []recipe.IndexItem
	// Failed names the recipe files that were invalid or missing fields.
	Failed    []string
	IndexPath string
}

// BuildRecipesIndex validates every recipe document in dir and writes the
// recipes index, sorted by title, there. Invalid recipes are logged and left
// out of the index; callers decide whether that makes the run a failure.
// The directory is created if it does not exist.
func BuildRecipesIndex(dir *flat.Flat, opts *RecipesOptions) (*RecipesResult, error) {
	logger := slog.With("dir", dir.Path())

	if err := dir.MkdirAll(); err != nil {
		return nil, fmt.Errorf("create recipes dir: %w", err)
	}
	files, err := dir.ListFiles(recipe.IsRecipeFile)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	res := &RecipesResult{Items: []recipe.IndexItem{}}
	for _, file := range files {
		data, err := dir.ReadFile(file)
		if err != nil {
			logger.Error("Failed to read recipe", "file", file, "error", err)
			res.Failed = append(res.Failed, file)
			continue
		}
		item, err := recipe.NewIndexItem(recipe.Slug(file), data)
		if err != nil {
			logger.Error("Invalid recipe", "file", file, "error", err)
			res.Failed = append(res.Failed, file)
			continue
		}
		res.Items = append(res.Items, item)
	}
	sortCollated(res.Items, func(it recipe.IndexItem) string { return it.Title })

	w, err := dir.WriteJSON(params.IndexFileName, res.Items, flat.WriteOptions{GZip: opts.GZip})
	if err != nil {
		return res, fmt.Errorf("write recipes index: %w", err)
	}
	res.IndexPath = w.Path
	logWritten(logger, "Wrote recipes index", w, "recipes", len(res.Items), "failed", len(res.Failed))
	return res, nil
}
