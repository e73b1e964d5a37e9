/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"log/slog"
	"os"

	"github.com/rotblauer/siteidx/api"
	"github.com/rotblauer/siteidx/flat"
	"github.com/rotblauer/siteidx/params"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// recipesCmd represents the recipes command
var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Validate recipe documents and write the recipes index",
	Long: `Reads every .json recipe in the recipes dir (except index.json)
and writes index.json there, sorted by title.

A recipe needs a title, numeric time_minutes and serves, and a tags array.
Invalid recipes are logged and left out; the index is still written,
but the command exits non-zero.

Flags:

  --dir   Recipes dir, relative to the site root. (Default is public/recipes.)`,
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		cfg := mustLoadConfig()
		res, err := runRecipes(cfg)
		if err != nil {
			slog.Error("Failed to build recipes index", "error", err)
			os.Exit(1)
		}
		if len(res.Failed) > 0 {
			slog.Error("Some recipes are invalid", "failed", res.Failed)
			os.Exit(1)
		}
	},
}

func runRecipes(cfg *params.Config) (*api.RecipesResult, error) {
	return api.BuildRecipesIndex(flat.NewFlatWithRoot(cfg.RecipesPath()), api.RecipesOptionsFromConfig(cfg))
}

func init() {
	rootCmd.AddCommand(recipesCmd)

	pFlags := recipesCmd.PersistentFlags()
	pFlags.String("dir", params.DefaultConfig().Recipes.Dir, "Recipes dir, containing the .json recipes")

	_ = viper.BindPFlag("recipes.dir", pFlags.Lookup("dir"))
}
