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

	"github.com/rotblauer/siteidx/params"
	"github.com/spf13/cobra"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build every index",
	Long: `Runs hikes, then recipes, with settings from the config file and environment.
Both run even if the first fails; the command exits non-zero if either failed.`,
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		cfg := mustLoadConfig()
		if !runBuild(cfg) {
			os.Exit(1)
		}
	},
}

// runBuild reports whether every index was built cleanly.
func runBuild(cfg *params.Config) bool {
	ok := true
	if _, err := runHikes(cfg); err != nil {
		slog.Error("Failed to build hikes index", "error", err)
		ok = false
	}
	res, err := runRecipes(cfg)
	if err != nil {
		slog.Error("Failed to build recipes index", "error", err)
		ok = false
	} else if len(res.Failed) > 0 {
		slog.Error("Some recipes are invalid", "failed", res.Failed)
		ok = false
	}
	return ok
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
