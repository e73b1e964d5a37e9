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

// hikesCmd represents the hikes command
var hikesCmd = &cobra.Command{
	Use:   "hikes",
	Short: "Summarize GPX tracks into the hikes index",
	Long: `Reads every .gpx file in the hikes dir and writes index.json next to them.

Each entry has the track's title, file, url, distance_km and total_time_s,
plus either ascent_m and descent_m (--elevation gain, the default)
or max_ele_m (--elevation max).

A file that is not well-formed XML is logged and left out of the index.
A missing hikes dir is an error.

Flags:

  --dir          Hikes dir, relative to the site root. (Default is public/hikes.)
  --url-prefix   Prepended to each file name to make its url. (Default is /hikes/.)
  --elevation    gain|max. (Default is gain.)
  --geojson      Also write hikes.geojson, a map layer of every track.`,
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		cfg := mustLoadConfig()
		if _, err := runHikes(cfg); err != nil {
			slog.Error("Failed to build hikes index", "error", err)
			os.Exit(1)
		}
	},
}

func runHikes(cfg *params.Config) (*api.HikesResult, error) {
	opts, err := api.HikesOptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return api.BuildHikesIndex(flat.NewFlatWithRoot(cfg.HikesPath()), opts)
}

func init() {
	rootCmd.AddCommand(hikesCmd)

	defaults := params.DefaultConfig().Hikes

	pFlags := hikesCmd.PersistentFlags()
	pFlags.String("dir", defaults.Dir, "Hikes dir, containing the .gpx files")
	pFlags.String("url-prefix", defaults.URLPrefix, "Site path prefix for each hike's url")
	pFlags.String("elevation", defaults.Elevation, "Elevation policy: gain (ascent/descent) or max (highest point)")
	pFlags.Bool("geojson", defaults.GeoJSON, "Also write the hikes.geojson map layer")

	_ = viper.BindPFlag("hikes.dir", pFlags.Lookup("dir"))
	_ = viper.BindPFlag("hikes.url_prefix", pFlags.Lookup("url-prefix"))
	_ = viper.BindPFlag("hikes.elevation", pFlags.Lookup("elevation"))
	_ = viper.BindPFlag("hikes.geojson", pFlags.Lookup("geojson"))
}
