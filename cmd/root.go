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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/rotblauer/siteidx/common"
	"github.com/rotblauer/siteidx/params"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "siteidx",
	Short: "Build the static site's hike and recipe indexes",
	Long: `siteidx reads the site's source files and writes the index files the
frontend loads at runtime:

  public/hikes/index.json     one summary per GPX track (distance, elevation, time)
  public/hikes/hikes.geojson  optional map layer of every track
  public/recipes/index.json   one item per recipe document, sorted by title

Settings come from flags, SITEIDX_* environment variables (eg. SITEIDX_HIKES_ELEVATION=max),
or a .siteidx.yaml (or .toml, .json) config file in the site root or home directory.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	defaults := params.DefaultConfig()

	pFlags := rootCmd.PersistentFlags()
	pFlags.StringVar(&cfgFile, "config", "", "config file (default is <site-root>/.siteidx.yaml, then $HOME/.siteidx.yaml)")
	pFlags.String("site-root", defaults.SiteRoot, "Website project directory; relative source dirs resolve against it")
	pFlags.String("verbosity", defaults.Verbosity, "Log level: debug, info, warn, error")
	pFlags.Bool("gzip", defaults.GZip, "Also write a .gz copy of every index file")

	_ = viper.BindPFlag("site_root", pFlags.Lookup("site-root"))
	_ = viper.BindPFlag("verbosity", pFlags.Lookup("verbosity"))
	_ = viper.BindPFlag("gzip", pFlags.Lookup("gzip"))
}

// normalizeFlagName accepts --url_prefix for --url-prefix,
// matching the config file keys.
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	params.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		// Use config file from the flag.
		path, err := homedir.Expand(cfgFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.SetConfigFile(path)
	} else {
		root, err := homedir.Expand(viper.GetString("site_root"))
		if err == nil {
			viper.AddConfigPath(root)
		}
		home, err := homedir.Dir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(params.ConfigName)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
			os.Exit(1)
		}
	}
}

// setDefaultSlog installs the stderr text logger at the configured verbosity.
func setDefaultSlog(cmd *cobra.Command, args []string) {
	level, err := common.ParseSlogLevel(viper.GetString("verbosity"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	slog.SetDefault(common.NewTextLogger(os.Stderr, level))
	if used := viper.ConfigFileUsed(); used != "" {
		slog.Debug("Using config file", "file", used)
	}
	slog.Debug("Running command", "cmd", cmd.Name(), "args", args)
}

func mustLoadConfig() *params.Config {
	cfg, err := params.LoadConfig(viper.GetViper())
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	return cfg
}
