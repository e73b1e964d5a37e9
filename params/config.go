package params

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. SITEIDX_HIKES_DIR.
const EnvPrefix = "SITEIDX"

// ConfigName is the base name of the optional config file in the site root,
// e.g. .siteidx.yaml.
const ConfigName = ".siteidx"

type Config struct {
	// SiteRoot is the website project directory. Relative source
	// directories are resolved against it.
	SiteRoot string `mapstructure:"site_root"`

	// Verbosity is the slog level name: debug, info, warn, error.
	Verbosity string `mapstructure:"verbosity"`

	// GZip writes a precompressed .gz sidecar next to every index file.
	GZip bool `mapstructure:"gzip"`

	Hikes   HikesConfig   `mapstructure:"hikes"`
	Recipes RecipesConfig `mapstructure:"recipes"`
}

type HikesConfig struct {
	Dir string `mapstructure:"dir"`

	// URLPrefix is prepended to the file name to build each entry's url.
	URLPrefix string `mapstructure:"url_prefix"`

	// Elevation names the elevation policy: "gain" (ascent/descent)
	// or "max" (highest point).
	Elevation string `mapstructure:"elevation"`

	// GeoJSON enables the hikes.geojson map layer.
	GeoJSON bool `mapstructure:"geojson"`
}

type RecipesConfig struct {
	Dir string `mapstructure:"dir"`
}

func DefaultConfig() *Config {
	return &Config{
		SiteRoot:  ".",
		Verbosity: "info",
		GZip:      false,
		Hikes: HikesConfig{
			Dir:       filepath.Join(PublicDir, HikesDir),
			URLPrefix: HikesURLPrefix,
			Elevation: "gain",
			GeoJSON:   false,
		},
		Recipes: RecipesConfig{
			Dir: filepath.Join(PublicDir, RecipesDir),
		},
	}
}

// SetDefaults installs DefaultConfig values and the environment binding on v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("site_root", d.SiteRoot)
	v.SetDefault("verbosity", d.Verbosity)
	v.SetDefault("gzip", d.GZip)
	v.SetDefault("hikes.dir", d.Hikes.Dir)
	v.SetDefault("hikes.url_prefix", d.Hikes.URLPrefix)
	v.SetDefault("hikes.elevation", d.Hikes.Elevation)
	v.SetDefault("hikes.geojson", d.Hikes.GeoJSON)
	v.SetDefault("recipes.dir", d.Recipes.Dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// LoadConfig unmarshals v into a Config and resolves its paths.
func LoadConfig(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	root, err := homedir.Expand(c.SiteRoot)
	if err != nil {
		return nil, fmt.Errorf("expand site root: %w", err)
	}
	c.SiteRoot = root
	return c, nil
}

// HikesPath returns the hikes source directory, resolved against SiteRoot.
func (c *Config) HikesPath() string {
	return c.resolve(c.Hikes.Dir)
}

// RecipesPath returns the recipes source directory, resolved against SiteRoot.
func (c *Config) RecipesPath() string {
	return c.resolve(c.Recipes.Dir)
}

func (c *Config) resolve(p string) string {
	if expanded, err := homedir.Expand(p); err == nil {
		p = expanded
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(c.SiteRoot, p)
}
