package params

import (
	"os"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/text/language"
)

const (
	PublicDir  = "public"
	HikesDir   = "hikes"
	RecipesDir = "recipes"

	IndexFileName        = "index.json"
	HikesGeoJSONFileName = "hikes.geojson"
	GZipSuffix           = ".gz"

	GPXExt  = ".gpx"
	JSONExt = ".json"
)

// HikesURLPrefix is the site-relative path hike source files are served under.
var HikesURLPrefix = "/" + HikesDir + "/"

var DefaultGZipCompressionLevel = gzip.BestCompression

var (
	DefaultFilePerm os.FileMode = 0644
	DefaultDirPerm  os.FileMode = 0755
)

// CollationLanguage orders index files by title or file name.
var CollationLanguage = language.English
