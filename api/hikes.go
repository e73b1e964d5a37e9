package api

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/paulmach/orb/geojson"
	"github.com/rotblauer/siteidx/flat"
	"github.com/rotblauer/siteidx/params"
	"github.com/rotblauer/siteidx/types/gpx"
	"github.com/rotblauer/siteidx/types/hike"
)

var ErrSourceDirNotFound = errors.New("source directory not found")

type HikesOptions struct {
	URLPrefix string
	Policy    hike.ElevationPolicy
	// GeoJSON also writes the hikes map layer.
	GeoJSON bool
	// GZip writes .gz sidecars for every file written.
	GZip bool
}

func HikesOptionsFromConfig(c *params.Config) (*HikesOptions, error) {
	policy, err := hike.ParseElevationPolicy(c.Hikes.Elevation)
	if err != nil {
		return nil, err
	}
	return &HikesOptions{
		URLPrefix: c.Hikes.URLPrefix,
		Policy:    policy,
		GeoJSON:   c.Hikes.GeoJSON,
		GZip:      c.GZip,
	}, nil
}

type HikesResult struct {
	Entries []hike.Entry
	// Failed names the files that could not be read or decoded.
	Failed      []string
	IndexPath   string
	GeoJSONPath string
}

func isGPXFile(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), params.GPXExt)
}

// BuildHikesIndex summarizes every GPX file in dir and writes the hikes
// index there. A file that can't be decoded is logged and left out; the
// rest of the batch carries on. The index is written even when every
// file fails.
func BuildHikesIndex(dir *flat.Flat, opts *HikesOptions) (*HikesResult, error) {
	logger := slog.With("dir", dir.Path())

	if !dir.Exists() {
		return nil, fmt.Errorf("%w: %s", ErrSourceDirNotFound, dir.Path())
	}
	files, err := dir.ListFiles(isGPXFile)
	if err != nil {
		return nil, fmt.Errorf("list hikes: %w", err)
	}
	sortCollated(files, func(s string) string { return s })

	summarizer := hike.NewSummarizer(opts.Policy)
	fc := geojson.NewFeatureCollection()
	res := &HikesResult{Entries: []hike.Entry{}}

	for _, file := range files {
		g, err := decodeHike(dir, file)
		if err != nil {
			logger.Error("Failed to process hike", "file", file, "error", err)
			res.Failed = append(res.Failed, file)
			continue
		}
		tps := g.TrackPoints()
		if len(tps) == 0 {
			logger.Warn("No track points, skipping distance/elevation/time", "file", file)
		}
		entry := hike.NewEntry(file, g.Title(), opts.URLPrefix, summarizer.Summarize(tps))
		res.Entries = append(res.Entries, entry)
		logger.Debug("Summarized hike", "file", file, "title", entry.Title,
			"points", len(tps), "distance_km", entry.DistanceKm)

		if opts.GeoJSON {
			if f := hike.NewFeature(entry, g.Segments()); f != nil {
				fc.Append(f)
			}
		}
	}

	wopts := flat.WriteOptions{TrailingNewline: true, GZip: opts.GZip}
	w, err := dir.WriteJSON(params.IndexFileName, res.Entries, wopts)
	if err != nil {
		return res, fmt.Errorf("write hikes index: %w", err)
	}
	res.IndexPath = w.Path
	logWritten(logger, "Wrote hikes index", w, "hikes", len(res.Entries), "failed", len(res.Failed))

	if opts.GeoJSON {
		data, err := fc.MarshalJSON()
		if err != nil {
			return res, fmt.Errorf("encode hikes map: %w", err)
		}
		w, err := dir.WriteFile(params.HikesGeoJSONFileName, data, wopts)
		if err != nil {
			return res, fmt.Errorf("write hikes map: %w", err)
		}
		res.GeoJSONPath = w.Path
		logWritten(logger, "Wrote hikes map", w, "features", len(fc.Features))
	}
	return res, nil
}

func decodeHike(dir *flat.Flat, file string) (*gpx.GPX, error) {
	data, err := dir.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return gpx.DecodeBytes(data)
}

func logWritten(logger *slog.Logger, msg string, w *flat.Written, args ...any) {
	args = append(args, "path", w.Path, "size", humanize.Bytes(uint64(w.Size)))
	if w.GZPath != "" {
		args = append(args, "gz_size", humanize.Bytes(uint64(w.GZSize)))
	}
	logger.Info(msg, args...)
}
