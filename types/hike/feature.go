package hike

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/simplify"
	"github.com/rotblauer/siteidx/params"
	"github.com/rotblauer/siteidx/types/trackpoint"
)

// NewFeature returns the map feature for a hike: a MultiLineString with one
// line per recorded segment, simplified, with the entry's fields as
// properties and the unsimplified bounds as bbox.
// It returns nil when no segment has at least two points.
func NewFeature(e Entry, segments []trackpoint.TrackPoints) *geojson.Feature {
	ml := orb.MultiLineString{}
	for _, seg := range segments {
		if len(seg) < 2 {
			continue
		}
		ml = append(ml, seg.LineString())
	}
	if len(ml) == 0 {
		return nil
	}

	bound := ml.Bound()
	simplifier := simplify.DouglasPeucker(params.DefaultSimplificationConfig.DouglasPeuckerThreshold)
	geom := simplifier.Simplify(ml.Clone())

	f := geojson.NewFeature(geom)
	f.BBox = geojson.NewBBox(bound)
	f.Properties["title"] = e.Title
	f.Properties["file"] = e.File
	f.Properties["url"] = e.URL
	f.Properties["distance_km"] = e.DistanceKm
	if e.AscentM != nil {
		f.Properties["ascent_m"] = *e.AscentM
	}
	if e.DescentM != nil {
		f.Properties["descent_m"] = *e.DescentM
	}
	if e.MaxEleM != nil {
		f.Properties["max_ele_m"] = *e.MaxEleM
	}
	if e.TotalTimeS != nil {
		f.Properties["total_time_s"] = *e.TotalTimeS
	}
	return f
}
