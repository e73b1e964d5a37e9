package common

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/rotblauer/siteidx/params"
)

func degToRad(d float64) float64 {
	return d * (math.Pi / 180)
}

// Haversine returns the great-circle surface distance in meters between two
// points (x,y::lng,lat), on a sphere of radius params.EarthRadiusMeters.
func Haversine(a, b orb.Point) float64 {
	lat1, lat2 := degToRad(a.Lat()), degToRad(b.Lat())
	dLat := degToRad(b.Lat() - a.Lat())
	dLon := degToRad(b.Lon() - a.Lon())

	sinLat, sinLon := math.Sin(dLat/2), math.Sin(dLon/2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	// Rounding can push h just past 1 for antipodal points.
	h = math.Min(1, math.Max(0, h))
	return 2 * params.EarthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// IsFinite is false for NaN and +/-Inf values.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
