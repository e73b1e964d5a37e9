package params

// EarthRadiusMeters is the mean Earth radius used for haversine distances.
// Note that orb/geo uses the WGS84 equatorial radius (6378137), which
// would put distances off by about 0.1%.
const EarthRadiusMeters = 6_371_000.0

// ElevationNoiseThreshold is the minimum absolute elevation change, in meters,
// between two adjacent points for the change to count as ascent or descent.
// Smaller steps are treated as barometer/GPS jitter.
const ElevationNoiseThreshold = 1.0

// DistancePrecision is the number of decimal places kept for distance_km.
const DistancePrecision = 2

type LineStringSimplificationConfig struct {
	DouglasPeuckerThreshold float64
}

// DefaultSimplificationConfig is used for the hikes map layer.
// The threshold is in degrees; about 5-10 meters at mid latitudes.
var DefaultSimplificationConfig = &LineStringSimplificationConfig{
	DouglasPeuckerThreshold: 0.00008,
}
