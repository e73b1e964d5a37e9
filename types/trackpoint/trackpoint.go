package trackpoint

import (
	"strings"
	"time"

	"github.com/paulmach/orb"
)

// TrackPoint is one recorded GPS fix.
// Lat and Lng are required and finite; Elevation and Time are optional.
type TrackPoint struct {
	Lat       float64    `json:"lat"`
	Lng       float64    `json:"lon"`
	Elevation *float64   `json:"ele,omitempty"`  // in meters
	Time      *time.Time `json:"time,omitempty"` // nil if missing or unparsable
}

// Point returns the orb point (x,y::lng,lat) of the fix.
func (tp TrackPoint) Point() orb.Point {
	return orb.Point{tp.Lng, tp.Lat}
}

func (tp TrackPoint) HasElevation() bool {
	return tp.Elevation != nil
}

func (tp TrackPoint) HasTime() bool {
	return tp.Time != nil
}

type TrackPoints []TrackPoint

// LineString returns the points as an orb.LineString.
func (tps TrackPoints) LineString() orb.LineString {
	ls := make(orb.LineString, 0, len(tps))
	for _, tp := range tps {
		ls = append(ls, tp.Point())
	}
	return ls
}

// timeLayouts are tried in order. Zone-less layouts are read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses a GPX timestamp.
// It returns false for empty or unparsable values.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
