package hike

import (
	"math"

	"github.com/montanaflynn/stats"
	"github.com/rotblauer/siteidx/common"
	"github.com/rotblauer/siteidx/params"
	"github.com/rotblauer/siteidx/types/trackpoint"
)

// Summary is the per-hike reduction of a track.
// Which of the elevation fields are set depends on the Policy:
// AscentM and DescentM for ElevationGain, MaxEleM for ElevationMax.
// TotalTimeS is nil unless the elapsed time is at least one second.
type Summary struct {
	Policy     ElevationPolicy `json:"-"`
	DistanceKm float64         `json:"distance_km"`
	AscentM    *int            `json:"ascent_m,omitempty"`
	DescentM   *int            `json:"descent_m,omitempty"`
	MaxEleM    *int            `json:"max_ele_m,omitempty"`
	TotalTimeS *int            `json:"total_time_s,omitempty"`
}

// Summarizer reduces track points to a Summary under one elevation policy.
// It holds no state between calls.
type Summarizer struct {
	Policy ElevationPolicy
}

func NewSummarizer(policy ElevationPolicy) *Summarizer {
	return &Summarizer{Policy: policy}
}

// Summarize folds the points, in the given order, into a Summary.
//
// Distance is the haversine sum over every adjacent pair, including pairs
// that straddle a segment or track boundary. A pair whose distance is not
// finite contributes nothing. Elevation deltas are only taken
// between adjacent points that both have an elevation. Elapsed time is the
// spread between the earliest and latest timestamps, wherever they fall in
// the sequence.
func (s *Summarizer) Summarize(tps trackpoint.TrackPoints) Summary {
	distance := 0.0
	ascent, descent := 0.0, 0.0
	elevations := make([]float64, 0, len(tps))
	timesMs := make([]float64, 0, len(tps))

	for i := 0; i < len(tps); i++ {
		tp := tps[i]
		if tp.HasElevation() {
			elevations = append(elevations, *tp.Elevation)
		}
		if tp.HasTime() {
			timesMs = append(timesMs, float64(tp.Time.UnixMilli()))
		}

		if i == 0 {
			continue
		}

		prev := tps[i-1]
		if d := common.Haversine(prev.Point(), tp.Point()); common.IsFinite(d) {
			distance += d
		}

		if !prev.HasElevation() || !tp.HasElevation() {
			continue
		}
		delta := *tp.Elevation - *prev.Elevation
		if delta >= params.ElevationNoiseThreshold {
			ascent += delta
		} else if delta <= -params.ElevationNoiseThreshold {
			descent += math.Abs(delta)
		}
	}

	out := Summary{
		Policy:     s.Policy,
		DistanceKm: common.DecimalToFixed(distance/1000, params.DistancePrecision),
	}

	switch s.Policy {
	case ElevationGain:
		out.AscentM = intPtr(common.Round(ascent))
		out.DescentM = intPtr(common.Round(descent))
	case ElevationMax:
		if maxEle, err := stats.Float64Data(elevations).Max(); err == nil {
			out.MaxEleM = intPtr(common.Round(maxEle))
		}
	}

	if elapsed := elapsedSeconds(timesMs); elapsed > 0 {
		out.TotalTimeS = intPtr(elapsed)
	}
	return out
}

// elapsedSeconds returns max-min of the millisecond timestamps,
// rounded to the nearest second and clamped at zero.
func elapsedSeconds(timesMs []float64) int {
	data := stats.Float64Data(timesMs)
	first, err := data.Min()
	if err != nil {
		return 0
	}
	last, err := data.Max()
	if err != nil {
		return 0
	}
	elapsed := common.Round((last - first) / 1000)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func intPtr(v int) *int {
	return &v
}
