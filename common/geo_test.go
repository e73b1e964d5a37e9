package common

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestHaversine_SamePoint(t *testing.T) {
	for _, p := range []orb.Point{{0, 0}, {-113.47, 47.18}, {179.9, -89.9}} {
		if d := Haversine(p, p); d != 0 {
			t.Errorf("expected 0 distance for %v, got %v", p, d)
		}
	}
}

func TestHaversine_EquatorDegree(t *testing.T) {
	// One degree of longitude at the equator: 2*pi*R/360.
	want := 2 * math.Pi * 6_371_000 / 360
	got := Haversine(orb.Point{0, 0}, orb.Point{1, 0})
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	a, b := orb.Point{8.59, 59.88}, orb.Point{8.71, 59.92}
	if ab, ba := Haversine(a, b), Haversine(b, a); ab != ba {
		t.Errorf("expected symmetric distance, got %v and %v", ab, ba)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(45.5) {
		t.Error("expected 45.5 to be finite")
	}
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if IsFinite(v) {
			t.Errorf("expected %v to be non-finite", v)
		}
	}
}

func TestHaversine_Antipodal(t *testing.T) {
	want := math.Pi * 6_371_000
	for _, pair := range [][2]orb.Point{
		{{0, 10}, {180, -10}},
		{{0, 0}, {180, 0}},
		{{-73.99, 40.73}, {106.01, -40.73}},
	} {
		got := Haversine(pair[0], pair[1])
		if math.IsNaN(got) || math.Abs(got-want) > 1 {
			t.Errorf("expected half the circumference %v for %v, got %v", want, pair, got)
		}
	}
}

func TestHaversine_HugeLatitude(t *testing.T) {
	got := Haversine(orb.Point{0, 1e308}, orb.Point{0, 0})
	if !IsFinite(got) {
		t.Fatalf("expected a finite distance, got %v", got)
	}
	if got < 0 || got > math.Pi*6_371_000+1 {
		t.Errorf("expected distance within half the circumference, got %v", got)
	}
}
