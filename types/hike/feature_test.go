package hike

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/rotblauer/siteidx/testing/testdata"
	"github.com/rotblauer/siteidx/types/gpx"
	"github.com/rotblauer/siteidx/types/trackpoint"
)

func TestNewFeature(t *testing.T) {
	s := NewSummarizer(ElevationGain).Summarize(equatorTrack)
	e := NewEntry("equator.gpx", "Equator Walk", "/hikes/", s)

	f := NewFeature(e, []trackpoint.TrackPoints{equatorTrack})
	if f == nil {
		t.Fatal("expected feature, got nil")
	}
	ml, ok := f.Geometry.(orb.MultiLineString)
	if !ok {
		t.Fatalf("expected MultiLineString, got %T", f.Geometry)
	}
	if len(ml) != 1 || len(ml[0]) != 3 {
		t.Errorf("expected one line of 3 points, got %v", ml)
	}
	if ml[0][1] != (orb.Point{1, 0}) {
		t.Errorf("expected lon,lat order, got %v", ml[0][1])
	}

	want := []float64{0, 0, 1, 0.01}
	if len(f.BBox) != 4 {
		t.Fatalf("expected 4-element bbox, got %v", f.BBox)
	}
	for i := range want {
		if f.BBox[i] != want[i] {
			t.Errorf("expected bbox %v, got %v", want, f.BBox)
			break
		}
	}

	if f.Properties.MustString("title") != "Equator Walk" {
		t.Errorf("unexpected title property: %v", f.Properties["title"])
	}
	if f.Properties.MustString("url") != "/hikes/equator.gpx" {
		t.Errorf("unexpected url property: %v", f.Properties["url"])
	}
	if f.Properties.MustInt("ascent_m") != 50 {
		t.Errorf("unexpected ascent property: %v", f.Properties["ascent_m"])
	}
	if _, ok := f.Properties["max_ele_m"]; ok {
		t.Error("expected no max_ele_m property under gain policy")
	}
}

func TestNewFeature_Segments(t *testing.T) {
	g, err := gpx.DecodeFile(testdata.Path(testdata.GPX_MultiSegment))
	if err != nil {
		t.Fatal(err)
	}
	e := NewEntry("multi_segment.gpx", g.Title(), "/hikes/", NewSummarizer(ElevationGain).Summarize(g.TrackPoints()))
	f := NewFeature(e, g.Segments())
	if f == nil {
		t.Fatal("expected feature, got nil")
	}
	ml := f.Geometry.(orb.MultiLineString)
	// The single-point segment can't be drawn.
	if len(ml) != 2 {
		t.Errorf("expected 2 lines, got %d", len(ml))
	}
}

func TestNewFeature_NoLines(t *testing.T) {
	e := NewEntry("x.gpx", "", "/hikes/", Summary{})
	if f := NewFeature(e, nil); f != nil {
		t.Errorf("expected nil feature, got %v", f)
	}
	one := []trackpoint.TrackPoints{{{Lat: 1, Lng: 1}}}
	if f := NewFeature(e, one); f != nil {
		t.Errorf("expected nil feature for a lone point, got %v", f)
	}
}
