package gpx

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/rotblauer/siteidx/testing/testdata"
)

func TestDecodeFile_Equator(t *testing.T) {
	g, err := DecodeFile(testdata.Path(testdata.GPX_Equator))
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Title(); got != "Equator Walk" {
		t.Errorf("expected title 'Equator Walk', got %q", got)
	}
	tps := g.TrackPoints()
	if len(tps) != 3 {
		t.Fatalf("expected 3 points, got %d", len(tps))
	}
	last := tps[2]
	if last.Lat != 0.01 || last.Lng != 1 {
		t.Errorf("expected last point at 0.01,1, got %v,%v", last.Lat, last.Lng)
	}
	if !last.HasElevation() || *last.Elevation != 48 {
		t.Errorf("expected last elevation 48, got %v", last.Elevation)
	}
	if !last.HasTime() || last.Time.Unix() != 1200 {
		t.Errorf("expected last time 1200s, got %v", last.Time)
	}
}

func TestDecodeFile_MultiSegment(t *testing.T) {
	g, err := DecodeFile(testdata.Path(testdata.GPX_MultiSegment))
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Title(); got != "Rjukan Ridge" {
		t.Errorf("expected first non-blank track name, got %q", got)
	}

	segs := g.Segments()
	if len(segs) != 3 {
		t.Fatalf("expected 3 non-empty segments, got %d", len(segs))
	}
	if len(segs[0]) != 2 {
		t.Errorf("expected unusable points dropped from first segment, got %d points", len(segs[0]))
	}

	tps := g.TrackPoints()
	if len(tps) != 5 {
		t.Fatalf("expected 5 flattened points, got %d", len(tps))
	}
	// Document order is kept across segments and tracks.
	for i := 1; i < len(tps); i++ {
		if tps[i].Lat <= tps[i-1].Lat {
			t.Errorf("expected increasing latitudes in document order at %d: %v <= %v", i, tps[i].Lat, tps[i-1].Lat)
		}
	}
	if tps[1].HasTime() {
		t.Error("expected unparsable time to be dropped")
	}
	if tps[2].HasElevation() {
		t.Error("expected garbage elevation to be dropped")
	}
	if !tps[2].HasTime() {
		t.Error("expected point with garbage elevation to keep its time")
	}
}

func TestDecodeFile_NoPoints(t *testing.T) {
	g, err := DecodeFile(testdata.Path(testdata.GPX_NoPoints))
	if err != nil {
		t.Fatal(err)
	}
	if n := len(g.TrackPoints()); n != 0 {
		t.Errorf("expected no points, got %d", n)
	}
	if got := g.Title(); got != "Planned But Never Walked" {
		t.Errorf("expected metadata title, got %q", got)
	}
}

func TestDecodeFile_Malformed(t *testing.T) {
	_, err := DecodeFile(testdata.Path(testdata.GPX_Malformed))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "decode gpx") {
		t.Errorf("expected wrapped decode error, got %v", err)
	}
}

func TestDecodeFile_Latin1(t *testing.T) {
	g, err := DecodeFile(testdata.Path(testdata.GPX_Latin1))
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Title(); got != "Tur til Gaustaé" {
		t.Errorf("expected transcoded title, got %q", got)
	}
	if n := len(g.TrackPoints()); n != 2 {
		t.Errorf("expected 2 points, got %d", n)
	}
}

func TestDecodeFile_Missing(t *testing.T) {
	if _, err := DecodeFile(testdata.Path("./gpx/does_not_exist.gpx")); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestDecode(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr error
		points  int
		title   string
	}{
		{
			name:    "empty",
			input:   "",
			wantErr: ErrEmptyDocument,
		},
		{
			name:    "prolog only",
			input:   `<?xml version="1.0"?>`,
			wantErr: ErrEmptyDocument,
		},
		{
			name:   "gpx 1.0 document name",
			input:  `<gpx version="1.0"><name>Old Export</name><trk><name>Track</name></trk></gpx>`,
			title:  "Old Export",
			points: 0,
		},
		{
			name:   "no namespace",
			input:  `<gpx><trk><trkseg><trkpt lat="1" lon="2"/><trkpt lat=" 1.5 " lon="2"/></trkseg></trk></gpx>`,
			points: 2,
		},
		{
			name:   "non-finite coordinates",
			input:  `<gpx><trk><trkseg><trkpt lat="NaN" lon="2"/><trkpt lat="1" lon="Inf"/><trkpt lat="" lon="1"/><trkpt lat="1" lon="1"/></trkseg></trk></gpx>`,
			points: 1,
		},
		{
			name:    "trailing garbage",
			input:   `<gpx></gpx><oops`,
			wantErr: errors.New("any"),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := Decode(strings.NewReader(c.input))
			if c.wantErr != nil {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if errors.Is(c.wantErr, ErrEmptyDocument) && !errors.Is(err, ErrEmptyDocument) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n := len(g.TrackPoints()); n != c.points {
				t.Errorf("expected %d points, got %d", c.points, n)
			}
			if got := g.Title(); got != c.title {
				t.Errorf("expected title %q, got %q", c.title, got)
			}
		})
	}
}

func TestPoint_TrackPoint_InfiniteElevation(t *testing.T) {
	tp, ok := Point{Lat: "1", Lon: "2", Ele: "+Inf"}.TrackPoint()
	if !ok {
		t.Fatal("expected usable point")
	}
	if tp.HasElevation() {
		t.Errorf("expected infinite elevation to be dropped, got %v", *tp.Elevation)
	}
	if math.IsNaN(tp.Lat) {
		t.Error("unexpected NaN latitude")
	}
}
