// Package gpx decodes GPX documents into the object graph the hikes indexer
// consumes: optional metadata name, tracks, segments and raw track points.
//
// Decoding is deliberately lenient about values and strict about markup.
// A document that is not well-formed XML fails to decode. A well-formed
// document with missing, empty or garbage coordinate, elevation or time
// values decodes fine; those values are dropped later, point by point,
// when the document is flattened into TrackPoints.
package gpx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rotblauer/siteidx/common"
	"github.com/rotblauer/siteidx/types/trackpoint"
	"golang.org/x/text/encoding/ianaindex"
)

var ErrEmptyDocument = errors.New("empty document")

// GPX is the root <gpx> element. The root element name is not enforced.
type GPX struct {
	Metadata *Metadata `xml:"metadata"`
	// Name is the GPX 1.0 document name, which predates <metadata>.
	Name   string  `xml:"name"`
	Tracks []Track `xml:"trk"`
}

type Metadata struct {
	Name string `xml:"name"`
}

type Track struct {
	Name     string    `xml:"name"`
	Segments []Segment `xml:"trkseg"`
}

type Segment struct {
	Points []Point `xml:"trkpt"`
}

// Point holds the raw attribute and child values of a <trkpt>.
type Point struct {
	Lat  string `xml:"lat,attr"`
	Lon  string `xml:"lon,attr"`
	Ele  string `xml:"ele"`
	Time string `xml:"time"`
}

// Decode reads a whole GPX document from r.
// Any markup error, including one after the root element, is returned.
func Decode(r io.Reader) (*GPX, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	g := &GPX{}
	if err := dec.Decode(g); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("decode gpx: %w", err)
	}
	// Drain the rest of the stream so trailing garbage is reported too.
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode gpx: %w", err)
		}
	}
	return g, nil
}

func DecodeBytes(data []byte) (*GPX, error) {
	return Decode(bytes.NewReader(data))
}

// DecodeFile reads and decodes the GPX file at path.
func DecodeFile(path string) (*GPX, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(data)
}

// charsetReader supports non-UTF-8 GPX exports, e.g. encoding="ISO-8859-1".
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset: %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}

// Title returns the document's display name: the metadata name, else the
// GPX 1.0 document name, else the first named track. Names are trimmed;
// blank names don't count. It returns "" if nothing matches, leaving the
// fallback to the caller.
func (g *GPX) Title() string {
	if g.Metadata != nil {
		if n := strings.TrimSpace(g.Metadata.Name); n != "" {
			return n
		}
	}
	if n := strings.TrimSpace(g.Name); n != "" {
		return n
	}
	for _, trk := range g.Tracks {
		if n := strings.TrimSpace(trk.Name); n != "" {
			return n
		}
	}
	return ""
}

// TrackPoints flattens every segment of every track, in document order,
// into one sequence of usable points.
func (g *GPX) TrackPoints() trackpoint.TrackPoints {
	out := trackpoint.TrackPoints{}
	for _, seg := range g.Segments() {
		out = append(out, seg...)
	}
	return out
}

// Segments returns the usable points of every segment, in document order.
// Segments with no usable points are omitted.
func (g *GPX) Segments() []trackpoint.TrackPoints {
	var out []trackpoint.TrackPoints
	for _, trk := range g.Tracks {
		for _, seg := range trk.Segments {
			tps := seg.TrackPoints()
			if len(tps) > 0 {
				out = append(out, tps)
			}
		}
	}
	return out
}

// TrackPoints returns the usable points of the segment.
func (s Segment) TrackPoints() trackpoint.TrackPoints {
	out := make(trackpoint.TrackPoints, 0, len(s.Points))
	for _, p := range s.Points {
		if tp, ok := p.TrackPoint(); ok {
			out = append(out, tp)
		}
	}
	return out
}

// TrackPoint converts the raw point.
// It returns false if lat or lon is missing or not a finite number.
// An unusable elevation or time is dropped without discarding the point.
func (p Point) TrackPoint() (trackpoint.TrackPoint, bool) {
	lat, ok := parseFinite(p.Lat)
	if !ok {
		return trackpoint.TrackPoint{}, false
	}
	lng, ok := parseFinite(p.Lon)
	if !ok {
		return trackpoint.TrackPoint{}, false
	}
	tp := trackpoint.TrackPoint{Lat: lat, Lng: lng}
	if ele, ok := parseFinite(p.Ele); ok {
		tp.Elevation = &ele
	}
	if t, ok := trackpoint.ParseTime(p.Time); ok {
		tp.Time = &t
	}
	return tp, true
}

func parseFinite(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !common.IsFinite(v) {
		return 0, false
	}
	return v, true
}
