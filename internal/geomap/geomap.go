// Package geomap builds the self-contained vehicle-movement map document:
// a fixed station marker, an incident marker, and an animated path between
// them, rendered as an embeddable Leaflet HTML page.
package geomap

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"strconv"
	"strings"

	"github.com/emberops/firedesk/internal/errors"

	_ "embed"
)

// ErrBadCoordinate is returned when a latitude or longitude from the form is
// not numeric-coercible. It is terminal for the dispatch request.
var ErrBadCoordinate = errors.NewSentinel("coordinate is not a number")

//go:embed map.gohtml
var mapTemplateText string

var mapTemplate = template.Must(template.New("map").Parse(mapTemplateText))

const defaultZoom = 13

// LatLng is a WGS84 coordinate pair. It marshals as a [lat, lon] array, the
// form Leaflet expects.
type LatLng struct {
	Lat float64
	Lon float64
}

func (ll LatLng) MarshalJSON() ([]byte, error) {
	out, err := json.Marshal([2]float64{ll.Lat, ll.Lon})
	if err != nil {
		return nil, errors.Wrap(err, "marshal coordinate pair")
	}
	return out, nil
}

// Marker is a labelled point on the map.
type Marker struct {
	Label string `json:"label"`
	Color string `json:"color"`
	At    LatLng `json:"at"`
}

// Document describes one rendered map: always exactly two markers (station
// and incident) and a two-point path connecting them.
type Document struct {
	Center  LatLng   `json:"center"`
	Zoom    int      `json:"zoom"`
	Markers []Marker `json:"markers"`
	Path    []LatLng `json:"path"`
}

// ParseCoordinate coerces a form value to a float64 coordinate.
func ParseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrap(ErrBadCoordinate, "parse coordinate", slog.String("value", s))
	}
	return v, nil
}

// ParseLatLng coerces a latitude/longitude form value pair.
func ParseLatLng(lat, lon string) (LatLng, error) {
	latitude, err := ParseCoordinate(lat)
	if err != nil {
		return LatLng{}, errors.Wrap(err, "parse latitude")
	}
	longitude, err := ParseCoordinate(lon)
	if err != nil {
		return LatLng{}, errors.Wrap(err, "parse longitude")
	}
	return LatLng{Lat: latitude, Lon: longitude}, nil
}

// Build creates the map document for a dispatch from the fixed station
// coordinate to the incident coordinate.
func Build(station, incident LatLng) *Document {
	return &Document{
		Center: station,
		Zoom:   defaultZoom,
		Markers: []Marker{
			{Label: "Fire Station", Color: "green", At: station},
			{Label: "Incident Location", Color: "red", At: incident},
		},
		Path: []LatLng{station, incident},
	}
}

// HTML renders the document as a standalone Leaflet page. The nonce, when
// non-empty, is attached to the inline script so the page passes a
// nonce-based Content-Security-Policy. Each call fully regenerates the page.
func (d *Document) HTML(nonce string) ([]byte, error) {
	data := struct {
		Nonce  string
		Config *Document
	}{
		Nonce:  nonce,
		Config: d,
	}
	buf := new(bytes.Buffer)
	if err := mapTemplate.Execute(buf, data); err != nil {
		return nil, errors.Wrap(err, "execute map template")
	}
	return buf.Bytes(), nil
}
