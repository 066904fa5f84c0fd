package geomap_test

import (
	"encoding/json"
	"testing"

	"github.com/emberops/firedesk/internal/errors"
	"github.com/emberops/firedesk/internal/geomap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "plain decimal", input: "12.9756", want: 12.9756},
		{name: "whole number", input: "13", want: 13},
		{name: "negative", input: "-77.595", want: -77.595},
		{name: "surrounding whitespace", input: " 12.97 ", want: 12.97},
		{name: "non-numeric", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "trailing garbage", input: "12.97N", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := geomap.ParseCoordinate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, geomap.ErrBadCoordinate))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseLatLng(t *testing.T) {
	t.Parallel()

	ll, err := geomap.ParseLatLng("12.9756", "77.5950")
	require.NoError(t, err)
	assert.InDelta(t, 12.9756, ll.Lat, 1e-9)
	assert.InDelta(t, 77.595, ll.Lon, 1e-9)

	_, err = geomap.ParseLatLng("abc", "77.5950")
	assert.True(t, errors.Is(err, geomap.ErrBadCoordinate))

	_, err = geomap.ParseLatLng("12.9756", "")
	assert.True(t, errors.Is(err, geomap.ErrBadCoordinate))
}

func TestBuild(t *testing.T) {
	t.Parallel()

	station := geomap.LatLng{Lat: 12.9716, Lon: 77.5946}
	incident := geomap.LatLng{Lat: 12.9756, Lon: 77.595}

	doc := geomap.Build(station, incident)

	assert.Equal(t, station, doc.Center)
	assert.Equal(t, 13, doc.Zoom)
	require.Len(t, doc.Markers, 2)
	assert.Equal(t, "Fire Station", doc.Markers[0].Label)
	assert.Equal(t, "green", doc.Markers[0].Color)
	assert.Equal(t, station, doc.Markers[0].At)
	assert.Equal(t, "Incident Location", doc.Markers[1].Label)
	assert.Equal(t, "red", doc.Markers[1].Color)
	assert.Equal(t, incident, doc.Markers[1].At)
	assert.Equal(t, []geomap.LatLng{station, incident}, doc.Path)
}

func TestLatLng_MarshalJSON(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(geomap.LatLng{Lat: 12.9756, Lon: 77.595})
	require.NoError(t, err)
	assert.JSONEq(t, "[12.9756,77.595]", string(out))
}

func TestDocument_HTML(t *testing.T) {
	t.Parallel()

	doc := geomap.Build(
		geomap.LatLng{Lat: 12.9716, Lon: 77.5946},
		geomap.LatLng{Lat: 12.9756, Lon: 77.595},
	)

	html, err := doc.HTML("abc123")
	require.NoError(t, err)

	page := string(html)
	assert.Contains(t, page, `nonce="abc123"`)
	assert.Contains(t, page, "Fire Station")
	assert.Contains(t, page, "Incident Location")
	assert.Contains(t, page, "leaflet")
	assert.Contains(t, page, "12.9716")

	// Rendering is repeatable.
	again, err := doc.HTML("abc123")
	require.NoError(t, err)
	assert.Equal(t, html, again)
}
