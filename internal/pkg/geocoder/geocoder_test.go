package geocoder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodeSuccess(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"locations":[{"latLng":{"lat":42.3508,"lng":-71.1003}}]}]}`))
	}))
	defer srv.Close()

	g := NewHTTPGeocoder(Config{BaseURL: srv.URL, APIKey: "test-key"})

	loc, err := g.Geocode(context.Background(), "02215")
	require.NoError(t, err)
	assert.InDelta(t, 42.3508, loc.Latitude, 0.0001)
	assert.InDelta(t, -71.1003, loc.Longitude, 0.0001)
	assert.Contains(t, gotQuery, "key=test-key")
	assert.Contains(t, gotQuery, "location=02215")
}

func TestGeocodeNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	g := NewHTTPGeocoder(Config{BaseURL: srv.URL})

	_, err := g.Geocode(context.Background(), "nowhere")
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestGeocodeZeroCoordinatesTreatedAsMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"locations":[{"latLng":{"lat":0,"lng":0}}]}]}`))
	}))
	defer srv.Close()

	g := NewHTTPGeocoder(Config{BaseURL: srv.URL})

	_, err := g.Geocode(context.Background(), "00000")
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestGeocodeProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	g := NewHTTPGeocoder(Config{BaseURL: srv.URL})

	_, err := g.Geocode(context.Background(), "02215")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoResults)
}
