// Package geocoder resolves postal addresses and zipcodes to coordinates via
// an external HTTP provider. The provider is an opaque collaborator; only the
// small response subset this application needs is decoded.
package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mattwebdev/devcamper/internal/pkg/logger"
)

// ErrNoResults indicates the provider returned no location for the query
var ErrNoResults = errors.New("no geocoding results for query")

// Location is a geocoded point
type Location struct {
	Latitude  float64
	Longitude float64
}

// Geocoder resolves free-form location text to coordinates
type Geocoder interface {
	Geocode(ctx context.Context, location string) (*Location, error)
}

// Config holds provider settings
type Config struct {
	BaseURL string // provider endpoint, e.g. https://www.mapquestapi.com/geocoding/v1/address
	APIKey  string
	Timeout time.Duration
}

// HTTPGeocoder is a Geocoder backed by a MapQuest-style geocoding endpoint
type HTTPGeocoder struct {
	config Config
	client *http.Client
}

// NewHTTPGeocoder creates a geocoder client for the configured provider
func NewHTTPGeocoder(config Config) *HTTPGeocoder {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPGeocoder{
		config: config,
		client: &http.Client{Timeout: timeout},
	}
}

// providerResponse mirrors the subset of the provider payload we consume
type providerResponse struct {
	Results []struct {
		Locations []struct {
			LatLng struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"latLng"`
		} `json:"locations"`
	} `json:"results"`
}

// Geocode resolves a location string to coordinates
func (g *HTTPGeocoder) Geocode(ctx context.Context, location string) (*Location, error) {
	endpoint := fmt.Sprintf("%s?key=%s&location=%s",
		g.config.BaseURL,
		url.QueryEscape(g.config.APIKey),
		url.QueryEscape(location),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoding request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn().Int("status", resp.StatusCode).Str("location", location).Msg("Geocoding provider returned non-OK status")
		return nil, fmt.Errorf("geocoding provider returned status %d", resp.StatusCode)
	}

	var payload providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	if len(payload.Results) == 0 || len(payload.Results[0].Locations) == 0 {
		return nil, ErrNoResults
	}

	latLng := payload.Results[0].Locations[0].LatLng
	if latLng.Lat == 0 && latLng.Lng == 0 {
		return nil, ErrNoResults
	}

	return &Location{Latitude: latLng.Lat, Longitude: latLng.Lng}, nil
}
