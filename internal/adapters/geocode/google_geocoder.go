// Package geocode implements the Geocoder port against the Google
// Geocoding API.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/ports"
)

const adminAreaType = "administrative_area_level_1"

// GoogleGeocoder resolves free-text addresses through the Google Geocoding
// API. Safe for concurrent use.
type GoogleGeocoder struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	if apiKey == "" {
		return nil, errors.New("google geocoder: api key is empty")
	}

	return &GoogleGeocoder{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com",
	}, nil
}

// NewGoogleGeocoderWithBaseURL is used by tests to point the client at a
// local server.
func NewGoogleGeocoderWithBaseURL(apiKey, baseURL string) (*GoogleGeocoder, error) {
	g, err := NewGoogleGeocoder(apiKey)
	if err != nil {
		return nil, err
	}
	g.baseURL = strings.TrimSuffix(baseURL, "/")
	return g, nil
}

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		AddressComponents []struct {
			ShortName string   `json:"short_name"`
			Types     []string `json:"types"`
		} `json:"address_components"`
	} `json:"results"`
}

// Geocode resolves one address to coordinates and its state code.
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (_ ports.GeocodeResult, err error) {
	defer obs.Time(ctx, "google.geocode")(&err)

	if strings.TrimSpace(address) == "" {
		return ports.GeocodeResult{}, errors.New("geocode: address must be non-empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/maps/api/geocode/json", nil)
	if err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("geocode: create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("address", address)
	q.Set("key", g.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := g.session.Do(req)
	if err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("geocode: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return ports.GeocodeResult{}, fmt.Errorf(
			"geocode: unexpected status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(b)),
		)
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("geocode: decode response: %w", err)
	}

	if len(decoded.Results) == 0 {
		return ports.GeocodeResult{}, fmt.Errorf("geocode %q: %w", address, domain.ErrNotFound)
	}

	first := decoded.Results[0]
	out := ports.GeocodeResult{
		Location: domain.Coordinates{
			Lat: first.Geometry.Location.Lat,
			Lng: first.Geometry.Location.Lng,
		},
	}

	for _, c := range first.AddressComponents {
		for _, t := range c.Types {
			if t == adminAreaType {
				out.State = c.ShortName
				break
			}
		}
	}

	return out, nil
}
