package geocode

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fuel-route-service/internal/domain"
)

func TestGeocode(t *testing.T) {
	var gotAddress, gotKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/maps/api/geocode/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAddress = r.URL.Query().Get("address")
		gotKey = r.URL.Query().Get("key")

		fmt.Fprint(w, `{
			"results": [{
				"geometry": {"location": {"lat": 33.4484, "lng": -112.074}},
				"address_components": [
					{"short_name": "Phoenix", "types": ["locality", "political"]},
					{"short_name": "AZ", "types": ["administrative_area_level_1", "political"]},
					{"short_name": "US", "types": ["country", "political"]}
				]
			}]
		}`)
	}))
	defer srv.Close()

	g, err := NewGoogleGeocoderWithBaseURL("test-key", srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := g.Geocode(context.Background(), "Phoenix, AZ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAddress != "Phoenix, AZ" {
		t.Fatalf("address param = %q", gotAddress)
	}
	if gotKey != "test-key" {
		t.Fatalf("key param = %q", gotKey)
	}
	if result.Location.Lat != 33.4484 || result.Location.Lng != -112.074 {
		t.Fatalf("location = %+v", result.Location)
	}
	if result.State != "AZ" {
		t.Fatalf("state = %q, want AZ", result.State)
	}
}

func TestGeocodeNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": []}`)
	}))
	defer srv.Close()

	g, err := NewGoogleGeocoderWithBaseURL("test-key", srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = g.Geocode(context.Background(), "gibberish address")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGeocodeMissingStateComponent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"results": [{
				"geometry": {"location": {"lat": 1, "lng": 2}},
				"address_components": []
			}]
		}`)
	}))
	defer srv.Close()

	g, err := NewGoogleGeocoderWithBaseURL("test-key", srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := g.Geocode(context.Background(), "some place")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.State != "" {
		t.Fatalf("state = %q, want empty when the component is absent", result.State)
	}
}

func TestGeocodeEmptyAddress(t *testing.T) {
	g, err := NewGoogleGeocoder("test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := g.Geocode(context.Background(), "   "); err == nil {
		t.Fatal("expected an error for a blank address")
	}
}
