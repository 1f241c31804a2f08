package services

import (
	"context"
	"errors"
	"testing"

	"fuel-route-service/internal/adapters/fuelprice"
	"fuel-route-service/internal/adapters/geocode"
	"fuel-route-service/internal/domain"
)

func TestResolveUsesStateSeriesForSingleStateTrip(t *testing.T) {
	geocoder := geocode.NewMockGeocoder([]geocode.MockEntry{
		{Address: "Phoenix, AZ", Lat: 33.44, Lng: -112.07, State: "AZ"},
	})
	prices := fuelprice.NewMockPriceProvider([]fuelprice.MockPoint{
		{Product: "EPMR", Area: "AZ", Period: "2026-08-24", Value: 3.89},
		{Product: "EPMR", Area: "NUS", Period: "2026-08-24", Value: 3.45},
	})

	r := &PriceResolver{Geocoder: geocoder, Prices: prices}
	req := baseRequest()
	req.Origin = "Phoenix, AZ"

	quote, err := r.Resolve(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Area != "AZ" {
		t.Fatalf("area = %q, want AZ", quote.Area)
	}
	if quote.PricePerGallon != 3.89 {
		t.Fatalf("price = %v, want 3.89", quote.PricePerGallon)
	}
	if quote.National() {
		t.Fatal("single-state quote should not report national")
	}
}

func TestResolveFallsBackToNationalSeries(t *testing.T) {
	geocoder := geocode.NewMockGeocoder([]geocode.MockEntry{
		{Address: "Phoenix, AZ", Lat: 33.44, Lng: -112.07, State: "AZ"},
	})
	// No AZ data point: the state series is empty this week.
	prices := fuelprice.NewMockPriceProvider([]fuelprice.MockPoint{
		{Product: "EPMR", Area: "NUS", Period: "2026-08-24", Value: 3.45},
	})

	r := &PriceResolver{Geocoder: geocoder, Prices: prices}
	req := baseRequest()
	req.Origin = "Phoenix, AZ"

	quote, err := r.Resolve(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quote.National() {
		t.Fatalf("area = %q, want national fallback", quote.Area)
	}
	if quote.PricePerGallon != 3.45 {
		t.Fatalf("price = %v, want 3.45", quote.PricePerGallon)
	}
	if prices.CallCount() != 2 {
		t.Fatalf("price lookups = %d, want 2 (state then national)", prices.CallCount())
	}
}

func TestResolveCrossStateTripPricesNationally(t *testing.T) {
	geocoder := geocode.NewMockGeocoder([]geocode.MockEntry{
		{Address: "Phoenix, AZ", Lat: 33.44, Lng: -112.07, State: "AZ"},
	})
	prices := fuelprice.NewMockPriceProvider([]fuelprice.MockPoint{
		{Product: "EPMR", Area: "AZ", Period: "2026-08-24", Value: 3.89},
		{Product: "EPMR", Area: "NUS", Period: "2026-08-24", Value: 3.45},
	})

	r := &PriceResolver{Geocoder: geocoder, Prices: prices}
	req := baseRequest()
	req.Origin = "Phoenix, AZ"
	req.DestinationState = "CA"

	quote, err := r.Resolve(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quote.National() {
		t.Fatalf("area = %q, want NUS for a cross-state trip", quote.Area)
	}
	if prices.CallCount() != 1 {
		t.Fatalf("price lookups = %d, want 1 (no fallback needed)", prices.CallCount())
	}
}

func TestResolveOverrideSkipsAllLookups(t *testing.T) {
	geocoder := geocode.NewMockGeocoder(nil)
	prices := fuelprice.NewMockPriceProvider(nil)

	r := &PriceResolver{Geocoder: geocoder, Prices: prices}
	req := baseRequest()
	override := 4.25
	req.FuelPrice = &override

	quote, err := r.Resolve(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.PricePerGallon != 4.25 {
		t.Fatalf("price = %v, want the override 4.25", quote.PricePerGallon)
	}
	if quote.Area != "AZ" {
		t.Fatalf("area = %q, want the declared single-state region", quote.Area)
	}
	if geocoder.CallCount() != 0 || prices.CallCount() != 0 {
		t.Fatalf("override must not hit the network: geocode=%d price=%d", geocoder.CallCount(), prices.CallCount())
	}
}

func TestResolveNoDataAnywhere(t *testing.T) {
	geocoder := geocode.NewMockGeocoder([]geocode.MockEntry{
		{Address: "Phoenix, AZ", Lat: 33.44, Lng: -112.07, State: "AZ"},
	})
	prices := fuelprice.NewMockPriceProvider(nil)

	r := &PriceResolver{Geocoder: geocoder, Prices: prices}
	req := baseRequest()
	req.Origin = "Phoenix, AZ"

	_, err := r.Resolve(context.Background(), req)
	if !errors.Is(err, domain.ErrNoPriceData) {
		t.Fatalf("err = %v, want ErrNoPriceData", err)
	}
}
