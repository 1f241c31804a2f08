package services

import (
	"context"
	"errors"
	"fmt"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
)

// PriceResolver resolves a per-gallon fuel price for one trip, with a
// single regional-to-national fallback.
type PriceResolver struct {
	Geocoder ports.Geocoder
	Prices   ports.FuelPriceProvider
}

// Resolve returns the price quote for the request's fuel type and region.
//
// Policy: an explicit caller-supplied price is used verbatim with no network
// lookup. Otherwise the origin is geocoded to discover its actual state; that
// state prices the trip only when it matches both declared region codes (a
// single-state trip), else the national average series is used. A state
// series with no data point falls back once to the national series.
func (r *PriceResolver) Resolve(ctx context.Context, req domain.TripRequest) (domain.FuelPriceQuote, error) {
	product, ok := req.FuelType.ProductCode()
	if !ok {
		return domain.FuelPriceQuote{}, fmt.Errorf("%w: invalid fuel type %q", domain.ErrValidation, req.FuelType)
	}

	if req.FuelPrice != nil {
		area := domain.NationalArea
		if req.OriginState != "" && req.OriginState == req.DestinationState {
			area = req.OriginState
		}
		return domain.FuelPriceQuote{PricePerGallon: *req.FuelPrice, Area: area}, nil
	}

	area := domain.NationalArea
	geo, err := r.Geocoder.Geocode(ctx, req.Origin)
	if err != nil {
		return domain.FuelPriceQuote{}, fmt.Errorf("resolve price: geocode origin: %w", err)
	}
	// A state series only applies when the trip stays inside the state the
	// origin actually resolves to.
	if geo.State != "" && geo.State == req.OriginState && req.OriginState == req.DestinationState {
		area = geo.State
	}

	point, err := r.Prices.LatestPrice(ctx, product, area)
	if err == nil {
		return domain.FuelPriceQuote{PricePerGallon: point.Value, Area: area, Period: point.Period}, nil
	}
	if !errors.Is(err, domain.ErrNoPriceData) || area == domain.NationalArea {
		return domain.FuelPriceQuote{}, fmt.Errorf("resolve price: %w", err)
	}

	// One fallback: the national average series.
	point, err = r.Prices.LatestPrice(ctx, product, domain.NationalArea)
	if err != nil {
		return domain.FuelPriceQuote{}, fmt.Errorf("resolve price: national fallback: %w", err)
	}

	return domain.FuelPriceQuote{
		PricePerGallon: point.Value,
		Area:           domain.NationalArea,
		Period:         point.Period,
	}, nil
}
