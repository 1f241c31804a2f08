package ports

import "context"

// PricePoint is one weekly retail price observation.
type PricePoint struct {
	// Period is the series period the value belongs to (e.g. "2026-08-24").
	Period string
	// Value is the price in USD per gallon.
	Value float64
}

// Contract for querying a weekly fuel-price series keyed by EIA product
// and duoarea codes.
type FuelPriceProvider interface {
	// LatestPrice returns the most recent data point for the product/area
	// pair. Returns domain.ErrNoPriceData (wrapped) when the series has no
	// usable data point for that pair.
	LatestPrice(ctx context.Context, product, area string) (PricePoint, error)
}
