package ports

import (
	"context"

	"fuel-route-service/internal/domain"
)

// GeocodeResult is a resolved address.
type GeocodeResult struct {
	Location domain.Coordinates
	// State is the two-letter administrative region code (e.g. "NJ"),
	// empty when the provider returned no region component.
	State string
}

// Contract for resolving free-text addresses to coordinates and region codes.
type Geocoder interface {
	// Geocode resolves a single address. Returns domain.ErrNotFound (wrapped)
	// when the provider has no result for it.
	Geocode(ctx context.Context, address string) (GeocodeResult, error)
}
