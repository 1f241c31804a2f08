package ports

import (
	"context"
	"time"
)

// Money is a provider currency amount split into whole units and
// fractional nanos (1e-9 units).
type Money struct {
	CurrencyCode string
	Units        int64
	Nanos        int64
}

// TollInfo is the toll advisory attached to a route or leg.
// A non-nil TollInfo with empty EstimatedPrice means the provider knows
// tolls exist but did not price them.
type TollInfo struct {
	EstimatedPrice []Money
}

// RouteLeg carries the per-leg advisory data for one segment of a route.
type RouteLeg struct {
	TollInfo *TollInfo
}

// ProviderRoute is one candidate route as returned by the directions provider.
type ProviderRoute struct {
	Description     string
	DistanceMeters  int
	DurationSeconds int
	// Path is the decoded polyline as [lat, lng] pairs.
	Path     [][]float64
	TollInfo *TollInfo
	Legs     []RouteLeg
}

// RouteQuery describes a directions request between two points through an
// ordered list of intermediate waypoints.
type RouteQuery struct {
	Origin      string
	Destination string
	// Waypoints are visited in order; order changes route geometry.
	Waypoints []string
	UseMiles  bool
	// UseEzpass asks the provider to price tolls against its E-ZPass pass
	// set. Ignored when AvoidTolls is set; toll avoidance takes precedence.
	UseEzpass  bool
	AvoidTolls bool
	DepartAt   time.Time
}

// Contract for retrieving route alternatives with toll advisory data.
type DirectionsProvider interface {
	// ComputeRoutes returns zero or more candidate routes for the query,
	// with traffic-aware optimization and toll computation enabled.
	ComputeRoutes(ctx context.Context, q RouteQuery) ([]ProviderRoute, error)
}
