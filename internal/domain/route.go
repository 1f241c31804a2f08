package domain

import (
	"fmt"
	"hash/fnv"
)

// Merit tags assigned by batch-relative minimum comparison.
const (
	TagFastest       = "fastest"
	TagShortest      = "shortest"
	TagFuelEfficient = "fuel_efficient"
)

// Route is one fully annotated route alternative.
// Routes are immutable once assembled; sorting produces fresh orderings
// and never mutates a batch in place.
type Route struct {
	// Summary is the provider's human-readable description (usually the
	// dominant road name).
	Summary string
	// Distance is expressed in the unit system the caller requested.
	Distance float64
	Units    string
	// DurationMin is the travel time rounded (not truncated) to whole minutes.
	DurationMin int
	// FuelUsed is gallons burned at the request's MPG.
	FuelUsed float64
	// FuelCost is FuelUsed at the resolved per-gallon price.
	FuelCost float64
	// TollCost is nil when the provider reported no priced toll data.
	// A concrete zero means the route is confirmed toll-free.
	TollCost *float64
	// TotalCost is FuelCost plus TollCost, with a nil toll contributing zero.
	TotalCost float64
	// Path is the decoded polyline as [lat, lng] pairs.
	Path [][]float64
	// Tags holds the merit tags this route earned within its batch.
	Tags []string
	// ID is stable across re-sorts so clients can keep selection and coloring
	// consistent. It is derived from path endpoints, duration and distance,
	// and plays no part in cache correctness.
	ID string
}

// HasTag reports whether the route carries the given merit tag.
func (r Route) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// RouteID derives a stable identifier from the route's path endpoints,
// duration and distance.
func RouteID(path [][]float64, durationMin int, distance float64) string {
	h := fnv.New64a()
	if len(path) > 0 {
		first, last := path[0], path[len(path)-1]
		fmt.Fprintf(h, "%.5f,%.5f|%.5f,%.5f|", first[0], first[1], last[0], last[1])
	}
	fmt.Fprintf(h, "%d|%.2f", durationMin, distance)
	return fmt.Sprintf("%016x", h.Sum64())
}

// TripResult is the full computed response for one trip request.
// It is immutable once assembled and is what the result cache stores.
type TripResult struct {
	Origin      string
	Destination string
	RoundTrip   bool
	// PriceArea is the duoarea code whose series priced the trip.
	PriceArea string
	FuelPrice float64
	Criterion string
	Outbound  []Route
	// Return is empty unless a round trip was requested.
	Return []Route
	// Stops carries only the stops that geocoded successfully.
	Stops []Stop
}
