package domain

import (
	"fmt"
	"strings"
)

// Distance units accepted by a trip request.
const (
	UnitsMiles = "miles"
	UnitsKm    = "km"
)

// Route ranking criteria accepted by a trip request.
const (
	CriterionNone          = "none"
	CriterionFastest       = "fastest"
	CriterionShortest      = "shortest"
	CriterionFuelEfficient = "fuel_efficient"
	CriterionCheapest      = "cheapest"
)

// Stop is an intermediate waypoint between origin and destination.
// Location is populated once the stop has been geocoded; stops that fail
// to geocode are dropped from the result rather than failing the trip.
type Stop struct {
	Address  string
	State    string
	Location *Coordinates
}

// Waypoint renders the stop as a free-text address for the directions provider.
func (s Stop) Waypoint() string {
	return fmt.Sprintf("%s, %s", s.Address, s.State)
}

// TripRequest is a normalized trip cost computation request.
// It is owned by the orchestrator for the duration of one pipeline run.
type TripRequest struct {
	Origin           string
	Destination      string
	OriginState      string
	DestinationState string
	// FuelEfficiency is the vehicle's combined MPG. Required and positive.
	FuelEfficiency float64
	// FuelPrice overrides price resolution entirely when set.
	FuelPrice *float64
	Units     string
	FuelType  FuelType
	RoundTrip bool
	// Criterion is the preferred route ranking axis, CriterionNone to keep
	// provider order.
	Criterion string
	Stops     []Stop
	UseEzpass bool
	// AvoidTolls takes precedence over UseEzpass when both are set.
	AvoidTolls bool
}

// Validate enforces the fail-fast invariants checked before any network call.
func (r TripRequest) Validate() error {
	if r.FuelEfficiency <= 0 {
		return fmt.Errorf("%w: missing fuel efficiency (MPG)", ErrValidation)
	}
	if _, ok := r.FuelType.ProductCode(); !ok {
		return fmt.Errorf("%w: invalid fuel type %q", ErrValidation, r.FuelType)
	}
	return nil
}

// ActiveStops filters out stops with blank addresses, preserving order.
// Order is significant: it changes route geometry.
func (r TripRequest) ActiveStops() []Stop {
	out := make([]Stop, 0, len(r.Stops))
	for _, s := range r.Stops {
		if strings.TrimSpace(s.Address) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// UseMiles reports whether distances should be expressed in miles.
func (r TripRequest) UseMiles() bool { return r.Units != UnitsKm }
