// Package services contains the trip cost computation pipeline: request
// fingerprinting, fuel price resolution, toll extraction, route annotation,
// sorting, and the orchestrator that composes them. No HTTP or provider
// specifics live here; services depend on ports, not adapters.
package services

import (
	"encoding/json"
	"strings"

	"fuel-route-service/internal/domain"
)

// fingerprintKey serializes, in fixed field order, every request field that
// affects the computed cost. Field order is what makes the key stable.
type fingerprintKey struct {
	Origin           string   `json:"origin"`
	Destination      string   `json:"destination"`
	OriginState      string   `json:"originState"`
	DestinationState string   `json:"destinationState"`
	FuelEfficiency   float64  `json:"fuelEfficiency"`
	FuelPrice        *float64 `json:"fuelPrice"`
	Units            string   `json:"units"`
	FuelType         string   `json:"fuelType"`
	RoundTrip        bool     `json:"roundTrip"`
	Criterion        string   `json:"criterion"`
	Stops            []string `json:"stops"`
	UseEzpass        bool     `json:"useEzpass"`
	AvoidTolls       bool     `json:"avoidTolls"`
}

// Fingerprint derives the canonical cache key for a trip request.
//
// Stop addresses are trimmed and lower-cased before being joined with their
// state code, so requests differing only in incidental whitespace or case of
// a stop address produce the same key. Stop order is preserved: it changes
// route geometry and therefore cost.
func Fingerprint(req domain.TripRequest) string {
	stops := make([]string, 0, len(req.Stops))
	for _, s := range req.ActiveStops() {
		normalized := strings.ToLower(strings.TrimSpace(s.Address) + ", " + s.State)
		stops = append(stops, normalized)
	}

	key := fingerprintKey{
		Origin:           req.Origin,
		Destination:      req.Destination,
		OriginState:      req.OriginState,
		DestinationState: req.DestinationState,
		FuelEfficiency:   req.FuelEfficiency,
		FuelPrice:        req.FuelPrice,
		Units:            req.Units,
		FuelType:         string(req.FuelType),
		RoundTrip:        req.RoundTrip,
		Criterion:        req.Criterion,
		Stops:            stops,
		UseEzpass:        req.UseEzpass,
		AvoidTolls:       req.AvoidTolls,
	}

	// Marshaling a struct emits fields in declaration order, so the key is
	// deterministic. Marshal of this shape cannot fail.
	b, _ := json.Marshal(key)
	return string(b)
}
