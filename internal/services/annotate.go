package services

import (
	"fmt"
	"math"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
)

// kmToMiles is the fixed conversion factor: 1 km = 0.621371 mi.
const kmToMiles = 0.621371

// fuelTolerance is the absolute tolerance for the fuel_efficient merit tag.
const fuelTolerance = 1e-4

// Round2 rounds to two decimals, the precision costs are reported at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComposeRoutes converts provider routes into annotated domain routes:
// unit conversion, whole-minute durations, fuel math at the resolved price,
// toll extraction, total cost, and the stable route identifier.
func ComposeRoutes(
	providerRoutes []ports.ProviderRoute,
	useMiles bool,
	fuelEfficiency float64,
	fuelPrice float64,
) []domain.Route {
	units := domain.UnitsKm
	if useMiles {
		units = domain.UnitsMiles
	}

	out := make([]domain.Route, 0, len(providerRoutes))
	for i, pr := range providerRoutes {
		distanceKm := float64(pr.DistanceMeters) / 1000
		distance := distanceKm
		if useMiles {
			distance = distanceKm * kmToMiles
		}

		// Round, not truncate: 5400s is exactly 90 minutes.
		durationMin := int(math.Round(float64(pr.DurationSeconds) / 60))

		fuelUsed := distance / fuelEfficiency
		fuelCost := fuelUsed * fuelPrice

		toll := ExtractToll(pr)
		totalCost := fuelCost
		if toll != nil {
			rounded := Round2(*toll)
			toll = &rounded
			totalCost += *toll
		}

		summary := pr.Description
		if summary == "" {
			summary = fmt.Sprintf("Route %d", i+1)
		}

		distance = Round2(distance)
		out = append(out, domain.Route{
			Summary:     summary,
			Distance:    distance,
			Units:       units,
			DurationMin: durationMin,
			FuelUsed:    Round2(fuelUsed),
			FuelCost:    Round2(fuelCost),
			TollCost:    toll,
			TotalCost:   Round2(totalCost),
			Path:        pr.Path,
			ID:          domain.RouteID(pr.Path, durationMin, distance),
		})
	}

	return out
}

// TagRoutes assigns merit tags against the batch minimums. Tags are
// batch-relative: outbound and return batches are tagged independently.
// A route may earn several tags or none.
func TagRoutes(routes []domain.Route) []domain.Route {
	if len(routes) == 0 {
		return routes
	}

	minDuration := routes[0].DurationMin
	minDistance := routes[0].Distance
	minFuel := routes[0].FuelUsed
	for _, r := range routes[1:] {
		if r.DurationMin < minDuration {
			minDuration = r.DurationMin
		}
		if r.Distance < minDistance {
			minDistance = r.Distance
		}
		if r.FuelUsed < minFuel {
			minFuel = r.FuelUsed
		}
	}

	out := make([]domain.Route, len(routes))
	for i, r := range routes {
		var tags []string
		if r.DurationMin == minDuration {
			tags = append(tags, domain.TagFastest)
		}
		if r.Distance == minDistance {
			tags = append(tags, domain.TagShortest)
		}
		if math.Abs(r.FuelUsed-minFuel) < fuelTolerance {
			tags = append(tags, domain.TagFuelEfficient)
		}
		r.Tags = tags
		out[i] = r
	}

	return out
}
