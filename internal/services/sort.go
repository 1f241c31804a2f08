package services

import (
	"sort"

	"fuel-route-service/internal/domain"
)

// SortRoutes returns a stably sorted copy of routes ordered by the given
// criterion. The input batch is never mutated; outbound, return, and client
// re-sorts each get a fresh ordering. CriterionNone preserves provider order.
func SortRoutes(routes []domain.Route, criterion string) []domain.Route {
	out := make([]domain.Route, len(routes))
	copy(out, routes)

	switch criterion {
	case domain.CriterionFastest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DurationMin < out[j].DurationMin
		})
	case domain.CriterionShortest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Distance < out[j].Distance
		})
	case domain.CriterionFuelEfficient:
		// Ranks by fuel cost, matching the merit-tag source data.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].FuelCost < out[j].FuelCost
		})
	case domain.CriterionCheapest:
		sort.SliceStable(out, func(i, j int) bool {
			return effectiveCost(out[i]) < effectiveCost(out[j])
		})
	}

	return out
}

// effectiveCost is the cheapest-sort key: total cost, falling back to fuel
// cost alone when no total was computed.
func effectiveCost(r domain.Route) float64 {
	if r.TotalCost > 0 {
		return r.TotalCost
	}
	return r.FuelCost
}
