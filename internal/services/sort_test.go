package services

import (
	"testing"

	"fuel-route-service/internal/domain"
)

func costRoutes() []domain.Route {
	tollA := 3.50
	return []domain.Route{
		{Summary: "A", DurationMin: 90, Distance: 62.14, FuelCost: 9.00, TollCost: &tollA, TotalCost: 12.50},
		{Summary: "B", DurationMin: 80, Distance: 70.00, FuelCost: 9.00, TotalCost: 9.00},
		{Summary: "C", DurationMin: 85, Distance: 65.00, FuelCost: 11.00, TotalCost: 11.00},
	}
}

func summaries(routes []domain.Route) []string {
	out := make([]string, len(routes))
	for i, r := range routes {
		out[i] = r.Summary
	}
	return out
}

func assertOrder(t *testing.T, routes []domain.Route, want ...string) {
	t.Helper()
	got := summaries(routes)
	if len(got) != len(want) {
		t.Fatalf("got %d routes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSortRoutesCheapest(t *testing.T) {
	sorted := SortRoutes(costRoutes(), domain.CriterionCheapest)
	assertOrder(t, sorted, "B", "C", "A")
}

func TestSortRoutesFastest(t *testing.T) {
	sorted := SortRoutes(costRoutes(), domain.CriterionFastest)
	assertOrder(t, sorted, "B", "C", "A")
}

func TestSortRoutesShortest(t *testing.T) {
	sorted := SortRoutes(costRoutes(), domain.CriterionShortest)
	assertOrder(t, sorted, "A", "C", "B")
}

func TestSortRoutesNonePreservesOrder(t *testing.T) {
	sorted := SortRoutes(costRoutes(), domain.CriterionNone)
	assertOrder(t, sorted, "A", "B", "C")
}

func TestSortRoutesDoesNotMutateInput(t *testing.T) {
	routes := costRoutes()
	SortRoutes(routes, domain.CriterionCheapest)
	assertOrder(t, routes, "A", "B", "C")
}

func TestSortRoutesStableOnTies(t *testing.T) {
	routes := []domain.Route{
		{Summary: "A", TotalCost: 10},
		{Summary: "B", TotalCost: 10},
		{Summary: "C", TotalCost: 5},
	}
	sorted := SortRoutes(routes, domain.CriterionCheapest)
	assertOrder(t, sorted, "C", "A", "B")
}

func TestSortRoutesCheapestFallsBackToFuelCost(t *testing.T) {
	// TotalCost of zero means no total was computed; fuel cost alone ranks.
	routes := []domain.Route{
		{Summary: "A", FuelCost: 8},
		{Summary: "B", FuelCost: 6},
	}
	sorted := SortRoutes(routes, domain.CriterionCheapest)
	assertOrder(t, sorted, "B", "A")
}
