package domain

import "testing"

func TestRouteIDDeterministic(t *testing.T) {
	path := [][]float64{{33.44, -112.07}, {32.22, -110.97}}

	a := RouteID(path, 90, 62.14)
	b := RouteID(path, 90, 62.14)
	if a != b {
		t.Fatalf("same inputs produced different IDs: %s vs %s", a, b)
	}
	if len(a) != 16 {
		t.Fatalf("id = %q, want 16 hex chars", a)
	}

	if RouteID(path, 91, 62.14) == a {
		t.Fatal("duration change must change the ID")
	}
	if RouteID(path, 90, 62.15) == a {
		t.Fatal("distance change must change the ID")
	}
	if RouteID([][]float64{{33.44, -112.07}, {32.23, -110.97}}, 90, 62.14) == a {
		t.Fatal("endpoint change must change the ID")
	}
}

func TestRouteIDEmptyPath(t *testing.T) {
	a := RouteID(nil, 90, 62.14)
	b := RouteID(nil, 90, 62.14)
	if a == "" || a != b {
		t.Fatalf("empty path IDs should still be stable: %q vs %q", a, b)
	}
}

func TestHasTag(t *testing.T) {
	r := Route{Tags: []string{TagFastest, TagShortest}}

	if !r.HasTag(TagFastest) || !r.HasTag(TagShortest) {
		t.Fatal("expected assigned tags to be found")
	}
	if r.HasTag(TagFuelEfficient) {
		t.Fatal("unassigned tag should not be found")
	}
}

func TestFuelTypeProductCode(t *testing.T) {
	cases := map[FuelType]string{
		FuelRegular:  "EPMR",
		FuelMidgrade: "EPMM",
		FuelPremium:  "EPMP",
		FuelDiesel:   "EPD2D",
		FuelAll:      "EPM0",
	}

	for fuel, want := range cases {
		code, ok := fuel.ProductCode()
		if !ok || code != want {
			t.Fatalf("ProductCode(%s) = %q, %v; want %q", fuel, code, ok, want)
		}
	}

	if _, ok := FuelType("Rocket").ProductCode(); ok {
		t.Fatal("unknown fuel type should not resolve")
	}
}
