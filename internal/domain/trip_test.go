package domain

import (
	"errors"
	"testing"
)

func TestTripRequestValidate(t *testing.T) {
	valid := TripRequest{FuelEfficiency: 25, FuelType: FuelRegular}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missing := TripRequest{FuelType: FuelRegular}
	if err := missing.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation for zero MPG", err)
	}

	negative := TripRequest{FuelEfficiency: -1, FuelType: FuelRegular}
	if err := negative.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation for negative MPG", err)
	}

	badFuel := TripRequest{FuelEfficiency: 25, FuelType: "Rocket"}
	if err := badFuel.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation for unknown fuel type", err)
	}
}

func TestActiveStops(t *testing.T) {
	req := TripRequest{Stops: []Stop{
		{Address: "Casa Grande", State: "AZ"},
		{Address: "   ", State: "AZ"},
		{Address: "", State: "AZ"},
		{Address: "Eloy", State: "AZ"},
	}}

	active := req.ActiveStops()
	if len(active) != 2 {
		t.Fatalf("active stops = %d, want 2", len(active))
	}
	if active[0].Address != "Casa Grande" || active[1].Address != "Eloy" {
		t.Fatalf("active stops out of order: %+v", active)
	}
}

func TestUseMiles(t *testing.T) {
	if !(TripRequest{Units: UnitsMiles}).UseMiles() {
		t.Fatal("miles should use miles")
	}
	if (TripRequest{Units: UnitsKm}).UseMiles() {
		t.Fatal("km should not use miles")
	}
	if !(TripRequest{}).UseMiles() {
		t.Fatal("unset units default to miles")
	}
}

func TestStopWaypoint(t *testing.T) {
	s := Stop{Address: "Casa Grande", State: "AZ"}
	if got := s.Waypoint(); got != "Casa Grande, AZ" {
		t.Fatalf("waypoint = %q", got)
	}
}
