package ports

import "context"

// MenuOption is one entry from the vehicle menu: a display text plus the
// provider's opaque value (a vehicle ID for option menus).
type MenuOption struct {
	Text  string
	Value string
}

// Contract for the external vehicle-data provider (model years, makes,
// models, per-vehicle combined MPG).
type VehicleDataProvider interface {
	Years(ctx context.Context) ([]int, error)
	Makes(ctx context.Context, year string) ([]string, error)
	Models(ctx context.Context, year, makeName string) ([]string, error)
	// Options lists the concrete vehicle variants for a year/make/model.
	Options(ctx context.Context, year, makeName, model string) ([]MenuOption, error)
	// CombinedMPG returns the comb08 figure for a vehicle ID.
	// Returns domain.ErrNotFound (wrapped) when the vehicle has no MPG data.
	CombinedMPG(ctx context.Context, vehicleID string) (float64, error)
}
