package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
)

// ModelCache memoizes vehicle-model validity lists keyed "year:make".
// It is longer-lived than the result cache: menu data changes rarely.
type ModelCache interface {
	Get(key string) ([]string, bool)
	Set(key string, value []string)
}

// VehicleMenu wraps the external vehicle-data provider with the lookups the
// API exposes: menu passthroughs, MPG resolution, and the filtered model
// list limited to models that actually carry combined-MPG data.
type VehicleMenu struct {
	Provider ports.VehicleDataProvider
	Models   ModelCache
}

func NewVehicleMenu(provider ports.VehicleDataProvider, models ModelCache) *VehicleMenu {
	return &VehicleMenu{Provider: provider, Models: models}
}

// CombinedMPG resolves year/make/model to a combined MPG figure using the
// first menu variant, mirroring the provider's menu flow. Returns
// domain.ErrNotFound when no variant exists or none has MPG data.
func (v *VehicleMenu) CombinedMPG(ctx context.Context, year, makeName, model string) (float64, error) {
	options, err := v.Provider.Options(ctx, year, makeName, model)
	if err != nil {
		return 0, fmt.Errorf("vehicle mpg: %w", err)
	}
	if len(options) == 0 {
		return 0, fmt.Errorf("vehicle mpg: no vehicle for %s %s %s: %w", year, makeName, model, domain.ErrNotFound)
	}

	mpg, err := v.Provider.CombinedMPG(ctx, options[0].Value)
	if err != nil {
		return 0, fmt.Errorf("vehicle mpg: %w", err)
	}
	return mpg, nil
}

// ValidModels lists the models for year/make that have at least one variant
// with combined-MPG data. The filtered list is memoized per (year, make) so
// repeated menu loads do not re-probe every variant.
func (v *VehicleMenu) ValidModels(ctx context.Context, year, makeName string) ([]string, error) {
	key := year + ":" + makeName
	if cached, ok := v.Models.Get(key); ok {
		log.Printf("model cache=hit key=%s", key)
		return cached, nil
	}

	all, err := v.Provider.Models(ctx, year, makeName)
	if err != nil {
		return nil, fmt.Errorf("valid models: %w", err)
	}

	valid := make([]string, 0, len(all))
	for _, model := range all {
		ok, err := v.modelHasMPG(ctx, year, makeName, model)
		if err != nil {
			// Skip models the provider cannot answer for instead of
			// failing the whole menu.
			log.Printf("model probe failed year=%s make=%s model=%q err=%v", year, makeName, model, err)
			continue
		}
		if ok {
			valid = append(valid, model)
		}
	}

	v.Models.Set(key, valid)
	log.Printf("model cache=set key=%s valid=%d of=%d", key, len(valid), len(all))
	return valid, nil
}

func (v *VehicleMenu) modelHasMPG(ctx context.Context, year, makeName, model string) (bool, error) {
	options, err := v.Provider.Options(ctx, year, makeName, model)
	if err != nil {
		return false, err
	}

	for _, opt := range options {
		if opt.Value == "" {
			continue
		}

		_, err := v.Provider.CombinedMPG(ctx, opt.Value)
		if err == nil {
			// One valid variant is enough.
			return true, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("variant probe failed vehicle=%s model=%q err=%v", opt.Value, model, err)
		}
	}

	return false, nil
}
