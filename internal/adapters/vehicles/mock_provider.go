package vehicles

import (
	"context"
	"fmt"
	"sync"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
)

// MockVehicle seeds a MockProvider with one concrete vehicle variant.
type MockVehicle struct {
	Year  string
	Make  string
	Model string
	ID    string
	// MPG of zero means the variant exists but carries no MPG data.
	MPG float64
}

// MockProvider serves vehicle menus from a fixed variant table and counts
// calls per probing method. The counters are synchronized so concurrent
// callers stay race-free.
type MockProvider struct {
	vehicles []MockVehicle

	mu           sync.Mutex
	optionsCalls int
	mpgCalls     int
}

func NewMockProvider(vehicles []MockVehicle) *MockProvider {
	return &MockProvider{vehicles: vehicles}
}

func (p *MockProvider) Years(ctx context.Context) ([]int, error) {
	return []int{2026, 2025}, nil
}

func (p *MockProvider) Makes(ctx context.Context, year string) ([]string, error) {
	out := []string{}
	seen := map[string]bool{}
	for _, v := range p.vehicles {
		if v.Year == year && !seen[v.Make] {
			seen[v.Make] = true
			out = append(out, v.Make)
		}
	}
	return out, nil
}

func (p *MockProvider) Models(ctx context.Context, year, makeName string) ([]string, error) {
	out := []string{}
	seen := map[string]bool{}
	for _, v := range p.vehicles {
		if v.Year == year && v.Make == makeName && !seen[v.Model] {
			seen[v.Model] = true
			out = append(out, v.Model)
		}
	}
	return out, nil
}

func (p *MockProvider) Options(ctx context.Context, year, makeName, model string) ([]ports.MenuOption, error) {
	p.mu.Lock()
	p.optionsCalls++
	p.mu.Unlock()
	out := []ports.MenuOption{}
	for _, v := range p.vehicles {
		if v.Year == year && v.Make == makeName && v.Model == model {
			out = append(out, ports.MenuOption{Text: v.Model, Value: v.ID})
		}
	}
	return out, nil
}

func (p *MockProvider) CombinedMPG(ctx context.Context, vehicleID string) (float64, error) {
	p.mu.Lock()
	p.mpgCalls++
	p.mu.Unlock()

	for _, v := range p.vehicles {
		if v.ID == vehicleID {
			if v.MPG == 0 {
				return 0, fmt.Errorf("vehicle %s has no MPG data: %w", vehicleID, domain.ErrNotFound)
			}
			return v.MPG, nil
		}
	}
	return 0, fmt.Errorf("no vehicle %s: %w", vehicleID, domain.ErrNotFound)
}

// OptionsCallCount returns how many times Options has been invoked.
func (p *MockProvider) OptionsCallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.optionsCalls
}

// MPGCallCount returns how many times CombinedMPG has been invoked.
func (p *MockProvider) MPGCallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mpgCalls
}
