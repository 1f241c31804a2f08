package geocode

import (
	"context"
	"fmt"
	"sync"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
)

// MockEntry seeds a MockGeocoder with one known address.
type MockEntry struct {
	Address string
	Lat     float64
	Lng     float64
	State   string
}

// MockGeocoder serves geocode results from a fixed table and counts calls.
// The counter is synchronized so concurrent callers stay race-free.
type MockGeocoder struct {
	m map[string]ports.GeocodeResult

	mu    sync.Mutex
	calls int
}

func NewMockGeocoder(entries []MockEntry) *MockGeocoder {
	m := make(map[string]ports.GeocodeResult, len(entries))
	for _, e := range entries {
		m[e.Address] = ports.GeocodeResult{
			Location: domain.Coordinates{Lat: e.Lat, Lng: e.Lng},
			State:    e.State,
		}
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) Geocode(ctx context.Context, address string) (ports.GeocodeResult, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()

	r, ok := g.m[address]
	if !ok {
		return ports.GeocodeResult{}, fmt.Errorf("no geocode entry for %q", address)
	}
	return r, nil
}

// CallCount returns how many times Geocode has been invoked.
func (g *MockGeocoder) CallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}
