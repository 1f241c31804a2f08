package directions

import (
	"context"
	"fmt"
	"sync"

	"fuel-route-service/internal/ports"
)

// MockDirectionsProvider serves canned route alternatives keyed
// "origin|destination" and counts calls. The counter is synchronized:
// callers fetch the outbound and return legs from separate goroutines.
type MockDirectionsProvider struct {
	m map[string][]ports.ProviderRoute

	mu    sync.Mutex
	calls int
}

func NewMockDirectionsProvider() *MockDirectionsProvider {
	return &MockDirectionsProvider{m: make(map[string][]ports.ProviderRoute)}
}

// Add registers the route alternatives returned for origin -> destination.
func (p *MockDirectionsProvider) Add(origin, destination string, routes []ports.ProviderRoute) {
	p.m[origin+"|"+destination] = routes
}

func (p *MockDirectionsProvider) ComputeRoutes(ctx context.Context, q ports.RouteQuery) ([]ports.ProviderRoute, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	routes, ok := p.m[q.Origin+"|"+q.Destination]
	if !ok {
		return nil, fmt.Errorf("no route entry for %q -> %q", q.Origin, q.Destination)
	}
	return routes, nil
}

// CallCount returns how many times ComputeRoutes has been invoked.
func (p *MockDirectionsProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
