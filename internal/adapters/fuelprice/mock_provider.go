package fuelprice

import (
	"context"
	"fmt"
	"sync"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
)

// MockPoint seeds a MockPriceProvider with one product/area data point.
type MockPoint struct {
	Product string
	Area    string
	Period  string
	Value   float64
}

// MockPriceProvider serves price points from a fixed table and counts calls.
// Missing pairs behave like an empty series (domain.ErrNoPriceData). The
// counter is synchronized so concurrent callers stay race-free.
type MockPriceProvider struct {
	m map[string]ports.PricePoint

	mu    sync.Mutex
	calls int
}

func NewMockPriceProvider(points []MockPoint) *MockPriceProvider {
	m := make(map[string]ports.PricePoint, len(points))
	for _, p := range points {
		m[p.Product+"|"+p.Area] = ports.PricePoint{Period: p.Period, Value: p.Value}
	}
	return &MockPriceProvider{m: m}
}

func (p *MockPriceProvider) LatestPrice(ctx context.Context, product, area string) (ports.PricePoint, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	point, ok := p.m[product+"|"+area]
	if !ok {
		return ports.PricePoint{}, fmt.Errorf("product=%s area=%s: %w", product, area, domain.ErrNoPriceData)
	}
	return point, nil
}

// CallCount returns how many times LatestPrice has been invoked.
func (p *MockPriceProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
