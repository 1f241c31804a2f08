package directions

import (
	"context"
	"sync"
	"testing"

	"fuel-route-service/internal/ports"
)

// The orchestrator fetches the outbound and return legs from separate
// goroutines, so the mock must tolerate concurrent calls.
func TestMockDirectionsProviderConcurrentCalls(t *testing.T) {
	p := NewMockDirectionsProvider()
	p.Add("A", "B", []ports.ProviderRoute{{Description: "out"}})
	p.Add("B", "A", []ports.ProviderRoute{{Description: "back"}})

	const perLeg = 50

	var wg sync.WaitGroup
	for i := 0; i < perLeg; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := p.ComputeRoutes(context.Background(), ports.RouteQuery{Origin: "A", Destination: "B"}); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := p.ComputeRoutes(context.Background(), ports.RouteQuery{Origin: "B", Destination: "A"}); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := p.CallCount(); got != 2*perLeg {
		t.Fatalf("call count = %d, want %d", got, 2*perLeg)
	}
}
