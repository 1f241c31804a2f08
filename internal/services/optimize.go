package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
)

// ResultCache memoizes full trip results keyed by request fingerprint.
// Implementations must be safe under concurrent reads and writes from
// multiple in-flight requests.
type ResultCache interface {
	Get(key string) (domain.TripResult, bool)
	Set(key string, value domain.TripResult)
}

// Optimizer composes the trip cost pipeline: normalize -> cache lookup ->
// price resolution -> directions (outbound and optional return) -> toll and
// fuel annotation -> sort -> cache store.
type Optimizer struct {
	Geocoder   ports.Geocoder
	Directions ports.DirectionsProvider
	Resolver   *PriceResolver
	Cache      ResultCache
	// Now is the injected clock for departure times (and tests).
	Now func() time.Time
}

func NewOptimizer(
	geocoder ports.Geocoder,
	directions ports.DirectionsProvider,
	prices ports.FuelPriceProvider,
	cache ResultCache,
) *Optimizer {
	return &Optimizer{
		Geocoder:   geocoder,
		Directions: directions,
		Resolver:   &PriceResolver{Geocoder: geocoder, Prices: prices},
		Cache:      cache,
		Now:        time.Now,
	}
}

// Optimize runs the full pipeline for one request.
//
// A cache hit short-circuits before any network call. A failed run never
// writes a cache entry. Note that identical concurrent requests are not
// coalesced: both may miss the cache and duplicate upstream calls.
func (o *Optimizer) Optimize(ctx context.Context, req domain.TripRequest) (domain.TripResult, error) {
	start := o.Now()

	if err := req.Validate(); err != nil {
		return domain.TripResult{}, err
	}

	key := Fingerprint(req)

	if cached, ok := o.Cache.Get(key); ok {
		log.Printf("cache=hit key=%s dur=%dms", key, o.Now().Sub(start).Milliseconds())
		return cached, nil
	}
	log.Printf("cache=miss key=%s", key)

	quote, err := o.Resolver.Resolve(ctx, req)
	if err != nil {
		return domain.TripResult{}, err
	}

	stops := req.ActiveStops()
	waypoints := make([]string, 0, len(stops))
	for _, s := range stops {
		waypoints = append(waypoints, s.Waypoint())
	}

	outbound, returning, err := o.fetchRoutes(ctx, req, waypoints)
	if err != nil {
		return domain.TripResult{}, err
	}

	useMiles := req.UseMiles()
	outRoutes := TagRoutes(ComposeRoutes(outbound, useMiles, req.FuelEfficiency, quote.PricePerGallon))
	outRoutes = SortRoutes(outRoutes, req.Criterion)

	retRoutes := []domain.Route{}
	if req.RoundTrip {
		retRoutes = TagRoutes(ComposeRoutes(returning, useMiles, req.FuelEfficiency, quote.PricePerGallon))
		retRoutes = SortRoutes(retRoutes, req.Criterion)
	}

	result := domain.TripResult{
		Origin:      req.Origin,
		Destination: req.Destination,
		RoundTrip:   req.RoundTrip,
		PriceArea:   quote.Area,
		FuelPrice:   Round2(quote.PricePerGallon),
		Criterion:   req.Criterion,
		Outbound:    outRoutes,
		Return:      retRoutes,
		Stops:       o.resolveStops(ctx, stops),
	}

	o.Cache.Set(key, result)
	log.Printf("cache=set key=%s dur=%dms", key, o.Now().Sub(start).Milliseconds())

	return result, nil
}

// fetchRoutes requests outbound route alternatives and, for round trips,
// the reverse leg through the stops in reverse order. The two fetches are
// independent, so they run concurrently.
func (o *Optimizer) fetchRoutes(
	ctx context.Context,
	req domain.TripRequest,
	waypoints []string,
) (outbound, returning []ports.ProviderRoute, err error) {
	departAt := o.Now()

	outQuery := ports.RouteQuery{
		Origin:      req.Origin,
		Destination: req.Destination,
		Waypoints:   waypoints,
		UseMiles:    req.UseMiles(),
		UseEzpass:   req.UseEzpass,
		AvoidTolls:  req.AvoidTolls,
		DepartAt:    departAt,
	}

	if !req.RoundTrip {
		outbound, err = o.Directions.ComputeRoutes(ctx, outQuery)
		if err != nil {
			return nil, nil, fmt.Errorf("fetch outbound routes: %w", err)
		}
		return outbound, nil, nil
	}

	reversed := make([]string, len(waypoints))
	for i, w := range waypoints {
		reversed[len(waypoints)-1-i] = w
	}
	retQuery := outQuery
	retQuery.Origin = req.Destination
	retQuery.Destination = req.Origin
	retQuery.Waypoints = reversed

	var outErr, retErr error
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		outbound, outErr = o.Directions.ComputeRoutes(ctx, outQuery)
	}()
	go func() {
		defer wg.Done()
		returning, retErr = o.Directions.ComputeRoutes(ctx, retQuery)
	}()
	wg.Wait()

	if outErr != nil {
		return nil, nil, fmt.Errorf("fetch outbound routes: %w", outErr)
	}
	if retErr != nil {
		return nil, nil, fmt.Errorf("fetch return routes: %w", retErr)
	}

	return outbound, returning, nil
}

// resolveStops geocodes stop markers one at a time. A stop that fails to
// geocode is logged and omitted from the result rather than failing the
// whole request.
func (o *Optimizer) resolveStops(ctx context.Context, stops []domain.Stop) []domain.Stop {
	out := make([]domain.Stop, 0, len(stops))
	for _, s := range stops {
		geo, err := o.Geocoder.Geocode(ctx, s.Address)
		if err != nil {
			log.Printf("stop geocode failed address=%q err=%v", s.Address, err)
			continue
		}

		s.Location = &domain.Coordinates{Lat: geo.Location.Lat, Lng: geo.Location.Lng}
		out = append(out, s)
	}
	return out
}
