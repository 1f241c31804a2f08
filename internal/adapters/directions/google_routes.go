// Package directions implements the DirectionsProvider port against the
// Google Routes API (directions/v2:computeRoutes).
package directions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/twpayne/go-polyline"

	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/ports"
)

// ezpassTollPasses is the Routes API toll-pass enum set sent when the
// caller opts into E-ZPass pricing.
var ezpassTollPasses = []string{
	"US_NJ_EZPASSNJ", "US_NY_EZPASSNY", "US_PA_EZPASSPA", "US_DE_EZPASSDE",
	"US_MD_EZPASSMD", "US_VA_EZPASSVA", "US_WV_EZPASSWV", "US_MA_EZPASSMA",
	"US_ME_EZPASSME", "US_NH_EZPASSNH", "US_OH_EZPASSOH", "US_IL_EZPASSIL",
	"US_IN_EZPASSIN", "US_MN_EZPASSMN", "US_NC_EZPASSNC", "US_RI_EZPASSRI",
}

// Only request the fields the pipeline uses (faster and cheaper).
var fieldMask = strings.Join([]string{
	"routes.distanceMeters",
	"routes.duration",
	"routes.description",
	"routes.polyline.encodedPolyline",
	"routes.travelAdvisory.tollInfo.estimatedPrice",
	"routes.legs.travelAdvisory.tollInfo.estimatedPrice",
}, ",")

// GoogleRoutes requests route alternatives from the Google Routes API.
// Safe for concurrent use.
type GoogleRoutes struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewGoogleRoutes(apiKey string) (*GoogleRoutes, error) {
	if apiKey == "" {
		return nil, errors.New("google routes: api key is empty")
	}

	return &GoogleRoutes{
		// Route computation with alternatives is the slowest upstream call.
		session: &http.Client{Timeout: 30 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://routes.googleapis.com",
	}, nil
}

// NewGoogleRoutesWithBaseURL is used by tests to point the client at a
// local server.
func NewGoogleRoutesWithBaseURL(apiKey, baseURL string) (*GoogleRoutes, error) {
	g, err := NewGoogleRoutes(apiKey)
	if err != nil {
		return nil, err
	}
	g.baseURL = strings.TrimSuffix(baseURL, "/")
	return g, nil
}

type waypoint struct {
	Address string `json:"address"`
}

type routeModifiers struct {
	AvoidTolls bool     `json:"avoidTolls,omitempty"`
	TollPasses []string `json:"tollPasses,omitempty"`
}

type computeRoutesRequest struct {
	Origin                   waypoint        `json:"origin"`
	Destination              waypoint        `json:"destination"`
	Intermediates            []waypoint      `json:"intermediates,omitempty"`
	TravelMode               string          `json:"travelMode"`
	RoutingPreference        string          `json:"routingPreference"`
	ComputeAlternativeRoutes bool            `json:"computeAlternativeRoutes"`
	Units                    string          `json:"units"`
	ExtraComputations        []string        `json:"extraComputations"`
	DepartureTime            string          `json:"departureTime"`
	RouteModifiers           *routeModifiers `json:"routeModifiers,omitempty"`
}

type money struct {
	CurrencyCode string      `json:"currencyCode"`
	Units        json.Number `json:"units"`
	Nanos        int64       `json:"nanos"`
}

type tollInfo struct {
	EstimatedPrice []money `json:"estimatedPrice"`
}

type travelAdvisory struct {
	TollInfo *tollInfo `json:"tollInfo"`
}

type computeRoutesResponse struct {
	Routes []struct {
		DistanceMeters int    `json:"distanceMeters"`
		Duration       string `json:"duration"`
		Description    string `json:"description"`
		Polyline       struct {
			EncodedPolyline string `json:"encodedPolyline"`
		} `json:"polyline"`
		TravelAdvisory *travelAdvisory `json:"travelAdvisory"`
		Legs           []struct {
			TravelAdvisory *travelAdvisory `json:"travelAdvisory"`
		} `json:"legs"`
	} `json:"routes"`
}

// ComputeRoutes requests traffic-aware route alternatives with toll
// computation enabled.
func (g *GoogleRoutes) ComputeRoutes(ctx context.Context, q ports.RouteQuery) (_ []ports.ProviderRoute, err error) {
	defer obs.Time(ctx, "google.computeRoutes")(&err)

	if q.Origin == "" || q.Destination == "" {
		return nil, errors.New("compute routes: origin and destination must be non-empty")
	}

	units := "METRIC"
	if q.UseMiles {
		units = "IMPERIAL"
	}

	departAt := q.DepartAt
	if departAt.IsZero() {
		departAt = time.Now()
	}

	body := computeRoutesRequest{
		Origin:                   waypoint{Address: q.Origin},
		Destination:              waypoint{Address: q.Destination},
		TravelMode:               "DRIVE",
		RoutingPreference:        "TRAFFIC_AWARE_OPTIMAL",
		ComputeAlternativeRoutes: true,
		Units:                    units,
		ExtraComputations:        []string{"TOLLS"},
		DepartureTime:            departAt.UTC().Format(time.RFC3339),
	}
	for _, w := range q.Waypoints {
		body.Intermediates = append(body.Intermediates, waypoint{Address: w})
	}

	// Avoid-tolls takes precedence over any toll-pass configuration.
	switch {
	case q.AvoidTolls:
		body.RouteModifiers = &routeModifiers{AvoidTolls: true}
	case q.UseEzpass:
		body.RouteModifiers = &routeModifiers{TollPasses: ezpassTollPasses}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("compute routes: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		g.baseURL+"/directions/v2:computeRoutes",
		bytes.NewReader(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("compute routes: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", g.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := g.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("compute routes: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf(
			"compute routes: unexpected status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(b)),
		)
	}

	var decoded computeRoutesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("compute routes: decode response: %w", err)
	}

	out := make([]ports.ProviderRoute, 0, len(decoded.Routes))
	for _, r := range decoded.Routes {
		seconds, err := ParseDurationSeconds(r.Duration)
		if err != nil {
			return nil, fmt.Errorf("compute routes: %w", err)
		}

		var path [][]float64
		if r.Polyline.EncodedPolyline != "" {
			coords, _, err := polyline.DecodeCoords([]byte(r.Polyline.EncodedPolyline))
			if err != nil {
				return nil, fmt.Errorf("compute routes: decode polyline: %w", err)
			}
			path = coords
		}

		pr := ports.ProviderRoute{
			Description:     r.Description,
			DistanceMeters:  r.DistanceMeters,
			DurationSeconds: seconds,
			Path:            path,
			TollInfo:        convertTollInfo(r.TravelAdvisory),
		}
		for _, leg := range r.Legs {
			pr.Legs = append(pr.Legs, ports.RouteLeg{TollInfo: convertTollInfo(leg.TravelAdvisory)})
		}

		out = append(out, pr)
	}

	return out, nil
}

func convertTollInfo(adv *travelAdvisory) *ports.TollInfo {
	if adv == nil || adv.TollInfo == nil {
		return nil
	}

	ti := &ports.TollInfo{}
	for _, m := range adv.TollInfo.EstimatedPrice {
		units, _ := m.Units.Int64()
		ti.EstimatedPrice = append(ti.EstimatedPrice, ports.Money{
			CurrencyCode: m.CurrencyCode,
			Units:        units,
			Nanos:        m.Nanos,
		})
	}
	return ti
}

// ParseDurationSeconds parses the Routes API duration format, a decimal
// number of seconds with an "s" suffix (e.g. "5400s"). The API normally
// serves whole seconds, but the Duration JSON encoding permits fractions;
// those round to the nearest second.
func ParseDurationSeconds(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	if !strings.HasSuffix(s, "s") {
		return 0, fmt.Errorf("parse duration %q: missing seconds suffix", s)
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "s"), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return int(math.Round(f)), nil
}
