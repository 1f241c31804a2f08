// Package vehicles implements the VehicleDataProvider port against the
// fueleconomy.gov XML REST API.
package vehicles

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/ports"
)

// FuelEconomyClient queries www.fueleconomy.gov vehicle menus and per-vehicle
// records. The API is unauthenticated. Safe for concurrent use.
type FuelEconomyClient struct {
	session *http.Client
	baseURL string
}

func NewFuelEconomyClient() *FuelEconomyClient {
	return &FuelEconomyClient{
		session: &http.Client{Timeout: 15 * time.Second},
		baseURL: "https://www.fueleconomy.gov",
	}
}

// NewFuelEconomyClientWithBaseURL is used by tests to point the client at
// a local server.
func NewFuelEconomyClientWithBaseURL(baseURL string) *FuelEconomyClient {
	c := NewFuelEconomyClient()
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

type menuItems struct {
	Items []struct {
		Text  string `xml:"text"`
		Value string `xml:"value"`
	} `xml:"menuItem"`
}

type vehicleRecord struct {
	Comb08 string `xml:"comb08"`
}

func (c *FuelEconomyClient) fetchXML(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.session.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if err := xml.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode xml: %w", err)
	}

	return nil
}

// Years lists available model years, newest first.
func (c *FuelEconomyClient) Years(ctx context.Context) (_ []int, err error) {
	defer obs.Time(ctx, "fueleconomy.years")(&err)

	var menu menuItems
	if err := c.fetchXML(ctx, "/ws/rest/vehicle/menu/year", nil, &menu); err != nil {
		return nil, fmt.Errorf("vehicle years: %w", err)
	}

	years := make([]int, 0, len(menu.Items))
	for _, item := range menu.Items {
		y, err := strconv.Atoi(item.Value)
		if err != nil {
			continue
		}
		years = append(years, y)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

// Makes lists manufacturer names for a model year.
func (c *FuelEconomyClient) Makes(ctx context.Context, year string) (_ []string, err error) {
	defer obs.Time(ctx, "fueleconomy.makes")(&err)

	params := url.Values{"year": {year}}

	var menu menuItems
	if err := c.fetchXML(ctx, "/ws/rest/vehicle/menu/make", params, &menu); err != nil {
		return nil, fmt.Errorf("vehicle makes: %w", err)
	}

	return menuTexts(menu), nil
}

// Models lists model names for a year/make pair.
func (c *FuelEconomyClient) Models(ctx context.Context, year, makeName string) (_ []string, err error) {
	defer obs.Time(ctx, "fueleconomy.models")(&err)

	params := url.Values{"year": {year}, "make": {makeName}}

	var menu menuItems
	if err := c.fetchXML(ctx, "/ws/rest/vehicle/menu/model", params, &menu); err != nil {
		return nil, fmt.Errorf("vehicle models: %w", err)
	}

	return menuTexts(menu), nil
}

// Options lists the concrete vehicle variants for a year/make/model.
func (c *FuelEconomyClient) Options(ctx context.Context, year, makeName, model string) (_ []ports.MenuOption, err error) {
	defer obs.Time(ctx, "fueleconomy.options")(&err)

	params := url.Values{"year": {year}, "make": {makeName}, "model": {model}}

	var menu menuItems
	if err := c.fetchXML(ctx, "/ws/rest/vehicle/menu/options", params, &menu); err != nil {
		return nil, fmt.Errorf("vehicle options: %w", err)
	}

	out := make([]ports.MenuOption, 0, len(menu.Items))
	for _, item := range menu.Items {
		out = append(out, ports.MenuOption{Text: item.Text, Value: item.Value})
	}
	return out, nil
}

// CombinedMPG returns the combined city/highway MPG (comb08) for a vehicle.
func (c *FuelEconomyClient) CombinedMPG(ctx context.Context, vehicleID string) (_ float64, err error) {
	defer obs.Time(ctx, "fueleconomy.combinedMPG")(&err)

	if strings.TrimSpace(vehicleID) == "" {
		return 0, errors.New("combined mpg: vehicle id must be non-empty")
	}

	var record vehicleRecord
	if err := c.fetchXML(ctx, "/ws/rest/vehicle/"+url.PathEscape(vehicleID), nil, &record); err != nil {
		return 0, fmt.Errorf("combined mpg: %w", err)
	}

	if strings.TrimSpace(record.Comb08) == "" {
		return 0, fmt.Errorf("combined mpg: vehicle %s has no MPG data: %w", vehicleID, domain.ErrNotFound)
	}

	mpg, err := strconv.ParseFloat(record.Comb08, 64)
	if err != nil {
		return 0, fmt.Errorf("combined mpg: vehicle %s invalid comb08 %q: %w", vehicleID, record.Comb08, domain.ErrNotFound)
	}

	return mpg, nil
}

func menuTexts(menu menuItems) []string {
	out := make([]string, 0, len(menu.Items))
	for _, item := range menu.Items {
		out = append(out, item.Text)
	}
	return out
}
