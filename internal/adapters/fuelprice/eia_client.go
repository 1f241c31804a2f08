// Package fuelprice implements the FuelPriceProvider port against the
// EIA v2 weekly retail gasoline and diesel price series.
package fuelprice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/ports"
)

// EIAClient queries api.eia.gov for the most recent weekly price of a
// product/duoarea pair. Safe for concurrent use.
type EIAClient struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewEIAClient(apiKey string) (*EIAClient, error) {
	if apiKey == "" {
		return nil, errors.New("eia client: api key is empty")
	}

	return &EIAClient{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.eia.gov",
	}, nil
}

// NewEIAClientWithBaseURL is used by tests to point the client at a
// local server.
func NewEIAClientWithBaseURL(apiKey, baseURL string) (*EIAClient, error) {
	c, err := NewEIAClient(apiKey)
	if err != nil {
		return nil, err
	}
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c, nil
}

type seriesResponse struct {
	Response struct {
		Data []struct {
			Period string `json:"period"`
			// The API serves value as either a number or a string
			// depending on the series.
			Value json.Number `json:"value"`
		} `json:"data"`
	} `json:"response"`
}

// LatestPrice returns the most recent weekly data point for product/area.
// Returns domain.ErrNoPriceData when the series has no row or the value
// is non-numeric; the caller decides whether a national fallback applies.
func (c *EIAClient) LatestPrice(ctx context.Context, product, area string) (_ ports.PricePoint, err error) {
	defer obs.Time(ctx, "eia.latestPrice")(&err)

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet,
		c.baseURL+"/v2/petroleum/pri/gnd/data/", nil,
	)
	if err != nil {
		return ports.PricePoint{}, fmt.Errorf("eia price: create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("api_key", c.apiKey)
	q.Set("frequency", "weekly")
	q.Set("data[0]", "value")
	q.Set("facets[product][0]", product)
	q.Set("facets[duoarea][0]", area)
	q.Set("sort[0][column]", "period")
	q.Set("sort[0][direction]", "desc")
	q.Set("offset", "0")
	q.Set("length", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := c.session.Do(req)
	if err != nil {
		return ports.PricePoint{}, fmt.Errorf("eia price: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return ports.PricePoint{}, fmt.Errorf(
			"eia price: unexpected status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(b)),
		)
	}

	var decoded seriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.PricePoint{}, fmt.Errorf("eia price: decode response: %w", err)
	}

	if len(decoded.Response.Data) == 0 {
		return ports.PricePoint{}, fmt.Errorf("eia price: product=%s area=%s: %w", product, area, domain.ErrNoPriceData)
	}

	row := decoded.Response.Data[0]
	value, err := row.Value.Float64()
	if err != nil {
		return ports.PricePoint{}, fmt.Errorf(
			"eia price: product=%s area=%s non-numeric value %q: %w",
			product, area, row.Value.String(), domain.ErrNoPriceData,
		)
	}

	return ports.PricePoint{Period: row.Period, Value: value}, nil
}
