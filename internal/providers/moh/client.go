package moh

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Israel Ministry of Health corona dashboard. Every query returns the whole
// dataset, there is no per-city filter.
// Sample request: https://datadashboardapi.health.gov.il/api/queries/spotlightPublic
const (
	defaultBaseURL = "https://datadashboardapi.health.gov.il"

	querySpotlight  = "spotlightPublic"
	queryInfected   = "infectedPerDate"
	queryVaccinated = "vaccinated"
)

// ErrEmptyResponse is returned when a query succeeds but yields no rows.
var ErrEmptyResponse = errors.New("HTTP request has returned no results")

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a dashboard client. An empty baseURL uses the public endpoint.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger.With("component", "moh-client"),
	}
}

// GetCities fetches the per-city dataset.
func (c *Client) GetCities(ctx context.Context) ([]CityRecord, error) {
	var rows []CityRecord
	if err := c.query(ctx, querySpotlight, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", querySpotlight, ErrEmptyResponse)
	}
	return rows, nil
}

// GetInfectedPerDate fetches the daily infection series, oldest first.
func (c *Client) GetInfectedPerDate(ctx context.Context) ([]InfectedEntry, error) {
	var rows []InfectedEntry
	if err := c.query(ctx, queryInfected, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", queryInfected, ErrEmptyResponse)
	}
	return rows, nil
}

// GetVaccinated fetches the daily vaccination series, oldest first.
func (c *Client) GetVaccinated(ctx context.Context) ([]VaccinatedEntry, error) {
	var rows []VaccinatedEntry
	if err := c.query(ctx, queryVaccinated, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", queryVaccinated, ErrEmptyResponse)
	}
	return rows, nil
}

func (c *Client) query(ctx context.Context, name string, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	u = u.JoinPath("api", "queries", name)

	c.logger.Debug("fetching MOH query", "query", name, "url", u.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch MOH query", "query", name, "error", err)
		return fmt.Errorf("failed to fetch %s: %w", name, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("MOH API returned error",
			"query", name,
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return fmt.Errorf("fetch %s returned status %d: %s", name, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode MOH response", "query", name, "error", err)
		return fmt.Errorf("failed to decode %s response: %w", name, err)
	}

	c.logger.Debug("successfully fetched MOH query", "query", name)
	return nil
}
