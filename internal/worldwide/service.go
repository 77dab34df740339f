package worldwide

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"corona-stats/internal/countries"
	"corona-stats/internal/providers/coronaapi"
)

var (
	ErrCountryNotFound = errors.New("country not found")
	ErrNoTimeline      = errors.New("country has no timeline data")
)

// CountryProvider fetches statistics for a single country code.
type CountryProvider interface {
	GetCountry(ctx context.Context, code string) (*coronaapi.CountryAPIResponse, error)
}

// CodeResolver maps a free-text country name to an ISO code.
type CodeResolver interface {
	Lookup(query string) (countries.Country, error)
}

// Service provides worldwide COVID-19 statistics.
type Service interface {
	GetCountryCode(ctx context.Context, country string) (string, error)
	GetCountryData(ctx context.Context, code string) (*CountryReport, error)
	Lookup(ctx context.Context, country string) (*CountryReport, error)
}

type worldwideService struct {
	provider CountryProvider
	resolver CodeResolver
	logger   *slog.Logger
}

// NewWorldwideService creates a service backed by the bundled country table
// and the given upstream client.
func NewWorldwideService(client *coronaapi.Client, logger *slog.Logger) (Service, error) {
	table, err := countries.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load country codes: %w", err)
	}
	return NewWorldwideServiceWithProviders(client, table, logger), nil
}

// NewWorldwideServiceWithProviders creates a service with custom providers.
// This is useful for testing with mock providers.
func NewWorldwideServiceWithProviders(provider CountryProvider, resolver CodeResolver, logger *slog.Logger) Service {
	return &worldwideService{
		provider: provider,
		resolver: resolver,
		logger:   logger.With("component", "worldwide-service"),
	}
}

// GetCountryCode resolves a partial, case-insensitive country name to its
// two-letter code.
func (s *worldwideService) GetCountryCode(_ context.Context, country string) (string, error) {
	c, err := s.resolver.Lookup(country)
	if err != nil {
		if errors.Is(err, countries.ErrNotFound) {
			s.logger.Debug("no country matches query", "query", country)
			return "", fmt.Errorf("%q: %w", country, ErrCountryNotFound)
		}
		return "", fmt.Errorf("failed to resolve country code: %w", err)
	}

	s.logger.Debug("resolved country code",
		"query", country,
		"country", c.EnglishShortName,
		"code", c.Alpha2Code,
	)
	return c.Alpha2Code, nil
}

// GetCountryData fetches the latest statistics for a country code.
func (s *worldwideService) GetCountryData(ctx context.Context, code string) (*CountryReport, error) {
	resp, err := s.provider.GetCountry(ctx, code)
	if err != nil {
		s.logger.Error("failed to get country data", "code", code, "error", err)
		return nil, fmt.Errorf("failed to get country data: %w", err)
	}

	return mapCountryResponse(code, resp)
}

// Lookup resolves the country name and fetches its statistics.
func (s *worldwideService) Lookup(ctx context.Context, country string) (*CountryReport, error) {
	code, err := s.GetCountryCode(ctx, country)
	if err != nil {
		return nil, err
	}
	return s.GetCountryData(ctx, code)
}

func mapCountryResponse(code string, resp *coronaapi.CountryAPIResponse) (*CountryReport, error) {
	if resp == nil {
		return nil, fmt.Errorf("country response is nil")
	}
	if len(resp.Data.Timeline) == 0 {
		return nil, fmt.Errorf("%s: %w", code, ErrNoTimeline)
	}

	latest := resp.Data.Timeline[0]
	if resp.Data.Code != "" {
		code = resp.Data.Code
	}

	return &CountryReport{
		Country:      resp.Data.Name,
		Code:         code,
		Population:   resp.Data.Population,
		Updated:      latest.Date,
		Confirmed:    latest.Confirmed,
		NewConfirmed: latest.NewConfirmed,
		Active:       latest.Active,
		Deaths:       latest.Deaths,
		NewDeaths:    latest.NewDeaths,
	}, nil
}
