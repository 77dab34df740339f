package israel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"corona-stats/internal/cache"
	"corona-stats/internal/providers/moh"

	"golang.org/x/sync/errgroup"
)

var (
	ErrCityNotFound = errors.New("city not found")
	// ErrNotEnoughData means the infection series lacks the two days the
	// general report compares.
	ErrNotEnoughData = errors.New("not enough daily data")
)

// DashboardProvider fetches the full Ministry of Health datasets.
type DashboardProvider interface {
	GetCities(ctx context.Context) ([]moh.CityRecord, error)
	GetInfectedPerDate(ctx context.Context) ([]moh.InfectedEntry, error)
	GetVaccinated(ctx context.Context) ([]moh.VaccinatedEntry, error)
}

// Service provides Israeli COVID-19 statistics.
type Service interface {
	FindCity(ctx context.Context, name string) (*CityReport, error)
	GeneralData(ctx context.Context) (*GeneralReport, error)
}

type israelService struct {
	cities     *cache.Dataset[[]moh.CityRecord]
	infected   *cache.Dataset[[]moh.InfectedEntry]
	vaccinated *cache.Dataset[[]moh.VaccinatedEntry]
	logger     *slog.Logger
}

// NewIsraelService creates a service whose datasets are fetched from provider
// and kept in store for ttl.
func NewIsraelService(provider DashboardProvider, store cache.Store, ttl time.Duration, logger *slog.Logger) Service {
	return &israelService{
		cities:     cache.NewDataset[[]moh.CityRecord]("israel:cities", ttl, store, provider.GetCities, logger),
		infected:   cache.NewDataset[[]moh.InfectedEntry]("israel:infected", ttl, store, provider.GetInfectedPerDate, logger),
		vaccinated: cache.NewDataset[[]moh.VaccinatedEntry]("israel:vaccinated", ttl, store, provider.GetVaccinated, logger),
		logger:     logger.With("component", "israel-service"),
	}
}

// FindCity returns the record whose name equals name exactly, after trimming
// surrounding whitespace.
func (s *israelService) FindCity(ctx context.Context, name string) (*CityReport, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCityNotFound
	}

	cities, err := s.cities.Get(ctx)
	if err != nil {
		s.logger.Error("failed to load city data", "error", err)
		return nil, fmt.Errorf("failed to load city data: %w", err)
	}

	for i := range cities {
		if cities[i].Name == name {
			return mapCity(&cities[i]), nil
		}
	}

	s.logger.Debug("no city matches query", "query", name, "cities", len(cities))
	return nil, fmt.Errorf("%q: %w", name, ErrCityNotFound)
}

// GeneralData combines the latest infection and vaccination figures.
func (s *israelService) GeneralData(ctx context.Context) (*GeneralReport, error) {
	var (
		infected   []moh.InfectedEntry
		vaccinated []moh.VaccinatedEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		infected, err = s.infected.Get(gctx)
		if err != nil {
			return fmt.Errorf("failed to load infection data: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		vaccinated, err = s.vaccinated.Get(gctx)
		if err != nil {
			return fmt.Errorf("failed to load vaccination data: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("failed to load general data", "error", err)
		return nil, err
	}

	return mapGeneral(infected, vaccinated)
}

func mapCity(c *moh.CityRecord) *CityReport {
	return &CityReport{
		City:       c.Name,
		ActiveSick: c.ActiveSick,
		Color:      c.Color,
		FirstDose:  c.FirstDose,
		SecondDose: c.SecondDose,
		ThirdDose:  c.ThirdDose,
	}
}

// mapGeneral takes the last infected entry as today, the one before it as
// yesterday, and the last vaccinated entry.
func mapGeneral(infected []moh.InfectedEntry, vaccinated []moh.VaccinatedEntry) (*GeneralReport, error) {
	if len(infected) < 2 {
		return nil, fmt.Errorf("infection series has %d entries: %w", len(infected), ErrNotEnoughData)
	}
	if len(vaccinated) == 0 {
		return nil, fmt.Errorf("vaccination series is empty: %w", ErrNotEnoughData)
	}

	today := infected[len(infected)-1]
	yesterday := infected[len(infected)-2]
	vacc := vaccinated[len(vaccinated)-1]

	return &GeneralReport{
		Date:                 today.Date,
		Confirmed:            today.Sum,
		NewSick:              today.Amount,
		NewSickYesterday:     yesterday.Amount,
		TotalVaccinated:      vacc.VaccinatedCum,
		VaccinatedPopulation: vacc.VaccinatedPopulationPerc,
		TotalSecondDose:      vacc.VaccinatedSecondDoseCum,
		TotalThirdDose:       vacc.VaccinatedThirdDoseCum,
	}, nil
}
