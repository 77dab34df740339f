package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"corona-stats/internal/israel"
	"corona-stats/internal/messages"
	"corona-stats/internal/worldwide"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockWorldwideService struct {
	report   *worldwide.CountryReport
	err      error
	gotQuery string
}

func (m *mockWorldwideService) GetCountryCode(ctx context.Context, country string) (string, error) {
	return "", errors.New("not implemented")
}

func (m *mockWorldwideService) GetCountryData(ctx context.Context, code string) (*worldwide.CountryReport, error) {
	return nil, errors.New("not implemented")
}

func (m *mockWorldwideService) Lookup(ctx context.Context, country string) (*worldwide.CountryReport, error) {
	m.gotQuery = country
	return m.report, m.err
}

type mockIsraelService struct {
	city       *israel.CityReport
	cityErr    error
	general    *israel.GeneralReport
	generalErr error
	gotCity    string
}

func (m *mockIsraelService) FindCity(ctx context.Context, name string) (*israel.CityReport, error) {
	m.gotCity = name
	return m.city, m.cityErr
}

func (m *mockIsraelService) GeneralData(ctx context.Context) (*israel.GeneralReport, error) {
	return m.general, m.generalErr
}

func run(t *testing.T, svc *services, args ...string) (string, error) {
	t.Helper()
	cat, err := messages.New("en")
	require.NoError(t, err)
	svc.messages = cat

	var out bytes.Buffer
	cmd := newRootCmd(svc)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), err
}

func TestCountryCmd(t *testing.T) {
	report := &worldwide.CountryReport{Country: "United Kingdom", Code: "GB", Population: "67886004"}
	ws := &mockWorldwideService{report: report}

	out, err := run(t, &services{worldwide: ws, israel: &mockIsraelService{}}, "country", "united", "kingdom")

	require.NoError(t, err)
	assert.Equal(t, "united kingdom", ws.gotQuery)
	assert.Equal(t, report.Text(), out)
}

func TestCountryCmd_NotFound(t *testing.T) {
	ws := &mockWorldwideService{err: fmt.Errorf("%q: %w", "atlantis", worldwide.ErrCountryNotFound)}

	out, err := run(t, &services{worldwide: ws, israel: &mockIsraelService{}}, "country", "atlantis")

	require.NoError(t, err)
	assert.Equal(t, "No results found\n", out)
}

func TestCountryCmd_UpstreamFailure(t *testing.T) {
	ws := &mockWorldwideService{err: errors.New("failed to fetch: timeout")}

	_, err := run(t, &services{worldwide: ws, israel: &mockIsraelService{}}, "country", "italy")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot process country data")
}

func TestCountryCmd_RequiresArgument(t *testing.T) {
	_, err := run(t, &services{worldwide: &mockWorldwideService{}, israel: &mockIsraelService{}}, "country")
	assert.Error(t, err)
}

func TestCityCmd(t *testing.T) {
	city := &israel.CityReport{City: "תל אביב - יפו", ActiveSick: "2100", Color: "כתום"}

	tests := []struct {
		name    string
		svc     *mockIsraelService
		reverse bool
		want    string
		wantErr string
	}{
		{name: "found", svc: &mockIsraelService{city: city}, want: city.Text(israel.TextOptions{})},
		{name: "found reversed", svc: &mockIsraelService{city: city}, reverse: true, want: city.Text(israel.TextOptions{ReverseHebrew: true})},
		{name: "not found", svc: &mockIsraelService{cityErr: israel.ErrCityNotFound}, want: "No results found\n"},
		{name: "upstream failure", svc: &mockIsraelService{cityErr: errors.New("failed to load city data")}, wantErr: "Cannot process Israel city data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, &services{worldwide: &mockWorldwideService{}, israel: tt.svc, reverse: tt.reverse},
				"city", "תל", "אביב", "-", "יפו")

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "תל אביב - יפו", tt.svc.gotCity)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestGeneralCmd(t *testing.T) {
	general := &israel.GeneralReport{Date: "2021-08-31T00:00:00.000Z", Confirmed: "1054947"}

	out, err := run(t, &services{worldwide: &mockWorldwideService{}, israel: &mockIsraelService{general: general}}, "general")
	require.NoError(t, err)
	assert.Equal(t, general.Text(), out)

	_, err = run(t, &services{worldwide: &mockWorldwideService{}, israel: &mockIsraelService{generalErr: israel.ErrNotEnoughData}}, "general")
	require.Error(t, err)
	assert.ErrorIs(t, err, israel.ErrNotEnoughData)
}
