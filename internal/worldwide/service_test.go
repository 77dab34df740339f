package worldwide

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"corona-stats/internal/countries"
	"corona-stats/internal/providers/coronaapi"

	"github.com/google/go-cmp/cmp"
)

// Mock providers for testing

type mockCountryProvider struct {
	response *coronaapi.CountryAPIResponse
	err      error
	gotCode  string
}

func (m *mockCountryProvider) GetCountry(ctx context.Context, code string) (*coronaapi.CountryAPIResponse, error) {
	m.gotCode = code
	return m.response, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTable(t *testing.T) *countries.Table {
	t.Helper()
	table, err := countries.Default()
	if err != nil {
		t.Fatalf("countries.Default() error = %v", err)
	}
	return table
}

func italyResponse() *coronaapi.CountryAPIResponse {
	resp := &coronaapi.CountryAPIResponse{}
	resp.Data.Name = "Italy"
	resp.Data.Code = "IT"
	resp.Data.Population = "60340328"
	resp.Data.Timeline = []coronaapi.TimelineEntry{
		{Date: "2021-09-01", Confirmed: "4539991", NewConfirmed: "6503", Active: "131117", Deaths: "129221", NewDeaths: "69"},
		{Date: "2021-08-31", Confirmed: "4533488", NewConfirmed: "5498", Active: "132112", Deaths: "129152", NewDeaths: "58"},
	}
	return resp
}

func TestWorldwideService_GetCountryCode(t *testing.T) {
	svc := NewWorldwideServiceWithProviders(&mockCountryProvider{}, testTable(t), testLogger())

	tests := []struct {
		query    string
		wantCode string
		wantErr  error
	}{
		{query: "ital", wantCode: "IT"},
		{query: "Israel", wantCode: "IL"},
		{query: "FRANCE", wantCode: "FR"},
		{query: "Narnia", wantErr: ErrCountryNotFound},
		{query: "", wantErr: ErrCountryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := svc.GetCountryCode(context.Background(), tt.query)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("GetCountryCode(%q) error = %v, want %v", tt.query, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetCountryCode(%q) unexpected error = %v", tt.query, err)
			}
			if got != tt.wantCode {
				t.Errorf("GetCountryCode(%q) = %q, want %q", tt.query, got, tt.wantCode)
			}
		})
	}
}

func TestWorldwideService_Lookup(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		response    *coronaapi.CountryAPIResponse
		providerErr error
		wantErr     bool
		errIs       error
		errContains string
		want        *CountryReport
	}{
		{
			name:     "latest timeline entry is used",
			query:    "italy",
			response: italyResponse(),
			want: &CountryReport{
				Country:      "Italy",
				Code:         "IT",
				Population:   "60340328",
				Updated:      "2021-09-01",
				Confirmed:    "4539991",
				NewConfirmed: "6503",
				Active:       "131117",
				Deaths:       "129221",
				NewDeaths:    "69",
			},
		},
		{
			name:        "provider error",
			query:       "italy",
			providerErr: errors.New("connection reset"),
			wantErr:     true,
			errContains: "failed to get country data",
		},
		{
			name:    "empty timeline",
			query:   "italy",
			wantErr: true,
			errIs:   ErrNoTimeline,
			response: func() *coronaapi.CountryAPIResponse {
				r := italyResponse()
				r.Data.Timeline = nil
				return r
			}(),
		},
		{
			name:    "unknown country never reaches the provider",
			query:   "Gondor",
			wantErr: true,
			errIs:   ErrCountryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockCountryProvider{response: tt.response, err: tt.providerErr}
			svc := NewWorldwideServiceWithProviders(provider, testTable(t), testLogger())

			got, err := svc.Lookup(context.Background(), tt.query)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Lookup() expected error but got none")
				}
				if tt.errIs != nil && !errors.Is(err, tt.errIs) {
					t.Errorf("Lookup() error = %v, want %v", err, tt.errIs)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Lookup() error = %v, want error containing %q", err, tt.errContains)
				}
				if errors.Is(err, ErrCountryNotFound) && provider.gotCode != "" {
					t.Errorf("provider called with %q for an unknown country", provider.gotCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("Lookup() unexpected error = %v", err)
			}
			if provider.gotCode != "IT" {
				t.Errorf("provider called with %q, want IT", provider.gotCode)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Lookup() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCountryReport_Text(t *testing.T) {
	report := &CountryReport{
		Country:      "Italy",
		Population:   "60340328",
		Updated:      "2021-09-01",
		Confirmed:    "4539991",
		NewConfirmed: "6503",
		Active:       "131117",
		Deaths:       "129221",
	}

	want := "      Country: Italy\n" +
		"   Population: 60340328\n" +
		"      Updated: 2021-09-01\n" +
		"    Confirmed: 4539991\n" +
		"New Confirmed: 6503\n" +
		"  Active sick: 131117\n" +
		"       Deaths: 129221\n" +
		"   New Deaths: N/A\n"

	if got := report.Text(); got != want {
		t.Errorf("Text() mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}
