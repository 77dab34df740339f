// Package countries resolves free-text country names to ISO 3166-1 codes
// using a table bundled with the binary.
package countries

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

//go:embed data/ISO3166-1.json
var iso3166 []byte

var ErrNotFound = errors.New("country not found")

type Country struct {
	EnglishShortName string `json:"englishShortName"`
	Alpha2Code       string `json:"alpha2Code"`
	Alpha3Code       string `json:"alpha3Code"`
	Numeric          string `json:"numeric"`
}

// Table is an immutable, ordered list of countries. Safe for concurrent use.
type Table struct {
	countries []Country
	folded    []string
}

var (
	defaultTable *Table
	defaultErr   error
	once         sync.Once
)

// Default returns the bundled table, parsed on first use.
func Default() (*Table, error) {
	once.Do(func() {
		defaultTable, defaultErr = Load(bytes.NewReader(iso3166))
	})
	return defaultTable, defaultErr
}

// Load parses a JSON array of countries. File order is preserved and decides
// which entry wins when a query matches several names.
func Load(r io.Reader) (*Table, error) {
	var list []Country
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode country codes: %w", err)
	}
	if len(list) == 0 {
		return nil, errors.New("country code table is empty")
	}

	fold := cases.Fold()
	folded := make([]string, len(list))
	for i, c := range list {
		folded[i] = fold.String(c.EnglishShortName)
	}

	return &Table{countries: list, folded: folded}, nil
}

// Lookup returns the first country whose English short name contains query,
// ignoring case. A blank query never matches.
func (t *Table) Lookup(query string) (Country, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Country{}, ErrNotFound
	}

	// Casers keep state, so each call gets its own
	q := cases.Fold().String(query)
	for i, name := range t.folded {
		if strings.Contains(name, q) {
			return t.countries[i], nil
		}
	}
	return Country{}, fmt.Errorf("%q: %w", query, ErrNotFound)
}

// Len returns the number of countries in the table.
func (t *Table) Len() int {
	return len(t.countries)
}
