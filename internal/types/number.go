package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// NotAvailable is rendered for fields the upstream left out or sent as null.
const NotAvailable = "N/A"

// Number is a numeric field from an upstream API, kept in its textual form so
// values print as received. Upstreams occasionally send numbers as strings;
// both forms are accepted. A string that parses as a number but is not a JSON
// number literal (".5", "+3") is stored in canonical form, and NaN or Inf is
// stored as not available, so a Number always marshals to valid JSON.
type Number string

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := normalize(s)
		if err != nil {
			return err
		}
		*n = v
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = Number(num)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("null"), nil
	}
	if isLiteral(string(n)) {
		return []byte(n), nil
	}
	// Set in code rather than decoded
	if v, err := normalize(string(n)); err == nil {
		if v == "" {
			return []byte("null"), nil
		}
		return []byte(v), nil
	}
	return json.Marshal(string(n))
}

// Valid reports whether the upstream supplied a value.
func (n Number) Valid() bool {
	return n != ""
}

func (n Number) String() string {
	if n == "" {
		return NotAvailable
	}
	return string(n)
}

func normalize(s string) (Number, error) {
	if s == "" {
		return "", nil
	}
	if isLiteral(s) {
		return Number(s), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "", fmt.Errorf("invalid number %q", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", nil
	}
	return Number(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

// isLiteral reports whether s is exactly a JSON number literal.
func isLiteral(s string) bool {
	if s == "" {
		return false
	}
	first, last := s[0], s[len(s)-1]
	if first != '-' && (first < '0' || first > '9') {
		return false
	}
	if last < '0' || last > '9' {
		return false
	}
	return json.Valid([]byte(s))
}
