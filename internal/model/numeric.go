package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Numeric holds a JSON number or numeric string exactly as received.
// Parsing is deferred so that validation can report which field was malformed.
type Numeric struct {
	raw string
}

// NewNumeric creates a Numeric from its textual form.
func NewNumeric(s string) Numeric {
	return Numeric{raw: strings.TrimSpace(s)}
}

// NumericFromFloat creates a Numeric from a float.
func NumericFromFloat(f float64) Numeric {
	return Numeric{raw: strconv.FormatFloat(f, 'f', -1, 64)}
}

// UnmarshalJSON accepts numbers and strings. Other JSON values are kept
// verbatim and rejected later by Float or Int.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		n.raw = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n.raw = strings.TrimSpace(s)
		return nil
	}
	n.raw = string(data)
	return nil
}

// MarshalJSON writes the value as a JSON number when it parses, otherwise as a string.
func (n Numeric) MarshalJSON() ([]byte, error) {
	if n.raw == "" {
		return []byte("null"), nil
	}
	if _, err := n.Float(); err == nil {
		return []byte(n.raw), nil
	}
	return json.Marshal(n.raw)
}

// IsEmpty reports whether no value was supplied.
func (n Numeric) IsEmpty() bool {
	return n.raw == ""
}

// String returns the raw text.
func (n Numeric) String() string {
	return n.raw
}

// Float parses the value as a finite float64.
func (n Numeric) Float() (float64, error) {
	f, err := strconv.ParseFloat(n.raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a number", n.raw)
	}
	return f, nil
}

// Int parses the value as an integer. Floats with a fractional part are rejected.
func (n Numeric) Int() (int, error) {
	f, err := n.Float()
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%q is not an integer", n.raw)
	}
	return int(f), nil
}
