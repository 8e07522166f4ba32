package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexFloat is a nullable float64 that unmarshals from a JSON number or a
// numeric string ("35.68"). The PWA client sends coordinates as numbers but
// query-string callers only have strings, so both shapes hit the same decode
// path. Null, a missing key and an empty string all leave Valid false:
// spreadsheet-era clients send "" for a coordinate they never captured.
type FlexFloat struct {
	Float64 float64
	Valid   bool
}

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("FlexFloat.UnmarshalJSON: cannot parse %q: %w", s, err)
	}
	f.Float64 = v
	f.Valid = true
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Float64)
}

// ParseFlexFloat converts a query-string value, leaving Valid false for
// blank or unparseable input.
func ParseFlexFloat(s string) FlexFloat {
	s = strings.TrimSpace(s)
	if s == "" {
		return FlexFloat{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return FlexFloat{}
	}
	return FlexFloat{Float64: v, Valid: true}
}
