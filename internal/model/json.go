package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList maps a JSONB array column to a Go string slice.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// JSONMap maps a free-form JSONB object column. No shape validation is performed
// on the stored value.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		m = JSONMap{}
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(src interface{}) error {
	return scanJSON(src, m)
}

// PollutantMap maps pollutant display names to their reported values.
type PollutantMap map[string]float64

func (m PollutantMap) Value() (driver.Value, error) {
	if m == nil {
		m = PollutantMap{}
	}
	return json.Marshal(m)
}

func (m *PollutantMap) Scan(src interface{}) error {
	return scanJSON(src, m)
}

func scanJSON(src, dst interface{}) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}
