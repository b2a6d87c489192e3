package model

import (
	"encoding/json"
	"errors"
	"time"
)

// AQIReading is one append-only row of the per-user reading history. A row is
// written every time a user views a location's current air quality; rows are
// never updated or deleted, and repeated views produce duplicate rows.
type AQIReading struct {
	ID         int64           `db:"id" json:"id"`
	Username   string          `db:"username" json:"username"`
	Location   string          `db:"location" json:"location"`
	AQIValue   float64         `db:"aqi_value" json:"aqi"`
	Timestamp  time.Time       `db:"timestamp" json:"timestamp"`
	Pollutants PollutantMap    `db:"pollutants" json:"pollutants"`
	Data       json.RawMessage `db:"data" json:"-"` // raw provider payload
}

// HistoryStats summarizes a history query the way the history page does.
type HistoryStats struct {
	Average        float64        `json:"average"`
	Maximum        float64        `json:"maximum"`
	Minimum        float64        `json:"minimum"`
	CategoryCounts map[string]int `json:"category_counts"`
}

// LocationStats is one row of the profile page's usage-statistics table.
type LocationStats struct {
	Location    string    `db:"location" json:"location"`
	Readings    int       `db:"readings" json:"readings"`
	AverageAQI  float64   `db:"average_aqi" json:"average_aqi"`
	MaximumAQI  float64   `db:"maximum_aqi" json:"maximum_aqi"`
	LastChecked time.Time `db:"last_checked" json:"last_checked"`
}

// UsageStatsResponse is returned by GET /me/stats.
type UsageStatsResponse struct {
	Locations     []LocationStats `json:"locations"`
	MostMonitored string          `json:"most_monitored,omitempty"`
	BestAir       string          `json:"best_air,omitempty"`
	WorstAir      string          `json:"worst_air,omitempty"`
}

// ErrInsufficientData is returned by the trend estimator when fewer than the
// minimum number of historical rows exist.
var ErrInsufficientData = errors.New("insufficient data for prediction")
