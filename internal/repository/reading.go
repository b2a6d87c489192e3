package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"airqual/internal/model"
)

type readingRepository struct {
	db *sqlx.DB
}

// NewReadingRepository creates a new AQI reading repository
func NewReadingRepository(db *sqlx.DB) ReadingRepository {
	return &readingRepository{db: db}
}

// Append inserts a new reading row
func (r *readingRepository) Append(ctx context.Context, reading *model.AQIReading) error {
	query := `
		INSERT INTO aqi_readings (username, location, aqi_value, timestamp, pollutants, data)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	if reading.Timestamp.IsZero() {
		reading.Timestamp = time.Now()
	}

	err := r.db.QueryRowxContext(ctx, query,
		reading.Username,
		reading.Location,
		reading.AQIValue,
		reading.Timestamp,
		reading.Pollutants,
		[]byte(reading.Data),
	).Scan(&reading.ID)

	if err != nil {
		return fmt.Errorf("failed to insert aqi reading: %w", err)
	}
	return nil
}

// ListByLocation returns readings for a user/location within the date range,
// ordered by time ascending. The range is compared on calendar dates, the way
// the history page filters.
func (r *readingRepository) ListByLocation(ctx context.Context, username, location string, start, end time.Time) ([]model.AQIReading, error) {
	query := `
		SELECT id, username, location, aqi_value, timestamp, pollutants, data
		FROM aqi_readings
		WHERE username = $1 AND location = $2 AND timestamp::date BETWEEN $3 AND $4
		ORDER BY timestamp
	`

	var readings []model.AQIReading
	err := r.db.SelectContext(ctx, &readings, query, username, location, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list aqi readings: %w", err)
	}
	return readings, nil
}

// StatsByLocation aggregates per-location usage statistics for the profile page
func (r *readingRepository) StatsByLocation(ctx context.Context, username string, locations []string) ([]model.LocationStats, error) {
	if len(locations) == 0 {
		return nil, nil
	}

	query := `
		SELECT location,
		       COUNT(*)            AS readings,
		       AVG(aqi_value)      AS average_aqi,
		       MAX(aqi_value)      AS maximum_aqi,
		       MAX(timestamp)      AS last_checked
		FROM aqi_readings
		WHERE username = $1 AND location = ANY($2)
		GROUP BY location
	`

	var stats []model.LocationStats
	err := r.db.SelectContext(ctx, &stats, query, username, pq.Array(locations))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate location stats: %w", err)
	}
	return stats, nil
}
