package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"airqual/internal/aqi"
	"airqual/internal/model"
	"airqual/internal/provider"
	"airqual/internal/repository"
	"airqual/internal/trend"
)

// CurrentReport is everything the dashboard needs to render a city's current
// air quality: the reading, its category band, and the basic advice bundle.
type CurrentReport struct {
	Location          string              `json:"location"`
	AQI               float64             `json:"aqi"`
	Category          string              `json:"category"`
	Color             string              `json:"color"`
	DominantPollutant string              `json:"dominant_pollutant,omitempty"`
	Pollutants        map[string]float64  `json:"pollutants"`
	Timestamp         string              `json:"timestamp"`
	Recommendations   aqi.Recommendations `json:"recommendations"`
}

// HistoryReport is the history page's payload: readings in time order plus
// the summary statistics shown above the chart.
type HistoryReport struct {
	Location string              `json:"location"`
	Readings []model.AQIReading  `json:"readings"`
	Stats    *model.HistoryStats `json:"stats,omitempty"`
}

// ForecastReport carries trend predictions for a location.
type ForecastReport struct {
	Location    string             `json:"location"`
	Predictions []trend.Prediction `json:"predictions"`
}

// AirQualityService orchestrates the provider, the rule tables, and the
// reading history.
type AirQualityService struct {
	provider    provider.Client
	readingRepo repository.ReadingRepository
	prefsRepo   repository.PreferencesRepository
}

func NewAirQualityService(p provider.Client, readingRepo repository.ReadingRepository, prefsRepo repository.PreferencesRepository) *AirQualityService {
	return &AirQualityService{
		provider:    p,
		readingRepo: readingRepo,
		prefsRepo:   prefsRepo,
	}
}

// Current fetches the live reading for a city, maps it through the category
// and recommendation tables, and appends a history row. Unknown-city errors
// from the provider pass through untouched so the handler can surface
// spelling suggestions; no row is written in that case.
func (s *AirQualityService) Current(ctx context.Context, username, city string) (*CurrentReport, error) {
	reading, err := s.provider.FetchByCity(ctx, city)
	if err != nil {
		return nil, err
	}

	label, color := aqi.Category(reading.AQI)

	report := &CurrentReport{
		Location:          reading.Location,
		AQI:               reading.AQI,
		Category:          label,
		Color:             color,
		DominantPollutant: reading.DominantPollutant,
		Pollutants:        reading.Pollutants,
		Timestamp:         reading.Timestamp,
		Recommendations:   aqi.GetRecommendations(reading.AQI),
	}

	row := &model.AQIReading{
		Username:   username,
		Location:   city,
		AQIValue:   reading.AQI,
		Timestamp:  time.Now(),
		Pollutants: reading.Pollutants,
		Data:       json.RawMessage(reading.Raw),
	}
	if err := s.readingRepo.Append(ctx, row); err != nil {
		// Logging the reading is best-effort; the page still renders.
		log.Printf("[AirQuality] failed to append reading for %s/%s: %v", username, city, err)
	}

	return report, nil
}

// History returns a user's readings for a location within a date range,
// ascending, with the summary statistics the history page shows.
func (s *AirQualityService) History(ctx context.Context, username, location string, start, end time.Time) (*HistoryReport, error) {
	if start.After(end) {
		return nil, fmt.Errorf("start date cannot be after end date")
	}

	readings, err := s.readingRepo.ListByLocation(ctx, username, location, start, end)
	if err != nil {
		return nil, err
	}

	report := &HistoryReport{Location: location, Readings: readings}
	if len(readings) > 0 {
		report.Stats = summarize(readings)
	}
	return report, nil
}

// Forecast retrains the trend estimator on the user's history for a location
// and extrapolates the requested number of days. Callers should treat
// model.ErrInsufficientData as "no prediction", not as a failure.
func (s *AirQualityService) Forecast(ctx context.Context, username, location string, days int) (*ForecastReport, error) {
	// The estimator trains on whatever rows exist; use a wide window ending now.
	end := time.Now()
	start := end.AddDate(-1, 0, 0)

	readings, err := s.readingRepo.ListByLocation(ctx, username, location, start, end)
	if err != nil {
		return nil, err
	}

	points := make([]trend.Point, len(readings))
	for i, r := range readings {
		points[i] = trend.Point{Timestamp: r.Timestamp, AQI: r.AQIValue}
	}

	predictions, err := trend.Predict(points, days)
	if err != nil {
		return nil, err
	}
	return &ForecastReport{Location: location, Predictions: predictions}, nil
}

// UsageStats aggregates the profile page's per-location statistics over the
// user's saved locations and names the most monitored, best-air, and
// worst-air locations.
func (s *AirQualityService) UsageStats(ctx context.Context, username string) (*model.UsageStatsResponse, error) {
	prefs, err := s.prefsRepo.Get(ctx, username)
	if err != nil {
		return nil, err
	}

	stats, err := s.readingRepo.StatsByLocation(ctx, username, prefs.SavedLocations)
	if err != nil {
		return nil, err
	}

	resp := &model.UsageStatsResponse{Locations: stats}
	if len(stats) == 0 {
		return resp, nil
	}

	most, best, worst := stats[0], stats[0], stats[0]
	for _, st := range stats[1:] {
		if st.Readings > most.Readings {
			most = st
		}
		if st.AverageAQI < best.AverageAQI {
			best = st
		}
		if st.AverageAQI > worst.AverageAQI {
			worst = st
		}
	}
	resp.MostMonitored = most.Location
	resp.BestAir = best.Location
	resp.WorstAir = worst.Location
	return resp, nil
}

func summarize(readings []model.AQIReading) *model.HistoryStats {
	stats := &model.HistoryStats{
		Minimum:        readings[0].AQIValue,
		Maximum:        readings[0].AQIValue,
		CategoryCounts: make(map[string]int),
	}

	var sum float64
	for _, r := range readings {
		sum += r.AQIValue
		if r.AQIValue > stats.Maximum {
			stats.Maximum = r.AQIValue
		}
		if r.AQIValue < stats.Minimum {
			stats.Minimum = r.AQIValue
		}
		label, _ := aqi.Category(r.AQIValue)
		stats.CategoryCounts[label]++
	}
	stats.Average = sum / float64(len(readings))
	return stats
}
