package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"airqual/internal/model"
	"airqual/internal/provider"
)

type mockProvider struct {
	fetchByCityFn func(ctx context.Context, city string) (*provider.Reading, error)
	searchFn      func(ctx context.Context, keyword string) ([]string, error)
}

func (m *mockProvider) FetchByCity(ctx context.Context, city string) (*provider.Reading, error) {
	return m.fetchByCityFn(ctx, city)
}

func (m *mockProvider) SearchByKeyword(ctx context.Context, keyword string) ([]string, error) {
	return m.searchFn(ctx, keyword)
}

type mockReadingRepo struct {
	appendFn func(ctx context.Context, reading *model.AQIReading) error
	listFn   func(ctx context.Context, username, location string, start, end time.Time) ([]model.AQIReading, error)
	statsFn  func(ctx context.Context, username string, locations []string) ([]model.LocationStats, error)
}

func (m *mockReadingRepo) Append(ctx context.Context, reading *model.AQIReading) error {
	return m.appendFn(ctx, reading)
}

func (m *mockReadingRepo) ListByLocation(ctx context.Context, username, location string, start, end time.Time) ([]model.AQIReading, error) {
	return m.listFn(ctx, username, location, start, end)
}

func (m *mockReadingRepo) StatsByLocation(ctx context.Context, username string, locations []string) ([]model.LocationStats, error) {
	return m.statsFn(ctx, username, locations)
}

func TestCurrent_GoodAir(t *testing.T) {
	var appended *model.AQIReading
	prov := &mockProvider{
		fetchByCityFn: func(ctx context.Context, city string) (*provider.Reading, error) {
			return &provider.Reading{
				AQI:               42,
				Pollutants:        map[string]float64{"PM2.5": 10, "O3": 20},
				Location:          "Paris",
				Timestamp:         "2024-03-08T12:00:00+01:00",
				DominantPollutant: "pm25",
				Raw:               json.RawMessage(`{"aqi":42}`),
			}, nil
		},
	}
	readingRepo := &mockReadingRepo{
		appendFn: func(ctx context.Context, reading *model.AQIReading) error {
			appended = reading
			return nil
		},
	}

	svc := NewAirQualityService(prov, readingRepo, &mockPreferencesRepo{})
	report, err := svc.Current(context.Background(), "alice", "paris")
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}

	if report.AQI != 42 {
		t.Errorf("expected AQI 42, got %v", report.AQI)
	}
	if report.Category != "Good" {
		t.Errorf("expected category Good, got %q", report.Category)
	}
	if report.Color != "#4CAF50" {
		t.Errorf("expected color #4CAF50, got %q", report.Color)
	}
	if report.Pollutants["PM2.5"] != 10 {
		t.Errorf("expected PM2.5=10, got %v", report.Pollutants["PM2.5"])
	}
	if report.Recommendations.General == "" {
		t.Error("expected a general recommendation")
	}

	if appended == nil {
		t.Fatal("expected a history row to be appended")
	}
	if appended.Username != "alice" || appended.Location != "paris" {
		t.Errorf("row attributed to %s/%s", appended.Username, appended.Location)
	}
	if appended.AQIValue != 42 {
		t.Errorf("expected appended aqi_value 42, got %v", appended.AQIValue)
	}
}

func TestCurrent_UnknownCityPassesThrough(t *testing.T) {
	prov := &mockProvider{
		fetchByCityFn: func(ctx context.Context, city string) (*provider.Reading, error) {
			return nil, &provider.CityNotFoundError{City: city, Suggestions: []string{"London"}}
		},
	}
	readingRepo := &mockReadingRepo{
		appendFn: func(ctx context.Context, reading *model.AQIReading) error {
			t.Error("no row should be written for an unknown city")
			return nil
		},
	}

	svc := NewAirQualityService(prov, readingRepo, &mockPreferencesRepo{})
	_, err := svc.Current(context.Background(), "alice", "Lundon")

	var notFound *provider.CityNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *CityNotFoundError, got %v", err)
	}
	if len(notFound.Suggestions) != 1 || notFound.Suggestions[0] != "London" {
		t.Errorf("expected suggestion London, got %v", notFound.Suggestions)
	}
}

func TestCurrent_AppendFailureDoesNotBlock(t *testing.T) {
	prov := &mockProvider{
		fetchByCityFn: func(ctx context.Context, city string) (*provider.Reading, error) {
			return &provider.Reading{AQI: 120, Location: "Delhi", Pollutants: map[string]float64{}}, nil
		},
	}
	readingRepo := &mockReadingRepo{
		appendFn: func(ctx context.Context, reading *model.AQIReading) error {
			return errors.New("disk full")
		},
	}

	svc := NewAirQualityService(prov, readingRepo, &mockPreferencesRepo{})
	report, err := svc.Current(context.Background(), "alice", "Delhi")
	if err != nil {
		t.Fatalf("Current should succeed even when persistence fails, got %v", err)
	}
	if report.Category != "Unhealthy for Sensitive Groups" {
		t.Errorf("expected Unhealthy for Sensitive Groups, got %q", report.Category)
	}
}

func TestHistory_Stats(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := []model.AQIReading{
		{Location: "Paris", AQIValue: 40, Timestamp: base},
		{Location: "Paris", AQIValue: 60, Timestamp: base.AddDate(0, 0, 1)},
		{Location: "Paris", AQIValue: 170, Timestamp: base.AddDate(0, 0, 2)},
	}
	readingRepo := &mockReadingRepo{
		listFn: func(ctx context.Context, username, location string, start, end time.Time) ([]model.AQIReading, error) {
			return rows, nil
		},
	}

	svc := NewAirQualityService(&mockProvider{}, readingRepo, &mockPreferencesRepo{})
	report, err := svc.History(context.Background(), "alice", "Paris", base, base.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}

	if len(report.Readings) != 3 {
		t.Fatalf("expected 3 readings, got %d", len(report.Readings))
	}
	stats := report.Stats
	if stats == nil {
		t.Fatal("expected stats for a non-empty history")
	}
	if stats.Average != 90 {
		t.Errorf("expected average 90, got %v", stats.Average)
	}
	if stats.Maximum != 170 || stats.Minimum != 40 {
		t.Errorf("expected max 170 min 40, got %v/%v", stats.Maximum, stats.Minimum)
	}
	if stats.CategoryCounts["Good"] != 1 || stats.CategoryCounts["Moderate"] != 1 || stats.CategoryCounts["Unhealthy"] != 1 {
		t.Errorf("unexpected category counts: %v", stats.CategoryCounts)
	}
}

func TestHistory_EmptyRange(t *testing.T) {
	readingRepo := &mockReadingRepo{
		listFn: func(ctx context.Context, username, location string, start, end time.Time) ([]model.AQIReading, error) {
			return nil, nil
		},
	}

	svc := NewAirQualityService(&mockProvider{}, readingRepo, &mockPreferencesRepo{})
	report, err := svc.History(context.Background(), "alice", "Paris", time.Now().AddDate(0, 0, -7), time.Now())
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(report.Readings) != 0 {
		t.Errorf("expected no readings, got %d", len(report.Readings))
	}
	if report.Stats != nil {
		t.Error("no stats expected for an empty history")
	}
}

func TestHistory_InvertedRange(t *testing.T) {
	svc := NewAirQualityService(&mockProvider{}, &mockReadingRepo{}, &mockPreferencesRepo{})
	now := time.Now()
	if _, err := svc.History(context.Background(), "alice", "Paris", now, now.AddDate(0, 0, -1)); err == nil {
		t.Fatal("expected error when start is after end")
	}
}

func TestForecast_InsufficientHistory(t *testing.T) {
	readingRepo := &mockReadingRepo{
		listFn: func(ctx context.Context, username, location string, start, end time.Time) ([]model.AQIReading, error) {
			return []model.AQIReading{
				{AQIValue: 40, Timestamp: time.Now().AddDate(0, 0, -2)},
				{AQIValue: 50, Timestamp: time.Now().AddDate(0, 0, -1)},
			}, nil
		},
	}

	svc := NewAirQualityService(&mockProvider{}, readingRepo, &mockPreferencesRepo{})
	_, err := svc.Forecast(context.Background(), "alice", "Paris", 3)
	if !errors.Is(err, model.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestForecast_PredictsRequestedDays(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	var rows []model.AQIReading
	for i := 0; i < 10; i++ {
		rows = append(rows, model.AQIReading{
			AQIValue:  float64(40 + i),
			Timestamp: base.AddDate(0, 0, i),
		})
	}
	readingRepo := &mockReadingRepo{
		listFn: func(ctx context.Context, username, location string, start, end time.Time) ([]model.AQIReading, error) {
			return rows, nil
		},
	}

	svc := NewAirQualityService(&mockProvider{}, readingRepo, &mockPreferencesRepo{})
	report, err := svc.Forecast(context.Background(), "alice", "Paris", 3)
	if err != nil {
		t.Fatalf("Forecast returned error: %v", err)
	}
	if len(report.Predictions) != 3 {
		t.Fatalf("expected 3 predictions, got %d", len(report.Predictions))
	}
	for _, p := range report.Predictions {
		if p.AQI < 0 {
			t.Errorf("prediction for %s is negative: %v", p.Date, p.AQI)
		}
	}
}

func TestUsageStats_PicksExtremes(t *testing.T) {
	prefsRepo := &mockPreferencesRepo{
		getFn: func(ctx context.Context, username string) (*model.UserPreferences, error) {
			return &model.UserPreferences{
				Username:       username,
				SavedLocations: model.StringList{"Paris", "Delhi", "Oslo"},
			}, nil
		},
	}
	readingRepo := &mockReadingRepo{
		statsFn: func(ctx context.Context, username string, locations []string) ([]model.LocationStats, error) {
			return []model.LocationStats{
				{Location: "Paris", Readings: 12, AverageAQI: 55},
				{Location: "Delhi", Readings: 30, AverageAQI: 180},
				{Location: "Oslo", Readings: 4, AverageAQI: 20},
			}, nil
		},
	}

	svc := NewAirQualityService(&mockProvider{}, readingRepo, prefsRepo)
	stats, err := svc.UsageStats(context.Background(), "alice")
	if err != nil {
		t.Fatalf("UsageStats returned error: %v", err)
	}
	if stats.MostMonitored != "Delhi" {
		t.Errorf("expected most monitored Delhi, got %q", stats.MostMonitored)
	}
	if stats.BestAir != "Oslo" {
		t.Errorf("expected best air Oslo, got %q", stats.BestAir)
	}
	if stats.WorstAir != "Delhi" {
		t.Errorf("expected worst air Delhi, got %q", stats.WorstAir)
	}
}

func TestUsageStats_NoLocations(t *testing.T) {
	prefsRepo := &mockPreferencesRepo{
		getFn: func(ctx context.Context, username string) (*model.UserPreferences, error) {
			return &model.UserPreferences{Username: username, SavedLocations: model.StringList{}}, nil
		},
	}
	readingRepo := &mockReadingRepo{
		statsFn: func(ctx context.Context, username string, locations []string) ([]model.LocationStats, error) {
			return nil, nil
		},
	}

	svc := NewAirQualityService(&mockProvider{}, readingRepo, prefsRepo)
	stats, err := svc.UsageStats(context.Background(), "alice")
	if err != nil {
		t.Fatalf("UsageStats returned error: %v", err)
	}
	if len(stats.Locations) != 0 || stats.MostMonitored != "" {
		t.Errorf("expected empty stats, got %+v", stats)
	}
}
