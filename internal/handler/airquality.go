package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"airqual/internal/httputil"
	"airqual/internal/model"
	"airqual/internal/provider"
	"airqual/internal/service"
	"airqual/internal/transport/http/middleware"
)

const dateLayout = "2006-01-02"

// AirQualityHandler serves the dashboard's data endpoints.
type AirQualityHandler struct {
	aqService *service.AirQualityService
}

func NewAirQualityHandler(aqService *service.AirQualityService) *AirQualityHandler {
	return &AirQualityHandler{aqService: aqService}
}

// Current returns the live reading for a city
// GET /air-quality/current?city=
func (h *AirQualityHandler) Current(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsernameFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	city := r.URL.Query().Get("city")
	if city == "" {
		httputil.WriteBadRequest(w, "city query parameter is required")
		return
	}

	report, err := h.aqService.Current(r.Context(), username, city)
	if err != nil {
		var notFound *provider.CityNotFoundError
		if errors.As(err, &notFound) {
			httputil.WriteErrorWithDetails(w, http.StatusNotFound, httputil.ErrCodeNotFound,
				fmt.Sprintf("City %q not found", notFound.City),
				map[string][]string{"suggestions": notFound.Suggestions})
			return
		}
		httputil.WriteBadGateway(w, "Air quality provider is unavailable")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, report)
}

// History returns a user's readings for a location in a date range
// GET /air-quality/history?location=&start=&end=
func (h *AirQualityHandler) History(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsernameFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	location := r.URL.Query().Get("location")
	if location == "" {
		httputil.WriteBadRequest(w, "location query parameter is required")
		return
	}

	// Default window: the last 7 days.
	end := time.Now()
	start := end.AddDate(0, 0, -7)

	if s := r.URL.Query().Get("start_date"); s != "" {
		parsed, err := time.Parse(dateLayout, s)
		if err != nil {
			httputil.WriteBadRequest(w, "start_date must be formatted YYYY-MM-DD")
			return
		}
		start = parsed
	}
	if e := r.URL.Query().Get("end_date"); e != "" {
		parsed, err := time.Parse(dateLayout, e)
		if err != nil {
			httputil.WriteBadRequest(w, "end_date must be formatted YYYY-MM-DD")
			return
		}
		end = parsed
	}
	if start.After(end) {
		httputil.WriteBadRequest(w, "start_date cannot be after end_date")
		return
	}

	report, err := h.aqService.History(r.Context(), username, location, start, end)
	if err != nil {
		httputil.WriteInternalError(w, "Failed to load history")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, report)
}

// Forecast extrapolates the user's history for a location
// GET /air-quality/forecast?location=&days=
func (h *AirQualityHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsernameFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	location := r.URL.Query().Get("location")
	if location == "" {
		httputil.WriteBadRequest(w, "location query parameter is required")
		return
	}

	days := 3
	if d := r.URL.Query().Get("days"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed < 1 || parsed > 14 {
			httputil.WriteBadRequest(w, "days must be an integer between 1 and 14")
			return
		}
		days = parsed
	}

	report, err := h.aqService.Forecast(r.Context(), username, location, days)
	if err != nil {
		if errors.Is(err, model.ErrInsufficientData) {
			// Not enough history is an expected outcome, not a failure.
			httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
				"location":    location,
				"predictions": []interface{}{},
				"message":     "Not enough history to forecast this location yet",
			})
			return
		}
		httputil.WriteInternalError(w, "Failed to compute forecast")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, report)
}

// Stats returns per-location usage statistics for the profile page
// GET /me/stats
func (h *AirQualityHandler) Stats(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsernameFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	stats, err := h.aqService.UsageStats(r.Context(), username)
	if err != nil {
		httputil.WriteInternalError(w, "Failed to load statistics")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, stats)
}
