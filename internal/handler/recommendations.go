package handler

import (
	"net/http"
	"strconv"

	"airqual/internal/aqi"
	"airqual/internal/httputil"
)

// RecommendationsHandler serves health advice lookups. The tables are pure
// functions of the AQI value, so the handler needs no dependencies.
type RecommendationsHandler struct{}

func NewRecommendationsHandler() *RecommendationsHandler {
	return &RecommendationsHandler{}
}

// Get returns advice for an AQI value
// GET /recommendations?aqi=&detailed=&condition=
func (h *RecommendationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	aqiParam := r.URL.Query().Get("aqi")
	if aqiParam == "" {
		httputil.WriteBadRequest(w, "aqi query parameter is required")
		return
	}
	value, err := strconv.ParseFloat(aqiParam, 64)
	if err != nil || value < 0 {
		httputil.WriteBadRequest(w, "aqi must be a non-negative number")
		return
	}

	label, color := aqi.Category(value)
	response := map[string]interface{}{
		"aqi":      value,
		"category": label,
		"color":    color,
	}

	if r.URL.Query().Get("detailed") == "true" {
		response["recommendations"] = aqi.GetDetailedRecommendations(value)
	} else {
		response["recommendations"] = aqi.GetRecommendations(value)
	}

	if condition := r.URL.Query().Get("condition"); condition != "" {
		response["personalized"] = aqi.Personalize(value, condition)
	}

	httputil.WriteJSON(w, http.StatusOK, response)
}
