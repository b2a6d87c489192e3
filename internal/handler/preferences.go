package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"airqual/internal/httputil"
	"airqual/internal/model"
	"airqual/internal/service"
	"airqual/internal/transport/http/middleware"
)

// PreferencesHandler serves the settings page endpoints.
type PreferencesHandler struct {
	prefsService *service.PreferencesService
}

func NewPreferencesHandler(prefsService *service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{prefsService: prefsService}
}

// Get returns the authenticated user's preferences
// GET /me/preferences
func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsernameFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	prefs, err := h.prefsService.Get(r.Context(), username)
	if err != nil {
		httputil.WriteInternalError(w, "Failed to load preferences")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, prefs)
}

// Update applies partial preference changes
// PUT /me/preferences
func (h *PreferencesHandler) Update(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsernameFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	var req model.UpdatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	prefs, err := h.prefsService.Update(r.Context(), username, &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidUnit) {
			httputil.WriteBadRequest(w, "Unit must be metric or imperial")
			return
		}
		httputil.WriteInternalError(w, "Failed to update preferences")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, prefs)
}

// GetLocations returns the saved-locations list on its own
// GET /me/locations
func (h *PreferencesHandler) GetLocations(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsernameFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	prefs, err := h.prefsService.Get(r.Context(), username)
	if err != nil {
		httputil.WriteInternalError(w, "Failed to load locations")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"saved_locations": prefs.SavedLocations,
	})
}

// UpdateLocations replaces the saved-locations list
// PUT /me/locations
func (h *PreferencesHandler) UpdateLocations(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsernameFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	var req model.UpdateLocationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	prefs, err := h.prefsService.ReplaceLocations(r.Context(), username, req.SavedLocations)
	if err != nil {
		httputil.WriteInternalError(w, "Failed to update locations")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, prefs)
}
