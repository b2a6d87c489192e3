package model

import "errors"

// Unit systems a user can choose between.
const (
	UnitMetric   = "metric"
	UnitImperial = "imperial"
)

// UserPreferences holds per-user settings, one row per user, created alongside
// the account. Saved locations are free-text city names in the order the user
// added them; the same city typed two different ways is two different entries.
type UserPreferences struct {
	Username                string     `db:"username" json:"username"`
	SavedLocations          StringList `db:"saved_locations" json:"saved_locations"`
	Unit                    string     `db:"unit" json:"unit"`
	NotificationPreferences JSONMap    `db:"notification_preferences" json:"notification_preferences"`
}

// UpdatePreferencesRequest is the body for PUT /me/preferences.
// Nil fields are left unchanged.
type UpdatePreferencesRequest struct {
	Unit                    *string `json:"unit,omitempty"`
	NotificationPreferences JSONMap `json:"notification_preferences,omitempty"`
}

// UpdateLocationsRequest replaces the full saved-locations list, matching the
// read-modify-write the dashboard performs.
type UpdateLocationsRequest struct {
	SavedLocations []string `json:"saved_locations"`
}

// ErrInvalidUnit is returned when the unit is neither metric nor imperial
var ErrInvalidUnit = errors.New("unit must be metric or imperial")
