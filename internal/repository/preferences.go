package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"airqual/internal/model"
)

type preferencesRepository struct {
	db *sqlx.DB
}

// NewPreferencesRepository creates a new preferences repository
func NewPreferencesRepository(db *sqlx.DB) PreferencesRepository {
	return &preferencesRepository{db: db}
}

// CreateDefault inserts the default preferences row created alongside a new
// account: empty saved locations, metric units, empty notification settings.
func (r *preferencesRepository) CreateDefault(ctx context.Context, username string) error {
	query := `
		INSERT INTO user_preferences (username, unit)
		VALUES ($1, $2)
	`
	_, err := r.db.ExecContext(ctx, query, username, model.UnitMetric)
	if err != nil {
		return fmt.Errorf("failed to create default preferences: %w", err)
	}
	return nil
}

// Get retrieves all preferences for a user
func (r *preferencesRepository) Get(ctx context.Context, username string) (*model.UserPreferences, error) {
	query := `
		SELECT username, saved_locations, unit, notification_preferences
		FROM user_preferences
		WHERE username = $1
	`

	var p model.UserPreferences
	err := r.db.GetContext(ctx, &p, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	if p.SavedLocations == nil {
		p.SavedLocations = model.StringList{}
	}
	if p.NotificationPreferences == nil {
		p.NotificationPreferences = model.JSONMap{}
	}
	return &p, nil
}

// UpdateSavedLocations replaces the user's saved-locations list
func (r *preferencesRepository) UpdateSavedLocations(ctx context.Context, username string, locations []string) error {
	query := `
		UPDATE user_preferences
		SET saved_locations = $1
		WHERE username = $2
	`
	_, err := r.db.ExecContext(ctx, query, model.StringList(locations), username)
	if err != nil {
		return fmt.Errorf("failed to update saved locations: %w", err)
	}
	return nil
}

// UpdateUnit sets the user's unit system
func (r *preferencesRepository) UpdateUnit(ctx context.Context, username, unit string) error {
	query := `
		UPDATE user_preferences
		SET unit = $1
		WHERE username = $2
	`
	_, err := r.db.ExecContext(ctx, query, unit, username)
	if err != nil {
		return fmt.Errorf("failed to update unit: %w", err)
	}
	return nil
}

// UpdateNotificationPreferences replaces the free-form notification settings
// map. No shape validation is performed on the stored value.
func (r *preferencesRepository) UpdateNotificationPreferences(ctx context.Context, username string, prefs model.JSONMap) error {
	query := `
		UPDATE user_preferences
		SET notification_preferences = $1
		WHERE username = $2
	`
	_, err := r.db.ExecContext(ctx, query, prefs, username)
	if err != nil {
		return fmt.Errorf("failed to update notification preferences: %w", err)
	}
	return nil
}
