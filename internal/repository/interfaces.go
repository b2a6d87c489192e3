package repository

import (
	"context"
	"time"

	"airqual/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	UpdatePassword(ctx context.Context, username, passwordHash string) error
	UpdateLastLogin(ctx context.Context, username string) error
}

type PreferencesRepository interface {
	CreateDefault(ctx context.Context, username string) error
	Get(ctx context.Context, username string) (*model.UserPreferences, error)
	UpdateSavedLocations(ctx context.Context, username string, locations []string) error
	UpdateUnit(ctx context.Context, username, unit string) error
	UpdateNotificationPreferences(ctx context.Context, username string, prefs model.JSONMap) error
}

type ReadingRepository interface {
	// Append inserts a new reading row. Readings are never updated or
	// deleted, and no uniqueness constraint exists.
	Append(ctx context.Context, reading *model.AQIReading) error
	// ListByLocation returns readings for a user/location within the date
	// range, ordered by time ascending.
	ListByLocation(ctx context.Context, username, location string, start, end time.Time) ([]model.AQIReading, error)
	// StatsByLocation aggregates usage statistics for the given locations.
	StatsByLocation(ctx context.Context, username string, locations []string) ([]model.LocationStats, error)
}

type ResetTokenRepository interface {
	Create(ctx context.Context, token *model.PasswordResetToken) error
	FindByToken(ctx context.Context, token string) (*model.PasswordResetToken, error)
	DeleteAllForUser(ctx context.Context, username string) error
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *model.RefreshToken) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error)
	Revoke(ctx context.Context, id string, replacedBy *string) error
	RevokeAllForUser(ctx context.Context, username string) error
}
