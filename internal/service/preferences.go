package service

import (
	"context"
	"strings"

	"airqual/internal/model"
	"airqual/internal/repository"
)

// PreferencesService manages per-user settings and the saved-locations list.
type PreferencesService struct {
	repo repository.PreferencesRepository
}

func NewPreferencesService(repo repository.PreferencesRepository) *PreferencesService {
	return &PreferencesService{repo: repo}
}

func (s *PreferencesService) Get(ctx context.Context, username string) (*model.UserPreferences, error) {
	return s.repo.Get(ctx, username)
}

// Update applies the non-nil fields of the request. Unit values are checked
// against the two supported systems; notification preferences are stored as-is.
func (s *PreferencesService) Update(ctx context.Context, username string, req *model.UpdatePreferencesRequest) (*model.UserPreferences, error) {
	if req.Unit != nil {
		unit := strings.ToLower(strings.TrimSpace(*req.Unit))
		if unit != model.UnitMetric && unit != model.UnitImperial {
			return nil, model.ErrInvalidUnit
		}
		if err := s.repo.UpdateUnit(ctx, username, unit); err != nil {
			return nil, err
		}
	}

	if req.NotificationPreferences != nil {
		if err := s.repo.UpdateNotificationPreferences(ctx, username, req.NotificationPreferences); err != nil {
			return nil, err
		}
	}

	return s.repo.Get(ctx, username)
}

// ReplaceLocations overwrites the saved-locations list. Entries are kept in
// the order given; blank entries are dropped.
func (s *PreferencesService) ReplaceLocations(ctx context.Context, username string, locations []string) (*model.UserPreferences, error) {
	cleaned := make([]string, 0, len(locations))
	for _, loc := range locations {
		loc = strings.TrimSpace(loc)
		if loc != "" {
			cleaned = append(cleaned, loc)
		}
	}

	if err := s.repo.UpdateSavedLocations(ctx, username, cleaned); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, username)
}
