package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"airqual/internal/model"
)

func TestPreferencesUpdate_InvalidUnit(t *testing.T) {
	repo := &mockPreferencesRepo{
		updateUnitFn: func(ctx context.Context, username, unit string) error {
			t.Errorf("repo should not be called with invalid unit, got %q", unit)
			return nil
		},
	}

	svc := NewPreferencesService(repo)
	bad := "kelvin"
	_, err := svc.Update(context.Background(), "alice", &model.UpdatePreferencesRequest{Unit: &bad})
	if !errors.Is(err, model.ErrInvalidUnit) {
		t.Fatalf("expected ErrInvalidUnit, got %v", err)
	}
}

func TestPreferencesUpdate_NormalizesUnit(t *testing.T) {
	var storedUnit string
	repo := &mockPreferencesRepo{
		updateUnitFn: func(ctx context.Context, username, unit string) error {
			storedUnit = unit
			return nil
		},
		getFn: func(ctx context.Context, username string) (*model.UserPreferences, error) {
			return &model.UserPreferences{Username: username, Unit: storedUnit}, nil
		},
	}

	svc := NewPreferencesService(repo)
	mixed := " Imperial "
	prefs, err := svc.Update(context.Background(), "alice", &model.UpdatePreferencesRequest{Unit: &mixed})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if prefs.Unit != model.UnitImperial {
		t.Errorf("expected imperial, got %q", prefs.Unit)
	}
}

func TestPreferencesUpdate_NilFieldsUntouched(t *testing.T) {
	repo := &mockPreferencesRepo{
		updateUnitFn: func(ctx context.Context, username, unit string) error {
			t.Error("unit should not be updated when the field is nil")
			return nil
		},
		updateNotifsFn: func(ctx context.Context, username string, prefs model.JSONMap) error {
			t.Error("notification preferences should not be updated when the field is nil")
			return nil
		},
		getFn: func(ctx context.Context, username string) (*model.UserPreferences, error) {
			return &model.UserPreferences{Username: username, Unit: model.UnitMetric}, nil
		},
	}

	svc := NewPreferencesService(repo)
	if _, err := svc.Update(context.Background(), "alice", &model.UpdatePreferencesRequest{}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
}

func TestReplaceLocations_DropsBlanks(t *testing.T) {
	var stored []string
	repo := &mockPreferencesRepo{
		updateLocationsFn: func(ctx context.Context, username string, locations []string) error {
			stored = locations
			return nil
		},
		getFn: func(ctx context.Context, username string) (*model.UserPreferences, error) {
			return &model.UserPreferences{Username: username, SavedLocations: model.StringList(stored)}, nil
		},
	}

	svc := NewPreferencesService(repo)
	prefs, err := svc.ReplaceLocations(context.Background(), "alice", []string{"Paris", "  ", "New Delhi ", ""})
	if err != nil {
		t.Fatalf("ReplaceLocations returned error: %v", err)
	}

	want := []string{"Paris", "New Delhi"}
	if !reflect.DeepEqual(stored, want) {
		t.Errorf("expected stored locations %v, got %v", want, stored)
	}
	if !reflect.DeepEqual([]string(prefs.SavedLocations), want) {
		t.Errorf("expected returned locations %v, got %v", want, prefs.SavedLocations)
	}
}
