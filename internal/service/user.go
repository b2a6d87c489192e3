package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"airqual/internal/model"
	"airqual/internal/repository"
)

// UserService handles business logic for account operations
type UserService struct {
	repo      repository.UserRepository
	prefsRepo repository.PreferencesRepository
}

func NewUserService(repo repository.UserRepository, prefsRepo repository.PreferencesRepository) *UserService {
	return &UserService{
		repo:      repo,
		prefsRepo: prefsRepo,
	}
}

// Register creates a new account together with its default preferences row.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, fmt.Errorf("username is required")
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	// Check if username already exists
	exists, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, model.ErrUsernameExists
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username: req.Username,
		Password: hashed,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.prefsRepo.CreateDefault(ctx, user.Username); err != nil {
		return nil, fmt.Errorf("failed to create default preferences: %w", err)
	}

	return user, nil
}

// Login authenticates a user with username and password and stamps last_login.
func (s *UserService) Login(ctx context.Context, req *model.LoginRequest) (*model.User, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		// Don't reveal whether username exists or not
		return nil, model.ErrInvalidCredentials
	}

	if !VerifyPassword(user.Password, req.Password) {
		return nil, model.ErrInvalidCredentials
	}

	if err := s.repo.UpdateLastLogin(ctx, user.Username); err != nil {
		// Non-fatal: the login itself succeeded.
		log.Printf("[User] failed to update last_login for %s: %v", user.Username, err)
	}

	return user, nil
}

// GetByUsername retrieves a user by username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.repo.GetByUsername(ctx, username)
}
