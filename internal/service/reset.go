package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"airqual/internal/model"
	"airqual/internal/repository"
)

const (
	resetTokenLength   = 32
	resetTokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// PasswordResetService issues and consumes time-limited password reset tokens.
type PasswordResetService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.ResetTokenRepository
	authSvc   *AuthService
	tokenTTL  time.Duration
}

func NewPasswordResetService(userRepo repository.UserRepository, tokenRepo repository.ResetTokenRepository, authSvc *AuthService, tokenTTL time.Duration) *PasswordResetService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &PasswordResetService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		authSvc:   authSvc,
		tokenTTL:  tokenTTL,
	}
}

// Request creates a reset token for an existing user.
func (s *PasswordResetService) Request(ctx context.Context, username string) (*model.PasswordResetToken, error) {
	if _, err := s.userRepo.GetByUsername(ctx, username); err != nil {
		return nil, err
	}

	raw, err := generateResetToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate reset token: %w", err)
	}

	token := &model.PasswordResetToken{
		Username: username,
		Token:    raw,
		Expiry:   time.Now().Add(s.tokenTTL),
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to store reset token: %w", err)
	}
	return token, nil
}

// Verify resolves a token to its username. Unknown and expired tokens both
// yield ErrResetTokenInvalid; the caller learns no identity either way.
func (s *PasswordResetService) Verify(ctx context.Context, token string) (string, error) {
	stored, err := s.tokenRepo.FindByToken(ctx, token)
	if err != nil {
		return "", model.ErrResetTokenInvalid
	}
	if stored.IsExpired() {
		return "", model.ErrResetTokenInvalid
	}
	return stored.Username, nil
}

// Confirm consumes a valid token and sets a new password. All of the user's
// reset tokens are deleted so a consumed token cannot be used again, and all
// API sessions are revoked.
func (s *PasswordResetService) Confirm(ctx context.Context, token, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("new password is required")
	}

	username, err := s.Verify(ctx, token)
	if err != nil {
		return err
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, username, hashed); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.tokenRepo.DeleteAllForUser(ctx, username); err != nil {
		return fmt.Errorf("failed to remove used reset tokens: %w", err)
	}

	if s.authSvc != nil {
		if err := s.authSvc.RevokeAllUserTokens(ctx, username); err != nil {
			log.Printf("[Reset] failed to revoke sessions for %s: %v", username, err)
		}
	}

	return nil
}

// generateResetToken produces a 32-character random alphanumeric token.
func generateResetToken() (string, error) {
	out := make([]byte, resetTokenLength)
	max := big.NewInt(int64(len(resetTokenAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = resetTokenAlphabet[n.Int64()]
	}
	return string(out), nil
}
