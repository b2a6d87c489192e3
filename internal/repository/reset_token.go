package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"airqual/internal/model"
)

type resetTokenRepository struct {
	db *sqlx.DB
}

// NewResetTokenRepository creates a new password reset token repository
func NewResetTokenRepository(db *sqlx.DB) ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

// Create stores a new reset token with its expiry
func (r *resetTokenRepository) Create(ctx context.Context, token *model.PasswordResetToken) error {
	query := `
		INSERT INTO password_resets (username, token, expiry)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, token.Username, token.Token, token.Expiry)
	if err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}
	return nil
}

// FindByToken retrieves a reset token row by its token value. Expiry is not
// checked here; that is the service's decision.
func (r *resetTokenRepository) FindByToken(ctx context.Context, token string) (*model.PasswordResetToken, error) {
	query := `
		SELECT username, token, expiry
		FROM password_resets
		WHERE token = $1
	`

	var t model.PasswordResetToken
	err := r.db.GetContext(ctx, &t, query, token)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrResetTokenInvalid
		}
		return nil, fmt.Errorf("failed to find reset token: %w", err)
	}
	return &t, nil
}

// DeleteAllForUser removes every reset token belonging to a user. Called
// after a successful password change so a consumed token cannot be reused.
func (r *resetTokenRepository) DeleteAllForUser(ctx context.Context, username string) error {
	query := `DELETE FROM password_resets WHERE username = $1`

	_, err := r.db.ExecContext(ctx, query, username)
	if err != nil {
		return fmt.Errorf("failed to delete reset tokens: %w", err)
	}
	return nil
}
