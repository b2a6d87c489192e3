package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"airqual/internal/model"
)

// userRepository implements UserRepository using sqlx
type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO users (username, password, created_at)
		VALUES ($1, $2, NOW())
		RETURNING created_at
	`

	err := r.db.QueryRowxContext(ctx, query, u.Username, u.Password).Scan(&u.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetByUsername retrieves a user by their username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `
		SELECT username, password, created_at, last_login
		FROM users
		WHERE username = $1
	`

	var u model.User
	err := r.db.GetContext(ctx, &u, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &u, nil
}

// ExistsByUsername checks if a username is already taken
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, username)
	if err != nil {
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}
	return exists, nil
}

// UpdatePassword replaces a user's stored password hash
func (r *userRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	query := `UPDATE users SET password = $1 WHERE username = $2`

	result, err := r.db.ExecContext(ctx, query, passwordHash, username)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

// UpdateLastLogin stamps the user's last successful login
func (r *userRepository) UpdateLastLogin(ctx context.Context, username string) error {
	query := `UPDATE users SET last_login = NOW() WHERE username = $1`

	_, err := r.db.ExecContext(ctx, query, username)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}
