package model

import (
	"errors"
	"time"
)

// User represents a registered account. The username is the primary key;
// accounts are never hard-deleted.
type User struct {
	Username  string     `db:"username" json:"username"`
	Password  string     `db:"password" json:"-"` // salted PBKDF2 hash, never exposed
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	LastLogin *time.Time `db:"last_login" json:"last_login,omitempty"`
}

// MemberSince formats the account creation date the way the profile page shows it.
func (u *User) MemberSince() string {
	return u.CreatedAt.Format("January 2, 2006")
}

// RegisterRequest represents the data needed to register a new account
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents the data needed to log in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileResponse is returned by GET /me
type ProfileResponse struct {
	Username    string     `json:"username"`
	MemberSince string     `json:"member_since"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameExists is returned when attempting to create a user with a taken username
	ErrUsernameExists = errors.New("username already exists")

	// ErrInvalidCredentials is returned when login credentials are incorrect
	ErrInvalidCredentials = errors.New("invalid credentials")
)
