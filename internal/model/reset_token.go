package model

import (
	"errors"
	"time"
)

// PasswordResetToken is a time-limited token allowing a password change.
// Primary key is (username, token). Rows are deleted on successful password
// change or left to expire; there is no periodic cleanup of expired rows.
type PasswordResetToken struct {
	Username string    `db:"username" json:"username"`
	Token    string    `db:"token" json:"token"`
	Expiry   time.Time `db:"expiry" json:"expiry"`
}

// IsExpired returns true if the token's expiry timestamp has passed
func (t *PasswordResetToken) IsExpired() bool {
	return time.Now().After(t.Expiry)
}

// ErrResetTokenInvalid is returned for unknown or expired reset tokens. The two
// cases are deliberately not distinguished to the caller.
var ErrResetTokenInvalid = errors.New("invalid or expired reset token")

// ResetRequest is the body for POST /auth/password-reset/request
type ResetRequest struct {
	Username string `json:"username"`
}

// ResetConfirmRequest is the body for POST /auth/password-reset/confirm
type ResetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}
