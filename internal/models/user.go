package models

import (
	"database/sql"
	"time"
)

// User is a row of the users table.
type User struct {
	UserID         string         `db:"user_id"`
	Email          string         `db:"email"`
	Name           string         `db:"name"`
	Age            int            `db:"age"`
	Level          int            `db:"level"`
	Experience     int            `db:"experience"`
	Certificates   []string       `db:"certificates"` // JSONB array
	PasswordHash   sql.NullString `db:"password_hash"`
	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	EmailVerified  bool           `db:"email_verified"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	// Refresh Token Fields
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`        // Store hash of the refresh token
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"` // Expiry of the stored refresh token
}
