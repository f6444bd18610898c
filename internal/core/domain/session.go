package domain

import (
	"errors"
	"time"
)

var ErrNoSessionUser = errors.New("session has no user")

// Session identifies the authenticated caller. It is built once per request
// and passed explicitly to every component that scopes data by user.
type Session struct {
	UserID    string
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

// NewSession returns a session for userID; userID must be non-empty.
func NewSession(userID, email, tokenID string, expiresAt time.Time) (Session, error) {
	if userID == "" {
		return Session{}, ErrNoSessionUser
	}
	return Session{UserID: userID, Email: email, TokenID: tokenID, ExpiresAt: expiresAt}, nil
}

// Owns reports whether a record belonging to userID is visible to the session.
func (s Session) Owns(userID string) bool {
	return s.UserID != "" && s.UserID == userID
}
