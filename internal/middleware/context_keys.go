package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/svarno/svarno_backend/internal/core/domain"
)

// sessionKey is the key used to store the authenticated session.
const sessionKey = contextKey("session")

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// SessionFromCtx retrieves the authenticated session from a standard context.
func SessionFromCtx(ctx context.Context) (domain.Session, bool) {
	session, ok := ctx.Value(sessionKey).(domain.Session)
	if !ok || session.UserID == "" {
		return domain.Session{}, false
	}
	return session, true
}

// GetSessionFromContext retrieves the authenticated session from the Gin context.
// It returns the session and a boolean indicating if it was found.
func GetSessionFromContext(c *gin.Context) (domain.Session, bool) {
	if v, exists := c.Get(string(sessionKey)); exists {
		if session, ok := v.(domain.Session); ok && session.UserID != "" {
			return session, true
		}
	}
	return SessionFromCtx(c.Request.Context())
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	session, ok := GetSessionFromContext(c)
	return session.UserID, ok
}
