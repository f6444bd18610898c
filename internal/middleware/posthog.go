package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/svarno/svarno_backend/internal/utils"
)

// untracked routes never produce analytics events.
var untracked = map[string]bool{
	"/health":                      true,
	"/api/v1/auth/refresh":         true,
	"/api/v1/transactions/summary": true,
}

// PosthogMiddleware records one event per successful authenticated request.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !posthogClient.IsInitialized() || untracked[c.FullPath()] {
			return
		}
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		eventName := AnalyticsEventName(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"route":       c.FullPath(),
			"status_code": c.Writer.Status(),
		}
		for _, p := range c.Params {
			props[p.Key] = p.Value
		}
		posthogClient.Enqueue(userID, eventName, props)
	}
}

// AnalyticsEventName derives an event name from the route template, e.g.
// POST /api/v1/transactions -> "transactions_created" and
// GET /api/v1/budgets/overview -> "budgets_overview_viewed".
func AnalyticsEventName(method, fullPath string) string {
	var parts []string
	for _, seg := range strings.Split(strings.TrimPrefix(fullPath, "/api/v1"), "/") {
		if seg == "" || strings.HasPrefix(seg, ":") || strings.HasPrefix(seg, "*") {
			continue
		}
		parts = append(parts, strings.ReplaceAll(seg, "-", "_"))
	}
	if len(parts) == 0 {
		return ""
	}

	var verb string
	switch method {
	case http.MethodGet:
		verb = "viewed"
	case http.MethodPost:
		verb = "created"
	case http.MethodPut, http.MethodPatch:
		verb = "updated"
	case http.MethodDelete:
		verb = "deleted"
	default:
		return ""
	}
	return strings.Join(parts, "_") + "_" + verb
}
