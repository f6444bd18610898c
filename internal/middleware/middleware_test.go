package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svarno/svarno_backend/internal/utils"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthedRouter() *gin.Engine {
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.Default()))
	r.GET("/me", AuthMiddleware(testSecret), func(c *gin.Context) {
		session, ok := GetSessionFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		fromCtx, _ := SessionFromCtx(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"userID": session.UserID, "email": session.Email, "ctxUserID": fromCtx.UserID})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	valid, _, err := utils.GenerateJWT("user-1", "teen@example.com", testSecret, time.Hour, "test", time.Now())
	require.NoError(t, err)
	expired, _, err := utils.GenerateJWT("user-1", "teen@example.com", testSecret, time.Minute, "test", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	foreign, _, err := utils.GenerateJWT("user-1", "", "other-secret", time.Hour, "test", time.Now())
	require.NoError(t, err)
	noSubject, _, err := utils.GenerateJWT("", "", testSecret, time.Hour, "test", time.Now())
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{name: "valid token", header: "Bearer " + valid, wantCode: http.StatusOK, wantBody: `"userID":"user-1"`},
		{name: "missing header", header: "", wantCode: http.StatusUnauthorized, wantBody: "Authorization header required"},
		{name: "wrong scheme", header: "Token " + valid, wantCode: http.StatusUnauthorized, wantBody: "Bearer {token}"},
		{name: "expired", header: "Bearer " + expired, wantCode: http.StatusUnauthorized, wantBody: "Token has expired"},
		{name: "bad signature", header: "Bearer " + foreign, wantCode: http.StatusUnauthorized, wantBody: "Invalid token"},
		{name: "no subject", header: "Bearer " + noSubject, wantCode: http.StatusUnauthorized, wantBody: "Invalid token claims"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			newAuthedRouter().ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestAuthMiddleware_SessionInRequestContext(t *testing.T) {
	token, _, err := utils.GenerateJWT("user-9", "nine@example.com", testSecret, time.Hour, "test", time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	newAuthedRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ctxUserID":"user-9"`)
	assert.Contains(t, w.Body.String(), `"email":"nine@example.com"`)
}

func TestRateLimit(t *testing.T) {
	lim, err := NewIPRateLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/login", RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = NewIPRateLimiter("lots")
	assert.Error(t, err)
}

func TestGetLoggerFromCtx_Fallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, slog.Default(), GetLoggerFromCtx(req.Context()))
}

func TestAnalyticsEventName(t *testing.T) {
	tests := []struct {
		method, path, want string
	}{
		{http.MethodPost, "/api/v1/transactions", "transactions_created"},
		{http.MethodPut, "/api/v1/transactions/:transactionID", "transactions_updated"},
		{http.MethodDelete, "/api/v1/budgets/:budgetID", "budgets_deleted"},
		{http.MethodGet, "/api/v1/budgets/overview", "budgets_overview_viewed"},
		{http.MethodGet, "/api/v1/transactions/category-options", "transactions_category_options_viewed"},
		{http.MethodGet, "", ""},
		{http.MethodOptions, "/api/v1/dashboard", ""},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, AnalyticsEventName(tt.method, tt.path))
		})
	}
}

func TestPosthogMiddleware_DisabledClientPassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(PosthogMiddleware(&utils.PosthogClientWrapper{}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
