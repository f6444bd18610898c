package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/svarno/svarno_backend/internal/apperrors"
	"github.com/svarno/svarno_backend/internal/core/domain"
	portssvc "github.com/svarno/svarno_backend/internal/core/ports/services"
	"github.com/svarno/svarno_backend/internal/dto"
	"github.com/svarno/svarno_backend/internal/middleware"
	"github.com/svarno/svarno_backend/internal/platform/config"
	"github.com/svarno/svarno_backend/internal/utils"
)

// authHandler handles authentication related requests.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cookies      refreshCookieConfig
}

// refreshCookieConfig controls the HttpOnly cookie carrying the refresh token.
type refreshCookieConfig struct {
	name   string
	path   string
	secure bool
}

func newRefreshCookieConfig(cfg *config.Config) refreshCookieConfig {
	return refreshCookieConfig{
		name:   cfg.RefreshTokenCookieName,
		path:   cfg.RefreshTokenCookiePath,
		secure: cfg.IsProduction,
	}
}

func (rc refreshCookieConfig) set(c *gin.Context, userID, raw string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(rc.name, utils.PackRefreshCookie(userID, raw), maxAge, rc.path, "", rc.secure, true)
}

func (rc refreshCookieConfig) clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(rc.name, "", -1, rc.path, "", rc.secure, true)
}

func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		userService:  us,
		tokenService: ts,
		cookies:      newRefreshCookieConfig(cfg),
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.User, services.TokenService, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/refresh", h.refresh)
		auth.POST("/logout", h.logout)
	}
}

// issueSession generates an access token and a fresh refresh cookie for user.
func (h *authHandler) issueSession(c *gin.Context, user *domain.User) (dto.LoginResponse, error) {
	ctx := c.Request.Context()
	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return dto.LoginResponse{}, err
	}
	refreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		return dto.LoginResponse{}, err
	}
	h.cookies.set(c, user.UserID, refreshToken, refreshExpiry)
	return dto.LoginResponse{Token: accessToken, ExpiresAt: expiresAt, User: dto.ToUserResponse(user)}, nil
}

// register godoc
// @Summary Register new user
// @Description Creates an email/password account and signs the user in.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for register", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to register user")
		return
	}

	resp, err := h.issueSession(c, user)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate token")
		return
	}
	logger.Info("User registered", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, resp)
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns an access token; the refresh token is set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) || errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
			return
		}
		respondWithError(c, logger, err, "Failed to sign in")
		return
	}

	resp, err := h.issueSession(c, user)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate token")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// refresh godoc
// @Summary Refresh access token
// @Description Exchanges the refresh cookie for a new access token and rotates the cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()

	cookie, err := c.Cookie(h.cookies.name)
	if err != nil || cookie == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token missing"})
		return
	}
	userID, raw, ok := utils.UnpackRefreshCookie(cookie)
	if !ok {
		h.cookies.clear(c)
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid refresh token"})
		return
	}

	user, err := h.tokenService.ValidateAndParseRefreshToken(ctx, userID, raw)
	if err != nil {
		h.cookies.clear(c)
		respondWithError(c, logger, err, "Failed to refresh token")
		return
	}

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate token")
		return
	}
	rotated, refreshExpiry, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate token")
		return
	}
	h.cookies.set(c, user.UserID, rotated, refreshExpiry)
	c.JSON(http.StatusOK, dto.RefreshTokenResponse{Token: accessToken, ExpiresAt: expiresAt})
}

// logout godoc
// @Summary Log out
// @Description Revokes the stored refresh token and clears the cookie.
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if cookie, err := c.Cookie(h.cookies.name); err == nil {
		if userID, _, ok := utils.UnpackRefreshCookie(cookie); ok {
			if err := h.userService.ClearRefreshToken(c.Request.Context(), userID); err != nil {
				logger.Warn("Failed to clear refresh token", slog.String("user_id", userID), slog.String("error", err.Error()))
			}
		}
	}
	h.cookies.clear(c)
	c.Status(http.StatusNoContent)
}
