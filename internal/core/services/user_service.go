package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/svarno/svarno_backend/internal/apperrors"
	"github.com/svarno/svarno_backend/internal/core/domain"
	portsrepo "github.com/svarno/svarno_backend/internal/core/ports/repositories"
	portssvc "github.com/svarno/svarno_backend/internal/core/ports/services"
	"github.com/svarno/svarno_backend/internal/dto"
	"github.com/svarno/svarno_backend/internal/utils"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	now      func() time.Time
}

// UserServiceOption is a functional option for configuring the user service
type UserServiceOption func(*userService)

// WithUserClock overrides time.Now.
func WithUserClock(now func() time.Time) UserServiceOption {
	return func(s *userService) {
		s.now = now
	}
}

// NewUserService creates a new user service with the provided options
func NewUserService(userRepo portsrepo.UserRepositoryFacade, options ...UserServiceOption) portssvc.UserSvcFacade {
	svc := &userService{userRepo: userRepo, now: time.Now}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure userService implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	email := normalizeEmail(req.Email)

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing user")
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.NewDefaultProfile(uuid.NewString(), email, s.now())
	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if req.Age != nil {
		user.Age = *req.Age
	}
	user.PasswordHash = hash

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) CreateOAuthUser(ctx context.Context, name, email, authProvider, providerUserID string, emailVerified bool) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderDetails(ctx, authProvider, providerUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user by provider",
			slog.String("auth_provider", authProvider))
		return nil, fmt.Errorf("failed to look up oauth user: %w", err)
	}

	email = normalizeEmail(email)
	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user by email")
		return nil, fmt.Errorf("failed to look up oauth user: %w", err)
	}
	if existing != nil {
		if !emailVerified {
			return nil, apperrors.NewAppError(http.StatusConflict, "An account with this email already exists.", apperrors.ErrDuplicate)
		}
		// Link the verified provider identity to the existing account.
		existing.AuthProvider = domain.AuthProvider(authProvider)
		existing.ProviderUserID = &providerUserID
		existing.EmailVerified = true
		existing.LastUpdatedAt = s.now()
		existing.LastUpdatedBy = existing.UserID
		if err := s.userRepo.UpdateUser(ctx, *existing); err != nil {
			s.LogError(ctx, err, "Failed to link oauth identity", slog.String("user_id", existing.UserID))
			return nil, fmt.Errorf("failed to link oauth user: %w", err)
		}
		return existing, nil
	}

	newUser := domain.NewDefaultProfile(uuid.NewString(), email, s.now())
	if name = strings.TrimSpace(name); name != "" {
		newUser.Name = name
	}
	newUser.AuthProvider = domain.AuthProvider(authProvider)
	newUser.ProviderUserID = &providerUserID
	newUser.EmailVerified = emailVerified

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to save oauth user")
		return nil, fmt.Errorf("failed to create oauth user: %w", err)
	}
	s.LogInfo(ctx, "OAuth user created", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetOrCreateProfile(ctx context.Context, session domain.Session) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, session.UserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load profile", slog.String("user_id", session.UserID))
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile := domain.NewDefaultProfile(session.UserID, normalizeEmail(session.Email), s.now())
	if err := s.userRepo.SaveUser(ctx, profile); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Created concurrently by another request.
			return s.userRepo.FindUserByID(ctx, session.UserID)
		}
		s.LogError(ctx, err, "Failed to create default profile", slog.String("user_id", session.UserID))
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	s.LogInfo(ctx, "Default profile created", slog.String("user_id", session.UserID))
	return &profile, nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime); err != nil {
		s.LogError(ctx, err, "Failed to store refresh token", slog.String("user_id", userID))
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	return nil
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to clear refresh token", slog.String("user_id", userID))
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}
