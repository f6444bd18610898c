package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/svarno/svarno_backend/internal/apperrors"
	"github.com/svarno/svarno_backend/internal/core/domain"
	portssvc "github.com/svarno/svarno_backend/internal/core/ports/services"
	"github.com/svarno/svarno_backend/internal/core/services"
	"github.com/svarno/svarno_backend/internal/dto"
	"github.com/svarno/svarno_backend/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	now      time.Time
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockUserRepository)
	s.now = time.Date(2025, time.May, 1, 8, 0, 0, 0, time.UTC)
	s.service = services.NewUserService(s.mockRepo, services.WithUserClock(func() time.Time { return s.now }))
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	age := 15
	req := dto.RegisterRequest{Email: " Teen@Example.com ", Password: "supersecret", Name: "Sam", Age: &age}

	s.mockRepo.On("FindUserByEmail", ctx, "teen@example.com").Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "teen@example.com" && u.Name == "Sam" && u.Age == 15 &&
			u.Level == domain.DefaultProfileLevel && u.AuthProvider == domain.ProviderLocal &&
			utils.CheckPasswordHash("supersecret", u.PasswordHash)
	})).Return(nil).Once()

	user, err := s.service.CreateUser(ctx, req)

	s.Require().NoError(err)
	s.NotEmpty(user.UserID)
	s.Equal(s.now, user.CreatedAt)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	s.mockRepo.On("FindUserByEmail", ctx, "teen@example.com").Return(&domain.User{UserID: "existing"}, nil).Once()

	user, err := s.service.CreateUser(ctx, dto.RegisterRequest{Email: "teen@example.com", Password: "supersecret"})

	s.Nil(user)
	s.True(errors.Is(err, apperrors.ErrDuplicate))
	s.mockRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestAuthenticateUser() {
	ctx := context.Background()
	hash, err := utils.HashPassword("supersecret")
	s.Require().NoError(err)
	stored := &domain.User{UserID: "user-1", Email: "teen@example.com", PasswordHash: hash}
	s.mockRepo.On("FindUserByEmail", ctx, "teen@example.com").Return(stored, nil)
	s.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound)

	user, err := s.service.AuthenticateUser(ctx, "teen@example.com", "supersecret")
	s.Require().NoError(err)
	s.Equal("user-1", user.UserID)

	_, err = s.service.AuthenticateUser(ctx, "teen@example.com", "wrong-password")
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = s.service.AuthenticateUser(ctx, "nobody@example.com", "supersecret")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *UserServiceTestSuite) TestGetOrCreateProfile_CreatesDefaults() {
	ctx := context.Background()
	session, err := domain.NewSession("user-9", "new@example.com", "", time.Time{})
	s.Require().NoError(err)

	s.mockRepo.On("FindUserByID", ctx, "user-9").Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == "user-9" && u.Name == "User" && u.Age == 16 && u.Level == 1 && u.Experience == 0 && len(u.Certificates) == 0
	})).Return(nil).Once()

	profile, err := s.service.GetOrCreateProfile(ctx, session)

	s.Require().NoError(err)
	s.Equal("new@example.com", profile.Email)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestGetOrCreateProfile_ReturnsExisting() {
	ctx := context.Background()
	session, err := domain.NewSession("user-1", "", "", time.Time{})
	s.Require().NoError(err)
	s.mockRepo.On("FindUserByID", ctx, "user-1").Return(&domain.User{UserID: "user-1", Name: "Sam"}, nil).Once()

	profile, err := s.service.GetOrCreateProfile(ctx, session)

	s.Require().NoError(err)
	s.Equal("Sam", profile.Name)
	s.mockRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestCreateOAuthUser_ExistingProviderIdentity() {
	ctx := context.Background()
	existing := &domain.User{UserID: "user-1", AuthProvider: domain.ProviderGoogle}
	s.mockRepo.On("FindUserByProviderDetails", ctx, "GOOGLE", "google-sub").Return(existing, nil).Once()

	user, err := s.service.CreateOAuthUser(ctx, "Sam", "teen@example.com", "GOOGLE", "google-sub", true)

	s.Require().NoError(err)
	s.Equal("user-1", user.UserID)
}

func (s *UserServiceTestSuite) TestCreateOAuthUser_NewUser() {
	ctx := context.Background()
	s.mockRepo.On("FindUserByProviderDetails", ctx, "GOOGLE", "google-sub").Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("FindUserByEmail", ctx, "teen@example.com").Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.AuthProvider == domain.ProviderGoogle && u.ProviderUserID != nil && *u.ProviderUserID == "google-sub" && u.EmailVerified
	})).Return(nil).Once()

	user, err := s.service.CreateOAuthUser(ctx, "Sam", "teen@example.com", "GOOGLE", "google-sub", true)

	s.Require().NoError(err)
	s.Equal("Sam", user.Name)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestCreateOAuthUser_UnverifiedEmailCollision() {
	ctx := context.Background()
	s.mockRepo.On("FindUserByProviderDetails", ctx, "GOOGLE", "google-sub").Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("FindUserByEmail", ctx, "teen@example.com").Return(&domain.User{UserID: "user-1"}, nil).Once()

	_, err := s.service.CreateOAuthUser(ctx, "Sam", "teen@example.com", "GOOGLE", "google-sub", false)

	s.ErrorIs(err, apperrors.ErrDuplicate)
	var appErr *apperrors.AppError
	s.Require().ErrorAs(err, &appErr)
	s.Equal(409, appErr.Code)
}
