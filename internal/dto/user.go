package dto

import (
	"time"

	"github.com/svarno/svarno_backend/internal/core/domain"
)

// RegisterRequest defines the data needed to sign up with email and password.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name"`                                // Optional, defaults to "User"
	Age      *int   `json:"age" binding:"omitempty,min=13,max=18"` // Optional, defaults to 16
}

// LoginRequest defines the credentials for password sign-in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse defines the profile data returned to the client.
type UserResponse struct {
	UserID       string              `json:"userID"`
	Email        string              `json:"email"`
	Name         string              `json:"name"`
	Age          int                 `json:"age"`
	Level        int                 `json:"level"`
	Experience   int                 `json:"experience"`
	Certificates []string            `json:"certificates"`
	AuthProvider domain.AuthProvider `json:"authProvider"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	certs := user.Certificates
	if certs == nil {
		certs = []string{}
	}
	return UserResponse{
		UserID:       user.UserID,
		Email:        user.Email,
		Name:         user.Name,
		Age:          user.Age,
		Level:        user.Level,
		Experience:   user.Experience,
		Certificates: certs,
		AuthProvider: user.AuthProvider,
		CreatedAt:    user.CreatedAt,
	}
}
