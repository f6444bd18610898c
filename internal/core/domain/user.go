package domain

import "time"

// AuthProvider names the identity source a user signed up with.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// Defaults applied when a profile is created on first sign-in.
const (
	DefaultProfileName       = "User"
	DefaultProfileAge        = 16
	DefaultProfileLevel      = 1
	DefaultProfileExperience = 0
)

// User is the profile row keyed by the authenticated identity.
type User struct {
	UserID         string       `json:"userID"` // Primary Key (UUID)
	Email          string       `json:"email"`
	Name           string       `json:"name"`
	Age            int          `json:"age"`
	Level          int          `json:"level"`
	Experience     int          `json:"experience"`
	Certificates   []string     `json:"certificates"`
	PasswordHash   string       `json:"-"`
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID *string      `json:"-"`
	EmailVerified  bool         `json:"emailVerified"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}

// NewDefaultProfile builds the profile created lazily for an identity that has none yet.
func NewDefaultProfile(userID, email string, now time.Time) User {
	return User{
		UserID:       userID,
		Email:        email,
		Name:         DefaultProfileName,
		Age:          DefaultProfileAge,
		Level:        DefaultProfileLevel,
		Experience:   DefaultProfileExperience,
		Certificates: []string{},
		AuthProvider: ProviderLocal,
		AuditFields:  NewAuditFields(userID, now),
	}
}
