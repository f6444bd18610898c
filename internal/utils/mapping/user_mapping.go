package mapping

import (
	"database/sql"

	"github.com/svarno/svarno_backend/internal/core/domain"
	"github.com/svarno/svarno_backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	certs := d.Certificates
	if certs == nil {
		certs = []string{}
	}
	m := models.User{
		UserID:         d.UserID,
		Email:          d.Email,
		Name:           d.Name,
		Age:            d.Age,
		Level:          d.Level,
		Experience:     d.Experience,
		Certificates:   certs,
		PasswordHash:   nullString(d.PasswordHash),
		AuthProvider:   string(d.AuthProvider),
		ProviderUserID: nullStringPtr(d.ProviderUserID),
		EmailVerified:  d.EmailVerified,
		AuditFields:    ToModelAuditFields(d.AuditFields),
		DeletedAt:      d.DeletedAt,
	}
	if d.RefreshTokenHash != "" {
		m.RefreshTokenHash = nullString(d.RefreshTokenHash)
	}
	if d.RefreshTokenExpiryTime != nil {
		m.RefreshTokenExpiryTime = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	return m
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	certs := m.Certificates
	if certs == nil {
		certs = []string{}
	}
	d := domain.User{
		UserID:         m.UserID,
		Email:          m.Email,
		Name:           m.Name,
		Age:            m.Age,
		Level:          m.Level,
		Experience:     m.Experience,
		Certificates:   certs,
		PasswordHash:   m.PasswordHash.String,
		AuthProvider:   domain.AuthProvider(m.AuthProvider),
		ProviderUserID: stringPtr(m.ProviderUserID),
		EmailVerified:  m.EmailVerified,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
		DeletedAt:      m.DeletedAt,
	}
	if m.RefreshTokenHash.Valid {
		d.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		d.RefreshTokenExpiryTime = &t
	}
	return d
}
