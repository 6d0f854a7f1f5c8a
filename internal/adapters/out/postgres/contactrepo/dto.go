// Package contactrepo provides data transfer objects and mapping functions
// for contact profile persistence.
package contactrepo

import (
	"resumeflow/internal/core/domain/model/contact"
	"resumeflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ProfileDTO represents the database structure for persisting contact
// profiles. One row per user.
type ProfileDTO struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	WhatsAppNumber string    `gorm:"type:varchar(32);not null;default:''"`
}

// TableName specifies the database table name for contact profiles.
// Overrides GORM's default naming convention to use "contact_profiles".
func (ProfileDTO) TableName() string {
	return "contact_profiles"
}

// fromDomain converts a profile aggregate to its database representation.
func fromDomain(p *contact.Profile) ProfileDTO {
	return ProfileDTO{
		UserID:         p.UserID().Bytes(),
		WhatsAppNumber: p.WhatsAppNumber(),
	}
}

// toDomain converts a database DTO to a profile aggregate.
func toDomain(dto ProfileDTO) (*contact.Profile, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return contact.NewProfile(userID, dto.WhatsAppNumber)
}
