// Package contact contains the per-user contact profile aggregate.
package contact

import (
	"errors"

	"resumeflow/internal/core/domain/model/kernel"
)

var (
	// ErrProfileIsNotConstructed is returned when a Profile instance was not
	// created through NewProfile.
	ErrProfileIsNotConstructed = errors.New("ContactProfile must be created via NewProfile")
)

// Profile holds a user's contact details for outbound delivery. At most one
// profile exists per user and it is saved wholesale (upsert). The WhatsApp
// number may be empty: the intake endpoint tolerates a missing number, so an
// absent profile is never a reason to skip a delivery.
type Profile struct {
	// userID identifies the owning user and is the aggregate key
	userID kernel.UUID

	// whatsappNumber is the user's WhatsApp number; may be empty
	whatsappNumber string

	// isConstructed ensures the profile was created via the constructor
	isConstructed bool
}

// NewProfile creates a contact profile. The number is accepted as-is,
// including the empty string.
func NewProfile(userID kernel.UUID, whatsappNumber string) (*Profile, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	return &Profile{
		userID:         userID,
		whatsappNumber: whatsappNumber,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Profile was created through the constructor.
func (p *Profile) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProfileIsNotConstructed
	}
	return nil
}

// UserID returns the owning user's identifier.
func (p *Profile) UserID() kernel.UUID {
	return p.userID
}

// WhatsAppNumber returns the stored number; may be empty.
func (p *Profile) WhatsAppNumber() string {
	return p.whatsappNumber
}
