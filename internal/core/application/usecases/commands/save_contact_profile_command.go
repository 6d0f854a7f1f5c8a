package commands

import (
	"errors"

	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/pkg/guard"
)

var (
	ErrSaveContactProfileCommandIsNotConstructed = errors.New(
		"SaveContactProfileCommand must be created via NewSaveContactProfileCommand constructor",
	)
)

// SaveContactProfileCommand represents a request to create or replace a
// user's contact profile. An empty WhatsApp number is a valid value and
// clears the stored number.
type SaveContactProfileCommand struct { //nolint:recvcheck //using for validation
	userID         kernel.UUID
	whatsappNumber string

	guard guard.ConstructorGuard
}

// NewSaveContactProfileCommand creates a command to upsert a contact profile.
func NewSaveContactProfileCommand(userID kernel.UUID, whatsappNumber string) (SaveContactProfileCommand, error) {
	if err := userID.Validate(); err != nil {
		return SaveContactProfileCommand{}, err
	}

	return SaveContactProfileCommand{
		userID:         userID,
		whatsappNumber: whatsappNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSaveContactProfileCommandIsNotConstructed if validation fails.
func (c SaveContactProfileCommand) Validate() error {
	return c.guard.Validate(ErrSaveContactProfileCommandIsNotConstructed)
}

// UserID returns the owning user's identifier.
func (c SaveContactProfileCommand) UserID() kernel.UUID {
	return c.userID
}

// WhatsAppNumber returns the number to store; may be empty.
func (c SaveContactProfileCommand) WhatsAppNumber() string {
	return c.whatsappNumber
}
