package commands

import (
	"errors"

	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/pkg/guard"
)

var (
	ErrSendResumeCommandIsNotConstructed = errors.New(
		"SendResumeCommand must be created via NewSendResumeCommand constructor",
	)
)

// SendResumeCommand represents an on-demand request to deliver a user's
// selected resume immediately, outside the daily schedule. The delivery uses
// the same assets as the scheduled path but carries the full feed list.
type SendResumeCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSendResumeCommand creates a command to send a user's resume now.
func NewSendResumeCommand(userID kernel.UUID) (SendResumeCommand, error) {
	if err := userID.Validate(); err != nil {
		return SendResumeCommand{}, err
	}

	return SendResumeCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSendResumeCommandIsNotConstructed if validation fails.
func (c SendResumeCommand) Validate() error {
	return c.guard.Validate(ErrSendResumeCommandIsNotConstructed)
}

// UserID returns the requesting user's identifier.
func (c SendResumeCommand) UserID() kernel.UUID {
	return c.userID
}
