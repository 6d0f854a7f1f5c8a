package commands

import (
	"errors"

	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/pkg/guard"
)

var (
	ErrDeleteResumeCommandIsNotConstructed = errors.New(
		"DeleteResumeCommand must be created via NewDeleteResumeCommand constructor",
	)
)

// DeleteResumeCommand represents a request to remove a resume: both the
// metadata row and the stored binary. Deletion is owner-scoped; a resume
// belonging to another user is treated as not found.
type DeleteResumeCommand struct { //nolint:recvcheck //using for validation
	resumeID    kernel.UUID
	ownerUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteResumeCommand creates a command to delete a resume.
// Validates that both identifiers are valid UUIDs.
func NewDeleteResumeCommand(resumeID, ownerUserID kernel.UUID) (DeleteResumeCommand, error) {
	cmd := DeleteResumeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setResumeID(resumeID),
		cmd.setOwnerUserID(ownerUserID),
	); err != nil {
		return DeleteResumeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteResumeCommandIsNotConstructed if validation fails.
func (c DeleteResumeCommand) Validate() error {
	return c.guard.Validate(ErrDeleteResumeCommandIsNotConstructed)
}

// ResumeID returns the resume to delete.
func (c DeleteResumeCommand) ResumeID() kernel.UUID {
	return c.resumeID
}

// OwnerUserID returns the requesting user's identifier.
func (c DeleteResumeCommand) OwnerUserID() kernel.UUID {
	return c.ownerUserID
}

func (c *DeleteResumeCommand) setResumeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.resumeID = id
	return nil
}

func (c *DeleteResumeCommand) setOwnerUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.ownerUserID = id
	return nil
}
