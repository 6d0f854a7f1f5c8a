package commands

import (
	"errors"

	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/pkg/errs"
	"resumeflow/internal/pkg/guard"
)

var (
	ErrUploadResumeCommandIsNotConstructed = errors.New(
		"UploadResumeCommand must be created via NewUploadResumeCommand constructor",
	)
)

// UploadResumeCommand represents a request to store a new resume: the binary
// content plus the metadata row describing it.
//
// Example:
//
//	resumeID := kernel.NewUUID()
//	cmd, err := NewUploadResumeCommand(resumeID, userID, "cv.pdf", content)
//	if err != nil {
//	    return fmt.Errorf("invalid resume data: %w", err)
//	}
//
//	handler := NewUploadResumeCommandHandler(uowFactory, blobs)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to upload resume: %w", err)
//	}
type UploadResumeCommand struct { //nolint:recvcheck //using for validation
	resumeID    kernel.UUID
	ownerUserID kernel.UUID
	fileName    string
	content     []byte

	guard guard.ConstructorGuard
}

// NewUploadResumeCommand creates a command to upload a resume.
// Validates that both IDs are valid, the file name is not empty, and the
// content is not empty.
func NewUploadResumeCommand(
	resumeID kernel.UUID,
	ownerUserID kernel.UUID,
	fileName string,
	content []byte,
) (UploadResumeCommand, error) {
	cmd := UploadResumeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setResumeID(resumeID),
		cmd.setOwnerUserID(ownerUserID),
		cmd.setFileName(fileName),
		cmd.setContent(content),
	); err != nil {
		return UploadResumeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUploadResumeCommandIsNotConstructed if validation fails.
func (c UploadResumeCommand) Validate() error {
	return c.guard.Validate(ErrUploadResumeCommandIsNotConstructed)
}

// ResumeID returns the identifier assigned to the new resume.
func (c UploadResumeCommand) ResumeID() kernel.UUID {
	return c.resumeID
}

// OwnerUserID returns the uploading user's identifier.
func (c UploadResumeCommand) OwnerUserID() kernel.UUID {
	return c.ownerUserID
}

// FileName returns the original upload file name.
func (c UploadResumeCommand) FileName() string {
	return c.fileName
}

// Content returns the resume binary.
func (c UploadResumeCommand) Content() []byte {
	return c.content
}

func (c *UploadResumeCommand) setResumeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.resumeID = id
	return nil
}

func (c *UploadResumeCommand) setOwnerUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.ownerUserID = id
	return nil
}

func (c *UploadResumeCommand) setFileName(fileName string) error {
	if fileName == "" {
		return errs.NewValueIsRequiredError("fileName")
	}

	c.fileName = fileName
	return nil
}

func (c *UploadResumeCommand) setContent(content []byte) error {
	if len(content) == 0 {
		return errs.NewValueIsRequiredError("content")
	}

	c.content = content
	return nil
}
