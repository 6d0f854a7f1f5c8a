package commands

import (
	"context"
	"fmt"
	"time"

	"resumeflow/internal/core/domain/model/dispatch"
	"resumeflow/internal/core/domain/model/resume"
	"resumeflow/internal/core/ports"
)

// UploadResumeCommandHandler handles the business logic for resume uploads.
// The blob is stored first, then the metadata row is written, so a metadata
// row never points at a missing binary. If the row write fails the blob is
// removed on a best-effort basis.
//
// Example:
//
//	handler := NewUploadResumeCommandHandler(uowFactory, blobs)
//	cmd, _ := NewUploadResumeCommand(kernel.NewUUID(), userID, "cv.pdf", content)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("resume upload failed: %w", err)
//	}
type UploadResumeCommandHandler struct {
	uowFactory ResumeUoWFactory
	blobs      ports.BlobStore
}

// NewUploadResumeCommandHandler creates a handler for resume upload operations.
func NewUploadResumeCommandHandler(
	uowFactory ResumeUoWFactory,
	blobs ports.BlobStore,
) UploadResumeCommandHandler {
	return UploadResumeCommandHandler{
		uowFactory: uowFactory,
		blobs:      blobs,
	}
}

// Handle processes the resume upload command.
func (h *UploadResumeCommandHandler) Handle(ctx context.Context, cmd UploadResumeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	storagePath := fmt.Sprintf(
		"resumes/%s/%s/%s",
		cmd.OwnerUserID().String(),
		cmd.ResumeID().String(),
		cmd.FileName(),
	)

	r, err := resume.NewResume(
		cmd.ResumeID(),
		cmd.OwnerUserID(),
		cmd.FileName(),
		storagePath,
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = h.blobs.Upload(ctx, storagePath, cmd.Content(), dispatch.ResumeContentType); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ResumeRepository().Add(ctx, r); err != nil {
		_ = h.blobs.Remove(ctx, storagePath)
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		_ = h.blobs.Remove(ctx, storagePath)
		return err
	}

	return nil
}
