package commands

import (
	"context"
	"errors"

	"resumeflow/internal/core/ports"
	"resumeflow/internal/pkg/errs"
)

// DeleteResumeCommandHandler handles the business logic for resume removal.
// The metadata row is deleted inside a transaction and the blob is removed
// before the commit, so a store failure rolls the row back. A blob that is
// already gone is tolerated so that retrying a half-finished deletion
// converges instead of failing forever.
type DeleteResumeCommandHandler struct {
	uowFactory ResumeUoWFactory
	blobs      ports.BlobStore
}

// NewDeleteResumeCommandHandler creates a handler for resume deletion.
func NewDeleteResumeCommandHandler(
	uowFactory ResumeUoWFactory,
	blobs ports.BlobStore,
) DeleteResumeCommandHandler {
	return DeleteResumeCommandHandler{
		uowFactory: uowFactory,
		blobs:      blobs,
	}
}

// Handle processes the resume deletion command.
// Returns an errs.ObjectNotFoundError when the resume does not exist or
// belongs to a different user.
func (h *DeleteResumeCommandHandler) Handle(ctx context.Context, cmd DeleteResumeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	resumeRepo := uow.ResumeRepository()

	r, err := resumeRepo.GetForOwner(ctx, cmd.ResumeID(), cmd.OwnerUserID())
	if err != nil {
		return err
	}

	if err = resumeRepo.Delete(ctx, cmd.ResumeID(), cmd.OwnerUserID()); err != nil {
		return err
	}

	if err = h.blobs.Remove(ctx, r.StoragePath()); err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
