package ports

import (
	"context"

	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/core/domain/model/resume"
)

// ResumeRepository defines the persistence contract for resume metadata.
// All reads are owner-scoped: a resume referenced by another user's setting
// is indistinguishable from a missing one.
type ResumeRepository interface {
	// Add persists a new resume metadata row. The blob must already exist in
	// the object store so metadata never points at a missing binary.
	Add(ctx context.Context, r *resume.Resume) error

	// GetForOwner retrieves a resume by id scoped to its owner.
	// Returns an errs.ObjectNotFoundError when the row is absent or owned
	// by a different user.
	GetForOwner(ctx context.Context, id, ownerUserID kernel.UUID) (*resume.Resume, error)

	// GetAllForOwner retrieves all resumes uploaded by a user.
	GetAllForOwner(ctx context.Context, ownerUserID kernel.UUID) ([]*resume.Resume, error)

	// Delete removes a resume row scoped to its owner.
	// Returns an errs.ObjectNotFoundError when no matching row exists.
	Delete(ctx context.Context, id, ownerUserID kernel.UUID) error
}
