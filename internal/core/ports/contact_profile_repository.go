package ports

import (
	"context"

	"resumeflow/internal/core/domain/model/contact"
	"resumeflow/internal/core/domain/model/kernel"
)

// ContactProfileRepository defines the persistence contract for contact
// profiles. At most one profile exists per user.
type ContactProfileRepository interface {
	// Upsert creates or replaces the user's contact profile.
	Upsert(ctx context.Context, profile *contact.Profile) error

	// Get retrieves the profile for a user.
	// Returns an errs.ObjectNotFoundError when the user has none; callers
	// in the dispatch path treat that as an empty number, not a failure.
	Get(ctx context.Context, userID kernel.UUID) (*contact.Profile, error)
}
