package ports

import (
	"context"

	"resumeflow/internal/core/domain/model/feed"
	"resumeflow/internal/core/domain/model/kernel"
)

// FeedSourceRepository defines the persistence contract for job-feed sources.
type FeedSourceRepository interface {
	// Add persists a new feed source.
	Add(ctx context.Context, source *feed.Source) error

	// GetAllForUser retrieves all feed sources registered by a user in
	// registration order, oldest first. The dispatcher's "first feed"
	// selection depends on this order, so implementations must keep it
	// stable.
	GetAllForUser(ctx context.Context, userID kernel.UUID) ([]*feed.Source, error)
}
