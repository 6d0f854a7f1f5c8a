package queries

import (
	"errors"
	"time"

	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/pkg/guard"
)

var (
	ErrGetFeedSourcesQueryIsNotConstructed = errors.New(
		"GetFeedSourcesQuery must be created via NewGetFeedSourcesQuery constructor",
	)
)

// GetFeedSourcesQuery retrieves all feed sources registered by one user.
type GetFeedSourcesQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetFeedSourcesQuery creates a query for one user's feed sources.
func NewGetFeedSourcesQuery(userID kernel.UUID) (GetFeedSourcesQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetFeedSourcesQuery{}, err
	}

	return GetFeedSourcesQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFeedSourcesQueryIsNotConstructed if validation fails.
func (q GetFeedSourcesQuery) Validate() error {
	return q.guard.Validate(ErrGetFeedSourcesQueryIsNotConstructed)
}

// UserID returns the user whose feed sources are requested.
func (q GetFeedSourcesQuery) UserID() kernel.UUID {
	return q.userID
}

// GetFeedSourcesQueryResponse represents one feed source in the read model.
type GetFeedSourcesQueryResponse struct {
	ID        kernel.UUID
	FeedName  string
	FeedURL   string
	CreatedAt time.Time
}
