package queries

import (
	"context"

	"resumeflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFeedSourcesQueryHandler retrieves a user's feed source listing from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetFeedSourcesQueryHandler struct {
	db *gorm.DB
}

// NewGetFeedSourcesQueryHandler creates a handler for feed source listing
// queries. Requires a GORM database connection for query execution.
func NewGetFeedSourcesQueryHandler(db *gorm.DB) GetFeedSourcesQueryHandler {
	return GetFeedSourcesQueryHandler{db: db}
}

// Handle executes the query to retrieve the user's feed sources in
// registration order.
func (h GetFeedSourcesQueryHandler) Handle(
	ctx context.Context,
	query GetFeedSourcesQuery,
) ([]GetFeedSourcesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sources := make([]GetFeedSourcesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			feed_name,
			feed_url,
			created_at
		FROM feed_sources
		WHERE user_id = ?
		ORDER BY created_at
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetFeedSourcesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.FeedName,
			&response.FeedURL,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		sourceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = sourceID

		sources = append(sources, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sources, nil
}
