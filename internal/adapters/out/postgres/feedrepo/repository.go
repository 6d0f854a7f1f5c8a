package feedrepo

import (
	"context"

	"resumeflow/internal/core/domain/model/feed"
	"resumeflow/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormFeedRepository implements FeedSourceRepository using GORM.
type GormFeedRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFeedRepository creates a new GORM feed source repository.
func NewGormFeedRepository(db *gorm.DB, tracker aggregateTracker) *GormFeedRepository {
	return &GormFeedRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new feed source to the database.
func (r *GormFeedRepository) Add(ctx context.Context, aggregate *feed.Source) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllForUser retrieves all feed sources registered by a user, oldest
// first. The first row is the one the scheduled dispatcher includes in the
// delivery payload.
func (r *GormFeedRepository) GetAllForUser(ctx context.Context, userID kernel.UUID) ([]*feed.Source, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []SourceDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	sources := make([]*feed.Source, 0, len(dtos))
	for _, dto := range dtos {
		source, dtoErr := toDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}
		sources = append(sources, source)
	}

	return sources, nil
}
