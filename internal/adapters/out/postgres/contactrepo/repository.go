package contactrepo

import (
	"context"
	"errors"

	"resumeflow/internal/core/domain/model/contact"
	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormContactRepository implements ContactProfileRepository using GORM.
type GormContactRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormContactRepository creates a new GORM contact profile repository.
func NewGormContactRepository(db *gorm.DB, tracker aggregateTracker) *GormContactRepository {
	return &GormContactRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert creates or replaces the user's contact profile in a single statement.
func (r *GormContactRepository) Upsert(ctx context.Context, aggregate *contact.Profile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.UserID(), aggregate)
	return nil
}

// Get retrieves the contact profile for a user.
func (r *GormContactRepository) Get(ctx context.Context, userID kernel.UUID) (*contact.Profile, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("contactProfile", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
