package resumerepo

import (
	"context"
	"errors"

	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/core/domain/model/resume"
	"resumeflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormResumeRepository implements ResumeRepository using GORM. Every read and
// delete is owner-scoped, so a resume belonging to another user behaves
// exactly like a missing one.
type GormResumeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormResumeRepository creates a new GORM resume repository.
func NewGormResumeRepository(db *gorm.DB, tracker aggregateTracker) *GormResumeRepository {
	return &GormResumeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new resume metadata row to the database.
func (r *GormResumeRepository) Add(ctx context.Context, aggregate *resume.Resume) error {
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

// GetForOwner retrieves a resume by ID scoped to its owner.
func (r *GormResumeRepository) GetForOwner(
	ctx context.Context,
	id, ownerUserID kernel.UUID,
) (*resume.Resume, error) {
	if err := errors.Join(id.Validate(), ownerUserID.Validate()); err != nil {
		return nil, err
	}

	var dto ResumeDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND owner_user_id = ?", id.Bytes(), ownerUserID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("resume", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForOwner retrieves all resumes uploaded by a user.
func (r *GormResumeRepository) GetAllForOwner(
	ctx context.Context,
	ownerUserID kernel.UUID,
) ([]*resume.Resume, error) {
	if err := ownerUserID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ResumeDTO
	err := r.db.WithContext(ctx).Find(&dtos, "owner_user_id = ?", ownerUserID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	resumes := make([]*resume.Resume, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, dtoErr := toDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}
		resumes = append(resumes, aggregate)
	}

	return resumes, nil
}

// Delete removes a resume row scoped to its owner.
func (r *GormResumeRepository) Delete(ctx context.Context, id, ownerUserID kernel.UUID) error {
	if err := errors.Join(id.Validate(), ownerUserID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Delete(&ResumeDTO{}, "id = ? AND owner_user_id = ?", id.Bytes(), ownerUserID.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("resume", id.String())
	}

	return nil
}
