package automationrepo

import (
	"context"
	"errors"

	"resumeflow/internal/core/domain/model/automation"
	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingRepository implements AutomationSettingRepository using GORM.
type GormSettingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSettingRepository creates a new GORM automation setting repository.
func NewGormSettingRepository(db *gorm.DB, tracker aggregateTracker) *GormSettingRepository {
	return &GormSettingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert creates or replaces the user's setting in a single statement.
func (r *GormSettingRepository) Upsert(ctx context.Context, aggregate *automation.Setting) error {
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

// Get retrieves the setting for a user.
func (r *GormSettingRepository) Get(ctx context.Context, userID kernel.UUID) (*automation.Setting, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto SettingDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("automationSetting", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllEnabledAt retrieves every enabled setting scheduled for the given
// minute. The match is a string comparison against the canonical "HH:MM:00"
// form, so rows holding a malformed time never match and are never due.
func (r *GormSettingRepository) GetAllEnabledAt(
	ctx context.Context,
	at kernel.ScheduleTime,
) ([]*automation.Setting, error) {
	var dtos []SettingDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "enabled = ? AND scheduled_time = ?", true, at.String()).Error
	if err != nil {
		return nil, err
	}

	settings := make([]*automation.Setting, 0, len(dtos))
	for _, dto := range dtos {
		setting, dtoErr := toDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}
		settings = append(settings, setting)
	}

	return settings, nil
}
