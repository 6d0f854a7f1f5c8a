// Package automationrepo provides data transfer objects and mapping functions
// for automation setting persistence. This package implements the repository
// pattern for the automation setting aggregate, handling the conversion
// between domain entities and database representations.
package automationrepo

import (
	"resumeflow/internal/core/domain/model/automation"
	"resumeflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// SettingDTO represents the database structure for persisting automation
// settings. One row per user; the scheduled time is stored in its canonical
// "HH:MM:00" text form so the due-user query is a plain string match.
type SettingDTO struct {
	UserID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Enabled          bool       `gorm:"type:boolean;not null"`
	ScheduledTime    string     `gorm:"type:varchar(8);not null"`
	SelectedResumeID *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for automation settings.
// Overrides GORM's default naming convention to use "automation_settings".
func (SettingDTO) TableName() string {
	return "automation_settings"
}

// fromDomain converts a setting aggregate to its database representation.
func fromDomain(setting *automation.Setting) SettingDTO {
	var selectedResumeID *uuid.UUID
	if setting.SelectedResumeID() != nil {
		raw := setting.SelectedResumeID().Bytes()
		selectedResumeID = &raw
	}

	return SettingDTO{
		UserID:           setting.UserID().Bytes(),
		Enabled:          setting.IsEnabled(),
		ScheduledTime:    setting.ScheduledTime().String(),
		SelectedResumeID: selectedResumeID,
	}
}

// toDomain converts a database DTO to a setting aggregate.
func toDomain(dto SettingDTO) (*automation.Setting, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	scheduledTime, err := kernel.ParseScheduleTime(dto.ScheduledTime)
	if err != nil {
		return nil, err
	}

	var selectedResumeID *kernel.UUID
	if dto.SelectedResumeID != nil {
		resumeID, idErr := kernel.UUIDFromBytes((*dto.SelectedResumeID)[:])
		if idErr != nil {
			return nil, idErr
		}
		selectedResumeID = &resumeID
	}

	return automation.RestoreSetting(userID, dto.Enabled, scheduledTime, selectedResumeID)
}
