// Package resumerepo provides data transfer objects and mapping functions for
// resume metadata persistence.
package resumerepo

import (
	"time"

	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/core/domain/model/resume"

	"github.com/google/uuid"
)

// ResumeDTO represents the database structure for persisting resume metadata.
// The binary content lives in the object store; this row only locates and
// describes it.
type ResumeDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	FileName    string    `gorm:"type:varchar(255);not null"`
	StoragePath string    `gorm:"type:varchar(1024);not null"`
	UploadedAt  time.Time `gorm:"type:timestamptz;not null"`
}

// TableName specifies the database table name for resume metadata.
// Overrides GORM's default naming convention to use "resumes".
func (ResumeDTO) TableName() string {
	return "resumes"
}

// fromDomain converts a resume aggregate to its database representation.
func fromDomain(r *resume.Resume) ResumeDTO {
	return ResumeDTO{
		ID:          r.ID().Bytes(),
		OwnerUserID: r.OwnerUserID().Bytes(),
		FileName:    r.FileName(),
		StoragePath: r.StoragePath(),
		UploadedAt:  r.UploadedAt(),
	}
}

// toDomain converts a database DTO to a resume aggregate.
func toDomain(dto ResumeDTO) (*resume.Resume, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerUserID, err := kernel.UUIDFromBytes(dto.OwnerUserID[:])
	if err != nil {
		return nil, err
	}

	return resume.RestoreResume(id, ownerUserID, dto.FileName, dto.StoragePath, dto.UploadedAt)
}
