// Package feedrepo provides data transfer objects and mapping functions for
// feed source persistence.
package feedrepo

import (
	"time"

	"resumeflow/internal/core/domain/model/feed"
	"resumeflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// SourceDTO represents the database structure for persisting feed sources.
type SourceDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FeedName  string    `gorm:"type:varchar(255);not null"`
	FeedURL   string    `gorm:"type:varchar(1024);not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName specifies the database table name for feed sources.
// Overrides GORM's default naming convention to use "feed_sources".
func (SourceDTO) TableName() string {
	return "feed_sources"
}

// fromDomain converts a feed source aggregate to its database representation.
func fromDomain(s *feed.Source) SourceDTO {
	return SourceDTO{
		ID:        s.ID().Bytes(),
		UserID:    s.UserID().Bytes(),
		FeedName:  s.FeedName(),
		FeedURL:   s.FeedURL(),
		CreatedAt: s.CreatedAt(),
	}
}

// toDomain converts a database DTO to a feed source aggregate.
func toDomain(dto SourceDTO) (*feed.Source, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return feed.RestoreSource(id, userID, dto.FeedName, dto.FeedURL, dto.CreatedAt)
}
