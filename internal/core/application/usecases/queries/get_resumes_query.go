// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/pkg/guard"
)

var (
	ErrGetResumesQueryIsNotConstructed = errors.New(
		"GetResumesQuery must be created via NewGetResumesQuery constructor",
	)
)

// GetResumesQuery retrieves all resumes uploaded by one user.
//
// Example:
//
//	query, err := NewGetResumesQuery(userID)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	handler := NewGetResumesQueryHandler(db)
//	resumes, err := handler.Handle(ctx, query)
type GetResumesQuery struct {
	ownerUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetResumesQuery creates a query for one user's resumes.
func NewGetResumesQuery(ownerUserID kernel.UUID) (GetResumesQuery, error) {
	if err := ownerUserID.Validate(); err != nil {
		return GetResumesQuery{}, err
	}

	return GetResumesQuery{
		ownerUserID: ownerUserID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetResumesQueryIsNotConstructed if validation fails.
func (q GetResumesQuery) Validate() error {
	return q.guard.Validate(ErrGetResumesQueryIsNotConstructed)
}

// OwnerUserID returns the user whose resumes are requested.
func (q GetResumesQuery) OwnerUserID() kernel.UUID {
	return q.ownerUserID
}

// GetResumesQueryResponse represents one resume in the read model.
type GetResumesQueryResponse struct {
	ID         kernel.UUID
	FileName   string
	UploadedAt time.Time
}
