package queries

import (
	"context"

	"resumeflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetResumesQueryHandler retrieves a user's resume listing from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetResumesQueryHandler(db)
//	query, _ := NewGetResumesQuery(userID)
//
//	resumes, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get resumes: %v", err)
//	    return err
//	}
type GetResumesQueryHandler struct {
	db *gorm.DB
}

// NewGetResumesQueryHandler creates a handler for resume listing queries.
// Requires a GORM database connection for query execution.
func NewGetResumesQueryHandler(db *gorm.DB) GetResumesQueryHandler {
	return GetResumesQueryHandler{db: db}
}

// Handle executes the query to retrieve the user's resumes, newest first.
func (h GetResumesQueryHandler) Handle(
	ctx context.Context,
	query GetResumesQuery,
) ([]GetResumesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	resumes := make([]GetResumesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			file_name,
			uploaded_at
		FROM resumes
		WHERE owner_user_id = ?
		ORDER BY uploaded_at DESC
	`, query.OwnerUserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetResumesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.FileName,
			&response.UploadedAt,
		)
		if err != nil {
			return nil, err
		}

		resumeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = resumeID

		resumes = append(resumes, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return resumes, nil
}
