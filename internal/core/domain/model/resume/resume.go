// Package resume contains the uploaded resume aggregate. A resume pairs a
// metadata row with a blob in the object store; the two are created and
// deleted together so a missing blob never outlives its metadata.
package resume

import (
	"errors"
	"time"

	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/pkg/errs"
)

var (
	// ErrResumeIsNotConstructed is returned when a Resume instance was not
	// created through NewResume or RestoreResume.
	ErrResumeIsNotConstructed = errors.New("Resume must be created via NewResume or RestoreResume")
)

// Resume is the aggregate for one uploaded resume file. The binary content
// lives in the object store under StoragePath; this aggregate holds only the
// metadata needed to locate and describe it.
type Resume struct {
	// id is the unique identifier for the resume
	id kernel.UUID

	// ownerUserID is the uploading user; lookups are always owner-scoped
	ownerUserID kernel.UUID

	// fileName is the original upload name, reused as the delivery filename
	fileName string

	// storagePath locates the blob in the object store
	storagePath string

	// uploadedAt records when the file was uploaded
	uploadedAt time.Time

	// isConstructed ensures the resume was created via a constructor
	isConstructed bool
}

// NewResume creates a validated resume metadata record.
//
// Example:
//
//	r, err := resume.NewResume(kernel.NewUUID(), ownerID, "cv.pdf",
//	    "resumes/"+ownerID.String()+"/cv.pdf", time.Now())
func NewResume(
	id kernel.UUID,
	ownerUserID kernel.UUID,
	fileName string,
	storagePath string,
	uploadedAt time.Time,
) (*Resume, error) {
	r := &Resume{
		uploadedAt:    uploadedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOwnerUserID(ownerUserID),
		r.setFileName(fileName),
		r.setStoragePath(storagePath),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreResume reconstructs a resume from persistence, applying the same
// validation as NewResume.
func RestoreResume(
	id kernel.UUID,
	ownerUserID kernel.UUID,
	fileName string,
	storagePath string,
	uploadedAt time.Time,
) (*Resume, error) {
	return NewResume(id, ownerUserID, fileName, storagePath, uploadedAt)
}

// Validate ensures the Resume was created through a constructor.
func (r *Resume) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrResumeIsNotConstructed
	}
	return nil
}

// ID returns the resume's unique identifier.
func (r *Resume) ID() kernel.UUID {
	return r.id
}

// OwnerUserID returns the uploading user's identifier.
func (r *Resume) OwnerUserID() kernel.UUID {
	return r.ownerUserID
}

// FileName returns the original upload file name.
func (r *Resume) FileName() string {
	return r.fileName
}

// StoragePath returns the blob location in the object store.
func (r *Resume) StoragePath() string {
	return r.storagePath
}

// UploadedAt returns the upload timestamp.
func (r *Resume) UploadedAt() time.Time {
	return r.uploadedAt
}

// IsOwnedBy reports whether the resume belongs to the given user.
func (r *Resume) IsOwnedBy(userID kernel.UUID) bool {
	return r.ownerUserID.IsEqual(userID)
}

func (r *Resume) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Resume) setOwnerUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.ownerUserID = id
	return nil
}

func (r *Resume) setFileName(fileName string) error {
	if fileName == "" {
		return errs.NewValueIsRequiredError("fileName")
	}
	r.fileName = fileName
	return nil
}

func (r *Resume) setStoragePath(storagePath string) error {
	if storagePath == "" {
		return errs.NewValueIsRequiredError("storagePath")
	}
	r.storagePath = storagePath
	return nil
}
