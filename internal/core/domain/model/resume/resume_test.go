package resume_test

import (
	"testing"
	"time"

	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/core/domain/model/resume"
	"resumeflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResume(t *testing.T) {
	t.Run("creates valid resume", func(t *testing.T) {
		id := kernel.NewUUID()
		owner := kernel.NewUUID()
		uploadedAt := time.Now()

		r, err := resume.NewResume(id, owner, "cv.pdf", "resumes/u1/cv.pdf", uploadedAt)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(id))
		assert.True(t, r.OwnerUserID().IsEqual(owner))
		assert.Equal(t, "cv.pdf", r.FileName())
		assert.Equal(t, "resumes/u1/cv.pdf", r.StoragePath())
		assert.Equal(t, uploadedAt, r.UploadedAt())
	})

	t.Run("rejects empty file name", func(t *testing.T) {
		_, err := resume.NewResume(kernel.NewUUID(), kernel.NewUUID(), "", "resumes/x", time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty storage path", func(t *testing.T) {
		_, err := resume.NewResume(kernel.NewUUID(), kernel.NewUUID(), "cv.pdf", "", time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects zero identifiers", func(t *testing.T) {
		var zero kernel.UUID
		_, err := resume.NewResume(zero, kernel.NewUUID(), "cv.pdf", "resumes/x", time.Now())
		require.Error(t, err)

		_, err = resume.NewResume(kernel.NewUUID(), zero, "cv.pdf", "resumes/x", time.Now())
		require.Error(t, err)
	})
}

func TestResume_IsOwnedBy(t *testing.T) {
	owner := kernel.NewUUID()
	r, err := resume.NewResume(kernel.NewUUID(), owner, "cv.pdf", "resumes/x", time.Now())
	require.NoError(t, err)

	assert.True(t, r.IsOwnedBy(owner))
	assert.False(t, r.IsOwnedBy(kernel.NewUUID()))
}

func TestResume_Validate(t *testing.T) {
	var r *resume.Resume
	require.ErrorIs(t, r.Validate(), resume.ErrResumeIsNotConstructed)
}
