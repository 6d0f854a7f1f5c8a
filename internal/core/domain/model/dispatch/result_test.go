package dispatch_test

import (
	"testing"

	"resumeflow/internal/core/domain/model/dispatch"
	"resumeflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryResults(t *testing.T) {
	userID := kernel.NewUUID()

	t.Run("success result", func(t *testing.T) {
		result := dispatch.NewSuccessResult(userID)

		assert.Equal(t, dispatch.StatusSuccess, result.Status())
		assert.True(t, result.UserID().IsEqual(userID))
		assert.NotEmpty(t, result.Message())
	})

	t.Run("error result keeps its cause", func(t *testing.T) {
		result := dispatch.NewErrorResult(userID, "intake endpoint returned status 500")

		assert.Equal(t, dispatch.StatusError, result.Status())
		assert.Equal(t, "intake endpoint returned status 500", result.Message())
	})

	t.Run("error result never has an empty message", func(t *testing.T) {
		result := dispatch.NewErrorResult(userID, "")

		assert.Equal(t, dispatch.StatusError, result.Status())
		assert.NotEmpty(t, result.Message())
	})

	t.Run("skipped result without cause", func(t *testing.T) {
		result := dispatch.NewSkippedResult(userID, dispatch.SkipNoResumeSelected, "")

		assert.Equal(t, dispatch.StatusSkipped, result.Status())
		assert.Equal(t, "no resume selected", result.Message())
	})

	t.Run("skipped result appends cause", func(t *testing.T) {
		result := dispatch.NewSkippedResult(userID, dispatch.SkipDownloadFailed, "object missing")

		assert.Equal(t, "resume download failed: object missing", result.Message())
	})
}

func TestStatus(t *testing.T) {
	t.Run("report strings are lowercase", func(t *testing.T) {
		assert.Equal(t, "success", dispatch.StatusSuccess.String())
		assert.Equal(t, "error", dispatch.StatusError.String())
		assert.Equal(t, "skipped", dispatch.StatusSkipped.String())
		assert.Equal(t, "unknown", dispatch.StatusUnknown.String())
	})

	t.Run("validation", func(t *testing.T) {
		require.NoError(t, dispatch.StatusSuccess.Validate())
		require.NoError(t, dispatch.StatusError.Validate())
		require.NoError(t, dispatch.StatusSkipped.Validate())
		require.Error(t, dispatch.StatusUnknown.Validate())
		require.Error(t, dispatch.Status(42).Validate())
	})
}

func TestReport(t *testing.T) {
	u1 := kernel.NewUUID()
	u2 := kernel.NewUUID()
	u3 := kernel.NewUUID()

	report := dispatch.NewReport([]dispatch.DeliveryResult{
		dispatch.NewSuccessResult(u1),
		dispatch.NewSkippedResult(u2, dispatch.SkipNoResumeSelected, ""),
		dispatch.NewErrorResult(u3, "connection reset"),
	})

	assert.Equal(t, 3, report.Processed())
	assert.Len(t, report.Results(), 3)
	assert.Equal(t, 1, report.CountByStatus(dispatch.StatusSuccess))
	assert.Equal(t, 1, report.CountByStatus(dispatch.StatusSkipped))
	assert.Equal(t, 1, report.CountByStatus(dispatch.StatusError))
}
