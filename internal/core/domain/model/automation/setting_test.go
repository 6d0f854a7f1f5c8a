package automation_test

import (
	"testing"

	"resumeflow/internal/core/domain/model/automation"
	"resumeflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustScheduleTime(t *testing.T, hour, minute int) kernel.ScheduleTime {
	t.Helper()
	st, err := kernel.NewScheduleTime(hour, minute)
	require.NoError(t, err)
	return st
}

func TestNewSetting(t *testing.T) {
	t.Run("creates valid setting with resume selected", func(t *testing.T) {
		userID := kernel.NewUUID()
		resumeID := kernel.NewUUID()
		nine := mustScheduleTime(t, 9, 0)

		setting, err := automation.NewSetting(userID, true, nine, &resumeID)

		require.NoError(t, err)
		require.NoError(t, setting.Validate())
		assert.True(t, setting.UserID().IsEqual(userID))
		assert.True(t, setting.IsEnabled())
		assert.True(t, setting.ScheduledTime().IsEqual(nine))
		require.NotNil(t, setting.SelectedResumeID())
		assert.True(t, setting.SelectedResumeID().IsEqual(resumeID))
	})

	t.Run("creates valid setting without resume", func(t *testing.T) {
		setting, err := automation.NewSetting(kernel.NewUUID(), true, mustScheduleTime(t, 9, 0), nil)

		require.NoError(t, err)
		assert.Nil(t, setting.SelectedResumeID())
	})

	t.Run("rejects zero user ID", func(t *testing.T) {
		var userID kernel.UUID

		_, err := automation.NewSetting(userID, true, mustScheduleTime(t, 9, 0), nil)

		require.Error(t, err)
	})

	t.Run("rejects zero scheduled time", func(t *testing.T) {
		var st kernel.ScheduleTime

		_, err := automation.NewSetting(kernel.NewUUID(), true, st, nil)

		require.Error(t, err)
	})
}

func TestSetting_IsDueAt(t *testing.T) {
	nine, _ := kernel.NewScheduleTime(9, 0)
	ten, _ := kernel.NewScheduleTime(10, 0)
	nineOhOne, _ := kernel.NewScheduleTime(9, 1)

	t.Run("enabled setting is due at its scheduled minute", func(t *testing.T) {
		setting, err := automation.NewSetting(kernel.NewUUID(), true, nine, nil)
		require.NoError(t, err)

		assert.True(t, setting.IsDueAt(nine))
	})

	t.Run("enabled setting is not due at any other minute", func(t *testing.T) {
		setting, err := automation.NewSetting(kernel.NewUUID(), true, nine, nil)
		require.NoError(t, err)

		assert.False(t, setting.IsDueAt(ten))
		assert.False(t, setting.IsDueAt(nineOhOne))
	})

	t.Run("disabled setting is never due", func(t *testing.T) {
		setting, err := automation.NewSetting(kernel.NewUUID(), false, nine, nil)
		require.NoError(t, err)

		assert.False(t, setting.IsDueAt(nine))
		assert.False(t, setting.IsDueAt(ten))
	})
}

func TestSetting_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var setting automation.Setting
		require.ErrorIs(t, setting.Validate(), automation.ErrSettingIsNotConstructed)
	})

	t.Run("nil setting is not constructed", func(t *testing.T) {
		var setting *automation.Setting
		require.ErrorIs(t, setting.Validate(), automation.ErrSettingIsNotConstructed)
	})
}
