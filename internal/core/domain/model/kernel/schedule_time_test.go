package kernel_test

import (
	"testing"
	"time"

	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScheduleTime(t *testing.T) {
	t.Run("creates valid time of day", func(t *testing.T) {
		st, err := kernel.NewScheduleTime(9, 30)

		require.NoError(t, err)
		assert.Equal(t, 9, st.Hour())
		assert.Equal(t, 30, st.Minute())
		assert.NoError(t, st.Validate())
	})

	t.Run("rejects out of range components", func(t *testing.T) {
		testCases := []struct {
			name   string
			hour   int
			minute int
		}{
			{"hour too large", 24, 0},
			{"hour negative", -1, 0},
			{"minute too large", 9, 60},
			{"minute negative", 9, -1},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewScheduleTime(tc.hour, tc.minute)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})
}

func TestParseScheduleTime(t *testing.T) {
	t.Run("parses HH:MM", func(t *testing.T) {
		st, err := kernel.ParseScheduleTime("09:00")

		require.NoError(t, err)
		assert.Equal(t, "09:00:00", st.String())
	})

	t.Run("parses HH:MM:SS and discards seconds", func(t *testing.T) {
		st, err := kernel.ParseScheduleTime("17:45:30")

		require.NoError(t, err)
		assert.Equal(t, 17, st.Hour())
		assert.Equal(t, 45, st.Minute())
		assert.Equal(t, "17:45:00", st.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, input := range []string{"", "nine", "25:00", "09:61"} {
			_, err := kernel.ParseScheduleTime(input)
			require.Error(t, err, "input %q", input)
		}
	})
}

func TestScheduleTimeFromClock(t *testing.T) {
	t.Run("truncates seconds", func(t *testing.T) {
		clock := time.Date(2024, 6, 1, 9, 0, 42, 999, time.UTC)

		st := kernel.ScheduleTimeFromClock(clock)

		assert.Equal(t, "09:00:00", st.String())
	})
}

func TestScheduleTime_IsEqual(t *testing.T) {
	nine, _ := kernel.NewScheduleTime(9, 0)
	alsoNine, _ := kernel.NewScheduleTime(9, 0)
	ten, _ := kernel.NewScheduleTime(10, 0)

	assert.True(t, nine.IsEqual(alsoNine))
	assert.False(t, nine.IsEqual(ten))
}

func TestScheduleTime_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var st kernel.ScheduleTime
		require.ErrorIs(t, st.Validate(), kernel.ErrScheduleTimeIsNotConstructed)
	})
}
