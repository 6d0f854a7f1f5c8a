package guard_test

import (
	"errors"
	"testing"

	"resumeflow/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("setting not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsage demonstrates the intended embedding pattern.
func TestConstructorGuardUsage(t *testing.T) {
	type schedule struct {
		hour  int
		guard guard.ConstructorGuard
	}

	errNotConstructed := errors.New("schedule must be created via newSchedule")

	newSchedule := func(hour int) (schedule, error) {
		if hour < 0 || hour > 23 {
			return schedule{}, errors.New("hour out of range")
		}
		return schedule{hour: hour, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		s, err := newSchedule(9)
		require.NoError(t, err)
		require.NoError(t, s.guard.Validate(errNotConstructed))
	})

	t.Run("zero_value_fails", func(t *testing.T) {
		var s schedule
		err := s.guard.Validate(errNotConstructed)
		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})
}
