package kernel

import (
	"fmt"
	"time"

	"resumeflow/internal/pkg/errs"
	"resumeflow/internal/pkg/guard"
)

// ErrScheduleTimeIsNotConstructed is returned when validating a zero-value
// ScheduleTime that bypassed its constructors.
var ErrScheduleTimeIsNotConstructed = errs.NewValueIsRequiredError(
	"ScheduleTime must be created via NewScheduleTime, ParseScheduleTime, or ScheduleTimeFromClock",
)

// ScheduleTime is a value object representing a time of day at minute
// granularity. Automation settings store one ScheduleTime per user; a setting
// is due when its ScheduleTime equals the current wall-clock minute. Seconds
// are always zero, and the canonical rendering is "HH:MM:00" to match the
// stored representation exactly.
//
// Example:
//
//	nine, _ := kernel.NewScheduleTime(9, 0)
//	now := kernel.ScheduleTimeFromClock(time.Now())
//	if nine.IsEqual(now) {
//	    // the 09:00 settings are due
//	}
type ScheduleTime struct {
	hour   int
	minute int
	guard  guard.ConstructorGuard
}

// NewScheduleTime creates a ScheduleTime from an hour (0-23) and minute (0-59).
func NewScheduleTime(hour, minute int) (ScheduleTime, error) {
	if hour < 0 || hour > 23 {
		return ScheduleTime{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return ScheduleTime{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}

	return ScheduleTime{
		hour:   hour,
		minute: minute,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ParseScheduleTime parses "HH:MM" or "HH:MM:SS" strings. Seconds, when
// present, are discarded: the dispatcher only ever compares at minute
// granularity.
func ParseScheduleTime(s string) (ScheduleTime, error) {
	var hour, minute, second int

	if n, err := fmt.Sscanf(s, "%d:%d:%d", &hour, &minute, &second); err != nil || n < 2 {
		if _, err = fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
			return ScheduleTime{}, errs.NewValueIsInvalidErrorWithCause(
				"scheduled time",
				fmt.Errorf("%q is not a HH:MM or HH:MM:SS time", s),
			)
		}
	}

	return NewScheduleTime(hour, minute)
}

// ScheduleTimeFromClock truncates a wall-clock instant to its minute.
// Used at the start of each dispatch cycle to normalize "now".
func ScheduleTimeFromClock(t time.Time) ScheduleTime {
	st, _ := NewScheduleTime(t.Hour(), t.Minute())
	return st
}

// Hour returns the hour component (0-23).
func (st ScheduleTime) Hour() int {
	return st.hour
}

// Minute returns the minute component (0-59).
func (st ScheduleTime) Minute() int {
	return st.minute
}

// String renders the canonical "HH:MM:00" form used in storage and queries.
func (st ScheduleTime) String() string {
	return fmt.Sprintf("%02d:%02d:00", st.hour, st.minute)
}

// IsEqual reports whether both values denote the same minute of the day.
func (st ScheduleTime) IsEqual(other ScheduleTime) bool {
	return st.hour == other.hour && st.minute == other.minute
}

// Validate ensures the value was created through a constructor.
func (st ScheduleTime) Validate() error {
	return st.guard.Validate(ErrScheduleTimeIsNotConstructed)
}
