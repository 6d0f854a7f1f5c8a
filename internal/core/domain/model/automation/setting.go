package automation

import (
	"errors"

	"resumeflow/internal/core/domain/model/kernel"
)

var (
	// ErrSettingIsNotConstructed is returned when an AutomationSetting instance
	// was not created through NewSetting or RestoreSetting.
	ErrSettingIsNotConstructed = errors.New("AutomationSetting must be created via NewSetting or RestoreSetting")
)

// Setting is the per-user automation configuration aggregate. It describes
// whether the user's resume should be auto-delivered, at which minute of the
// day, and which resume to send.
//
// Setting follows these invariants:
//   - Keyed by a valid user ID; one setting per user
//   - The scheduled time is a minute-granular time of day
//   - The selected resume reference is optional; a nil reference means the
//     user has not picked a resume and is skipped by the dispatcher
//   - Saved wholesale (upsert), never partially patched
//
// The dispatcher treats settings as read-only: it only asks whether a setting
// is due at the current minute.
type Setting struct {
	// userID identifies the owning user and is the aggregate key
	userID kernel.UUID

	// enabled gates the daily delivery entirely
	enabled bool

	// scheduledTime is the minute of day the delivery fires
	scheduledTime kernel.ScheduleTime

	// selectedResumeID references the resume to deliver (nil if none chosen)
	selectedResumeID *kernel.UUID

	// isConstructed ensures the setting was created via a constructor
	isConstructed bool
}

// NewSetting creates a validated automation setting for a user.
//
// Parameters:
//   - userID: the owning user (must be a valid UUID)
//   - enabled: whether daily delivery is switched on
//   - scheduledTime: minute of day to deliver at
//   - selectedResumeID: optional resume reference; may be nil
//
// Example:
//
//	nine, _ := kernel.NewScheduleTime(9, 0)
//	setting, err := automation.NewSetting(userID, true, nine, &resumeID)
//	if err != nil {
//	    // handle validation error
//	}
func NewSetting(
	userID kernel.UUID,
	enabled bool,
	scheduledTime kernel.ScheduleTime,
	selectedResumeID *kernel.UUID,
) (*Setting, error) {
	setting := &Setting{
		enabled:       enabled,
		isConstructed: true,
	}

	if err := errors.Join(
		setting.setUserID(userID),
		setting.setScheduledTime(scheduledTime),
		setting.setSelectedResumeID(selectedResumeID),
	); err != nil {
		return nil, err
	}

	return setting, nil
}

// RestoreSetting reconstructs a setting from persistence. It applies the same
// validation as NewSetting.
func RestoreSetting(
	userID kernel.UUID,
	enabled bool,
	scheduledTime kernel.ScheduleTime,
	selectedResumeID *kernel.UUID,
) (*Setting, error) {
	return NewSetting(userID, enabled, scheduledTime, selectedResumeID)
}

// Validate ensures the Setting was created through a constructor.
func (s *Setting) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSettingIsNotConstructed
	}
	return nil
}

// UserID returns the owning user's identifier.
func (s *Setting) UserID() kernel.UUID {
	return s.userID
}

// IsEnabled reports whether daily delivery is switched on.
func (s *Setting) IsEnabled() bool {
	return s.enabled
}

// ScheduledTime returns the minute of day the delivery fires.
func (s *Setting) ScheduledTime() kernel.ScheduleTime {
	return s.scheduledTime
}

// SelectedResumeID returns the referenced resume, or nil when the user has
// not selected one.
func (s *Setting) SelectedResumeID() *kernel.UUID {
	return s.selectedResumeID
}

// IsDueAt reports whether the setting should fire at the given minute:
// the setting must be enabled and its scheduled time must equal the minute
// exactly.
func (s *Setting) IsDueAt(at kernel.ScheduleTime) bool {
	return s.enabled && s.scheduledTime.IsEqual(at)
}

// setUserID validates and sets the aggregate key.
func (s *Setting) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	s.userID = userID
	return nil
}

// setScheduledTime validates and sets the time of day.
func (s *Setting) setScheduledTime(t kernel.ScheduleTime) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.scheduledTime = t
	return nil
}

// setSelectedResumeID validates the optional resume reference.
func (s *Setting) setSelectedResumeID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	s.selectedResumeID = id
	return nil
}
