package commands

import (
	"errors"

	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/pkg/guard"
)

var (
	ErrSaveAutomationSettingCommandIsNotConstructed = errors.New(
		"SaveAutomationSettingCommand must be created via NewSaveAutomationSettingCommand constructor",
	)
)

// SaveAutomationSettingCommand represents a request to create or replace a
// user's automation setting. The whole setting is written at once; there is
// no partial patching.
//
// Example:
//
//	nine, _ := kernel.NewScheduleTime(9, 0)
//	cmd, err := NewSaveAutomationSettingCommand(userID, true, nine, &resumeID)
//	if err != nil {
//	    return fmt.Errorf("invalid setting: %w", err)
//	}
//
//	handler := NewSaveAutomationSettingCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to save setting: %w", err)
//	}
type SaveAutomationSettingCommand struct { //nolint:recvcheck //using for validation
	userID           kernel.UUID
	enabled          bool
	scheduledTime    kernel.ScheduleTime
	selectedResumeID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSaveAutomationSettingCommand creates a command to upsert an automation
// setting. The resume reference is optional and may be nil.
func NewSaveAutomationSettingCommand(
	userID kernel.UUID,
	enabled bool,
	scheduledTime kernel.ScheduleTime,
	selectedResumeID *kernel.UUID,
) (SaveAutomationSettingCommand, error) {
	cmd := SaveAutomationSettingCommand{
		enabled: enabled,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setScheduledTime(scheduledTime),
		cmd.setSelectedResumeID(selectedResumeID),
	); err != nil {
		return SaveAutomationSettingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSaveAutomationSettingCommandIsNotConstructed if validation fails.
func (c SaveAutomationSettingCommand) Validate() error {
	return c.guard.Validate(ErrSaveAutomationSettingCommandIsNotConstructed)
}

// UserID returns the owning user's identifier.
func (c SaveAutomationSettingCommand) UserID() kernel.UUID {
	return c.userID
}

// IsEnabled reports whether daily delivery should be switched on.
func (c SaveAutomationSettingCommand) IsEnabled() bool {
	return c.enabled
}

// ScheduledTime returns the minute of day the delivery should fire.
func (c SaveAutomationSettingCommand) ScheduledTime() kernel.ScheduleTime {
	return c.scheduledTime
}

// SelectedResumeID returns the optional resume reference.
func (c SaveAutomationSettingCommand) SelectedResumeID() *kernel.UUID {
	return c.selectedResumeID
}

func (c *SaveAutomationSettingCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}

func (c *SaveAutomationSettingCommand) setScheduledTime(t kernel.ScheduleTime) error {
	if err := t.Validate(); err != nil {
		return err
	}

	c.scheduledTime = t
	return nil
}

func (c *SaveAutomationSettingCommand) setSelectedResumeID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}

	c.selectedResumeID = id
	return nil
}
