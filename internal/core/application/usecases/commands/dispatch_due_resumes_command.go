package commands

import (
	"errors"

	"resumeflow/internal/pkg/guard"
)

var (
	ErrDispatchDueResumesCommandIsNotConstructed = errors.New(
		"DispatchDueResumesCommand must be created via NewDispatchDueResumesCommand constructor",
	)
)

// DispatchDueResumesCommand triggers one dispatch cycle: every enabled
// automation setting scheduled for the current minute gets a single delivery
// attempt. This is a parameterless batch command; the handler reads the
// clock itself at the start of the cycle.
//
// Example:
//
//	cmd := NewDispatchDueResumesCommand()
//	handler := NewDispatchDueResumesCommandHandler(...)
//
//	// Typically invoked once per minute by the scheduler
//	report, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("dispatch cycle failed: %v", err)
//	}
type DispatchDueResumesCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchDueResumesCommand creates a command to run one dispatch cycle.
func NewDispatchDueResumesCommand() DispatchDueResumesCommand {
	return DispatchDueResumesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchDueResumesCommandIsNotConstructed if validation fails.
func (c DispatchDueResumesCommand) Validate() error {
	return c.guard.Validate(ErrDispatchDueResumesCommandIsNotConstructed)
}
