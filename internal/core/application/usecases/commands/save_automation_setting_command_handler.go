package commands

import (
	"context"

	"resumeflow/internal/core/domain/model/automation"
)

// SaveAutomationSettingCommandHandler handles the business logic for setting
// upserts. When the command references a resume, the reference is verified to
// exist and belong to the same user inside the write transaction, so a
// setting can never be saved pointing at someone else's resume.
//
// A reference can still go dangling later if the resume is deleted after the
// setting is saved; the dispatcher skips such users at delivery time.
type SaveAutomationSettingCommandHandler struct {
	uowFactory SettingUoWFactory
}

// NewSaveAutomationSettingCommandHandler creates a handler for setting upserts.
func NewSaveAutomationSettingCommandHandler(uowFactory SettingUoWFactory) SaveAutomationSettingCommandHandler {
	return SaveAutomationSettingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the setting upsert command.
// Returns an errs.ObjectNotFoundError when the referenced resume does not
// exist or is owned by a different user.
func (h *SaveAutomationSettingCommandHandler) Handle(
	ctx context.Context,
	cmd SaveAutomationSettingCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	setting, err := automation.NewSetting(
		cmd.UserID(),
		cmd.IsEnabled(),
		cmd.ScheduledTime(),
		cmd.SelectedResumeID(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if resumeID := cmd.SelectedResumeID(); resumeID != nil {
		if _, err = uow.ResumeRepository().GetForOwner(ctx, *resumeID, cmd.UserID()); err != nil {
			return err
		}
	}

	if err = uow.AutomationSettingRepository().Upsert(ctx, setting); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
