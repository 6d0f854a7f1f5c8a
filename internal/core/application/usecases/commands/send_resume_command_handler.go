package commands

import (
	"context"
	"errors"
	"fmt"

	"resumeflow/internal/core/domain/services"
	"resumeflow/internal/core/ports"
)

var (
	// ErrSendNotPossible is returned when the user's assets cannot support a
	// delivery right now, e.g. no resume is selected or the binary is missing.
	// The wrapped message carries the concrete reason.
	ErrSendNotPossible = errors.New("resume cannot be sent")
)

// SendResumeCommandHandler handles on-demand resume delivery. Unlike the
// scheduled dispatcher it does not consult the schedule and does not require
// the automation to be enabled: the user asked for a delivery right now.
// Conditions the dispatcher would silently skip are surfaced as errors here,
// since there is a caller waiting for the answer.
type SendResumeCommandHandler struct {
	settings  ports.AutomationSettingRepository
	resolver  AssetResolver
	assembler services.PayloadAssembler
	intake    ports.IntakeGateway
}

// NewSendResumeCommandHandler creates a handler for on-demand deliveries.
func NewSendResumeCommandHandler(
	settings ports.AutomationSettingRepository,
	resolver AssetResolver,
	intake ports.IntakeGateway,
) SendResumeCommandHandler {
	return SendResumeCommandHandler{
		settings:  settings,
		resolver:  resolver,
		assembler: services.NewPayloadAssembler(),
		intake:    intake,
	}
}

// Handle processes the on-demand send command.
// Returns an errs.ObjectNotFoundError when the user has no automation
// setting, or ErrSendNotPossible when the assets cannot support a delivery.
func (h *SendResumeCommandHandler) Handle(ctx context.Context, cmd SendResumeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	setting, err := h.settings.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	resolution, err := h.resolver.Resolve(ctx, setting)
	if err != nil {
		return err
	}

	if resolution.IsSkipped() {
		message := resolution.SkipReason().String()
		if cause := resolution.SkipCause(); cause != "" {
			message += ": " + cause
		}
		return fmt.Errorf("%w: %s", ErrSendNotPossible, message)
	}

	payload := h.assembler.AssembleWithFeedList(resolution.Assets())

	return h.intake.Deliver(ctx, payload)
}
