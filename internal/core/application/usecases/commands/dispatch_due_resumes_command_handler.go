package commands

import (
	"context"
	"fmt"
	"sync"
	"time"

	"resumeflow/internal/core/domain/model/automation"
	"resumeflow/internal/core/domain/model/dispatch"
	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/core/domain/services"
	"resumeflow/internal/core/ports"
)

// defaultDispatchWorkers caps concurrent per-user deliveries when no explicit
// limit is configured.
const defaultDispatchWorkers = 8

// DispatchDueResumesCommandHandler runs one dispatch cycle: it queries every
// enabled setting scheduled for the current minute, resolves each due user's
// assets, assembles the delivery payload, and posts it to the intake endpoint.
//
// Failure containment is per user. A skip, a download failure, a rejected
// delivery, or even a panic while processing one user is captured into that
// user's result; the rest of the batch proceeds. Only the initial due-user
// query is fatal to the cycle, since without it nothing can be dispatched.
//
// There is no delivery deduplication: each cycle whose minute matches a
// setting produces a fresh attempt, and a failed attempt is not retried until
// the schedule next matches.
type DispatchDueResumesCommandHandler struct {
	settings  ports.AutomationSettingRepository
	resolver  AssetResolver
	assembler services.PayloadAssembler
	intake    ports.IntakeGateway
	workers   int
	now       func() time.Time
}

// NewDispatchDueResumesCommandHandler creates the dispatch cycle handler.
// workers bounds concurrent per-user deliveries; values below 1 fall back to
// the default of 8.
func NewDispatchDueResumesCommandHandler(
	settings ports.AutomationSettingRepository,
	resolver AssetResolver,
	intake ports.IntakeGateway,
	workers int,
) DispatchDueResumesCommandHandler {
	if workers < 1 {
		workers = defaultDispatchWorkers
	}
	return DispatchDueResumesCommandHandler{
		settings:  settings,
		resolver:  resolver,
		assembler: services.NewPayloadAssembler(),
		intake:    intake,
		workers:   workers,
		now:       time.Now,
	}
}

// WithClock overrides the clock used to determine the current minute.
// Intended for tests.
func (h DispatchDueResumesCommandHandler) WithClock(now func() time.Time) DispatchDueResumesCommandHandler {
	h.now = now
	return h
}

// Handle runs one dispatch cycle and returns the per-user report.
// The current minute is read once at cycle start, so a slow batch cannot
// drift into matching a different minute mid-flight.
func (h *DispatchDueResumesCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchDueResumesCommand,
) (dispatch.Report, error) {
	if err := cmd.Validate(); err != nil {
		return dispatch.Report{}, err
	}

	at := kernel.ScheduleTimeFromClock(h.now())

	due, err := h.settings.GetAllEnabledAt(ctx, at)
	if err != nil {
		return dispatch.Report{}, err
	}

	results := make([]dispatch.DeliveryResult, len(due))
	sem := make(chan struct{}, h.workers)
	var wg sync.WaitGroup

	for i, setting := range due {
		wg.Add(1)
		sem <- struct{}{}

		go func(i int, setting *automation.Setting) {
			defer wg.Done()
			defer func() { <-sem }()

			results[i] = h.processSetting(ctx, setting)
		}(i, setting)
	}

	wg.Wait()

	return dispatch.NewReport(results), nil
}

// processSetting handles one due user end to end. Panics are recovered into
// an error result so a single bad record cannot take down the batch.
func (h *DispatchDueResumesCommandHandler) processSetting(
	ctx context.Context,
	setting *automation.Setting,
) (result dispatch.DeliveryResult) {
	userID := setting.UserID()

	defer func() {
		if r := recover(); r != nil {
			result = dispatch.NewErrorResult(userID, fmt.Sprintf("panic: %v", r))
		}
	}()

	if err := ctx.Err(); err != nil {
		return dispatch.NewErrorResult(userID, err.Error())
	}

	resolution, err := h.resolver.Resolve(ctx, setting)
	if err != nil {
		return dispatch.NewErrorResult(userID, err.Error())
	}

	if resolution.IsSkipped() {
		return dispatch.NewSkippedResult(userID, resolution.SkipReason(), resolution.SkipCause())
	}

	payload := h.assembler.Assemble(resolution.Assets())

	if err := h.intake.Deliver(ctx, payload); err != nil {
		return dispatch.NewErrorResult(userID, err.Error())
	}

	return dispatch.NewSuccessResult(userID)
}
