package jobs

import (
	"context"
	"log/slog"

	"resumeflow/internal/core/application/usecases/commands"
	"resumeflow/internal/core/domain/model/dispatch"

	"github.com/robfig/cron/v3"
)

// ResumeDispatchJob runs the dispatch cycle at the top of every minute.
// Each cycle delivers the resumes of every user whose enabled automation is
// scheduled for that minute; the cycle handler contains failures per user,
// so the job only has to log the report.
type ResumeDispatchJob struct {
	handler commands.DispatchDueResumesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewResumeDispatchJob creates the per-minute dispatch job.
func NewResumeDispatchJob(
	handler commands.DispatchDueResumesCommandHandler,
	logger *slog.Logger,
) *ResumeDispatchJob {
	return &ResumeDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "resume_dispatch_job"),
	}
}

// Start schedules the dispatch cycle at second zero of every minute.
func (j *ResumeDispatchJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchDueResumesCommand()

		report, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Resume dispatch cycle failed", "error", handleErr)
			return
		}

		if report.Processed() == 0 {
			return
		}

		j.logger.InfoContext(ctx, "Resume dispatch cycle completed",
			"processed", report.Processed(),
			"success", report.CountByStatus(dispatch.StatusSuccess),
			"error", report.CountByStatus(dispatch.StatusError),
			"skipped", report.CountByStatus(dispatch.StatusSkipped),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Resume dispatch job started (running every minute)")
	return nil
}

// Stop stops the dispatch job.
func (j *ResumeDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Resume dispatch job stopped")
}
