// Package http exposes the application use cases over a REST surface built
// on echo. Handlers translate between transport shapes and commands/queries;
// no business logic lives here.
package http

import (
	"errors"
	"io"
	"net/http"

	"resumeflow/internal/core/application/usecases/commands"
	"resumeflow/internal/core/application/usecases/queries"
	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// maxResumeUploadBytes caps the accepted resume size.
const maxResumeUploadBytes = 10 << 20

// ErrorResponse is the JSON error body returned by every handler.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DispatchResultResponse is one per-user outcome in the dispatch report.
type DispatchResultResponse struct {
	UserID  string `json:"user_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DispatchReportResponse is the JSON body of a completed dispatch cycle.
type DispatchReportResponse struct {
	Processed int                      `json:"processed"`
	Results   []DispatchResultResponse `json:"results"`
}

// ResumeResponse is one resume in the listing.
type ResumeResponse struct {
	ID         string `json:"id"`
	FileName   string `json:"file_name"`
	UploadedAt string `json:"uploaded_at"`
}

// FeedSourceResponse is one feed source in the listing.
type FeedSourceResponse struct {
	ID        string `json:"id"`
	FeedName  string `json:"feed_name"`
	FeedURL   string `json:"feed_url"`
	CreatedAt string `json:"created_at"`
}

// AutomationSettingRequest is the upsert body for a user's automation setting.
type AutomationSettingRequest struct {
	Enabled          bool    `json:"enabled"`
	ScheduledTime    string  `json:"scheduled_time"`
	SelectedResumeID *string `json:"selected_resume_id"`
}

// ContactProfileRequest is the upsert body for a user's contact profile.
type ContactProfileRequest struct {
	WhatsAppNumber string `json:"whatsapp_number"`
}

// FeedSourceRequest is the registration body for a feed source.
type FeedSourceRequest struct {
	FeedName string `json:"feed_name"`
	FeedURL  string `json:"feed_url"`
}

// Server wires HTTP routes to the application use cases.
type Server struct {
	// Command handlers
	dispatchHandler     commands.DispatchDueResumesCommandHandler
	uploadResumeHandler commands.UploadResumeCommandHandler
	deleteResumeHandler commands.DeleteResumeCommandHandler
	saveSettingHandler  commands.SaveAutomationSettingCommandHandler
	saveContactHandler  commands.SaveContactProfileCommandHandler
	addFeedHandler      commands.AddFeedSourceCommandHandler
	sendResumeHandler   commands.SendResumeCommandHandler

	// Query handlers
	getResumesHandler     queries.GetResumesQueryHandler
	getFeedSourcesHandler queries.GetFeedSourcesQueryHandler
}

// NewServer creates an HTTP server over the given command and query handlers.
func NewServer(
	dispatchHandler commands.DispatchDueResumesCommandHandler,
	uploadResumeHandler commands.UploadResumeCommandHandler,
	deleteResumeHandler commands.DeleteResumeCommandHandler,
	saveSettingHandler commands.SaveAutomationSettingCommandHandler,
	saveContactHandler commands.SaveContactProfileCommandHandler,
	addFeedHandler commands.AddFeedSourceCommandHandler,
	sendResumeHandler commands.SendResumeCommandHandler,
	getResumesHandler queries.GetResumesQueryHandler,
	getFeedSourcesHandler queries.GetFeedSourcesQueryHandler,
) *Server {
	return &Server{
		dispatchHandler:       dispatchHandler,
		uploadResumeHandler:   uploadResumeHandler,
		deleteResumeHandler:   deleteResumeHandler,
		saveSettingHandler:    saveSettingHandler,
		saveContactHandler:    saveContactHandler,
		addFeedHandler:        addFeedHandler,
		sendResumeHandler:     sendResumeHandler,
		getResumesHandler:     getResumesHandler,
		getFeedSourcesHandler: getFeedSourcesHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/dispatch", s.RunDispatchCycle)

	api.POST("/users/:userId/resumes", s.UploadResume)
	api.GET("/users/:userId/resumes", s.GetResumes)
	api.DELETE("/users/:userId/resumes/:resumeId", s.DeleteResume)

	api.PUT("/users/:userId/automation", s.SaveAutomationSetting)
	api.PUT("/users/:userId/contact", s.SaveContactProfile)

	api.POST("/users/:userId/feeds", s.AddFeedSource)
	api.GET("/users/:userId/feeds", s.GetFeedSources)

	api.POST("/users/:userId/send", s.SendResume)
}

// RunDispatchCycle handles POST /api/v1/dispatch - runs one dispatch cycle
// for the current minute and returns the per-user report.
func (s *Server) RunDispatchCycle(ctx echo.Context) error {
	cmd := commands.NewDispatchDueResumesCommand()

	report, err := s.dispatchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Dispatch cycle failed: " + err.Error(),
		})
	}

	results := make([]DispatchResultResponse, 0, report.Processed())
	for _, result := range report.Results() {
		results = append(results, DispatchResultResponse{
			UserID:  result.UserID().String(),
			Status:  result.Status().String(),
			Message: result.Message(),
		})
	}

	return ctx.JSON(http.StatusOK, DispatchReportResponse{
		Processed: report.Processed(),
		Results:   results,
	})
}

// UploadResume handles POST /api/v1/users/:userId/resumes - stores a resume
// uploaded as multipart form data under the "resume" field.
func (s *Server) UploadResume(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	fileHeader, err := ctx.FormFile("resume")
	if err != nil {
		return badRequest(ctx, "Missing resume file")
	}
	if fileHeader.Size > maxResumeUploadBytes {
		return ctx.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Code:    http.StatusRequestEntityTooLarge,
			Message: "Resume file is too large",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return internalError(ctx, "Failed to read resume file")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return internalError(ctx, "Failed to read resume file")
	}

	resumeID := kernel.NewUUID()
	cmd, err := commands.NewUploadResumeCommand(resumeID, userID, fileHeader.Filename, content)
	if err != nil {
		return badRequest(ctx, "Invalid resume data: "+err.Error())
	}

	if handleErr := s.uploadResumeHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to upload resume")
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": resumeID.String()})
}

// GetResumes handles GET /api/v1/users/:userId/resumes - lists the user's
// resumes, newest first.
func (s *Server) GetResumes(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	query, err := queries.NewGetResumesQuery(userID)
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	resumes, err := s.getResumesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve resumes")
	}

	response := make([]ResumeResponse, len(resumes))
	for i, r := range resumes {
		response[i] = ResumeResponse{
			ID:         r.ID.String(),
			FileName:   r.FileName,
			UploadedAt: r.UploadedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteResume handles DELETE /api/v1/users/:userId/resumes/:resumeId -
// removes a resume row and its stored binary.
func (s *Server) DeleteResume(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	resumeID, err := kernel.UUIDFromString(ctx.Param("resumeId"))
	if err != nil {
		return badRequest(ctx, "Invalid resume ID")
	}

	cmd, err := commands.NewDeleteResumeCommand(resumeID, userID)
	if err != nil {
		return badRequest(ctx, "Invalid resume data: "+err.Error())
	}

	if handleErr := s.deleteResumeHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return notFound(ctx, "Resume not found")
		}
		return internalError(ctx, "Failed to delete resume")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SaveAutomationSetting handles PUT /api/v1/users/:userId/automation -
// creates or replaces the user's automation setting.
func (s *Server) SaveAutomationSetting(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	var request AutomationSettingRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	scheduledTime, err := kernel.ParseScheduleTime(request.ScheduledTime)
	if err != nil {
		return badRequest(ctx, "Invalid scheduled time: "+err.Error())
	}

	var selectedResumeID *kernel.UUID
	if request.SelectedResumeID != nil {
		resumeID, idErr := kernel.UUIDFromString(*request.SelectedResumeID)
		if idErr != nil {
			return badRequest(ctx, "Invalid resume ID")
		}
		selectedResumeID = &resumeID
	}

	cmd, err := commands.NewSaveAutomationSettingCommand(userID, request.Enabled, scheduledTime, selectedResumeID)
	if err != nil {
		return badRequest(ctx, "Invalid setting data: "+err.Error())
	}

	if handleErr := s.saveSettingHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return notFound(ctx, "Referenced resume not found")
		}
		return internalError(ctx, "Failed to save setting")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SaveContactProfile handles PUT /api/v1/users/:userId/contact - creates or
// replaces the user's contact profile.
func (s *Server) SaveContactProfile(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	var request ContactProfileRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSaveContactProfileCommand(userID, request.WhatsAppNumber)
	if err != nil {
		return badRequest(ctx, "Invalid contact data: "+err.Error())
	}

	if handleErr := s.saveContactHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to save contact profile")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddFeedSource handles POST /api/v1/users/:userId/feeds - registers a job
// feed for the user.
func (s *Server) AddFeedSource(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	var request FeedSourceRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sourceID := kernel.NewUUID()
	cmd, err := commands.NewAddFeedSourceCommand(sourceID, userID, request.FeedName, request.FeedURL)
	if err != nil {
		return badRequest(ctx, "Invalid feed data: "+err.Error())
	}

	if handleErr := s.addFeedHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to register feed source")
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": sourceID.String()})
}

// GetFeedSources handles GET /api/v1/users/:userId/feeds - lists the user's
// feed sources in registration order.
func (s *Server) GetFeedSources(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	query, err := queries.NewGetFeedSourcesQuery(userID)
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	sources, err := s.getFeedSourcesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve feed sources")
	}

	response := make([]FeedSourceResponse, len(sources))
	for i, source := range sources {
		response[i] = FeedSourceResponse{
			ID:        source.ID.String(),
			FeedName:  source.FeedName,
			FeedURL:   source.FeedURL,
			CreatedAt: source.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SendResume handles POST /api/v1/users/:userId/send - delivers the user's
// selected resume immediately, outside the daily schedule.
func (s *Server) SendResume(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	cmd, err := commands.NewSendResumeCommand(userID)
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	if handleErr := s.sendResumeHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			return notFound(ctx, "Automation setting not found")
		case errors.Is(handleErr, commands.ErrSendNotPossible):
			return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Code:    http.StatusUnprocessableEntity,
				Message: handleErr.Error(),
			})
		default:
			return internalError(ctx, "Failed to send resume")
		}
	}

	return ctx.NoContent(http.StatusAccepted)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
