package commands_test

import (
	"errors"
	"testing"

	"resumeflow/internal/core/application/usecases/commands"
	"resumeflow/internal/core/domain/model/dispatch"
	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/core/domain/model/resume"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUploadResumeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	resumeID := kernel.NewUUID()
	userID := kernel.NewUUID()
	content := []byte("pdf-bytes")

	cmd, err := commands.NewUploadResumeCommand(resumeID, userID, "cv.pdf", content)
	require.NoError(t, err)

	expectedPath := "resumes/" + userID.String() + "/" + resumeID.String() + "/cv.pdf"

	resumeRepo := new(ResumeRepoMock)
	blobs := new(BlobStoreMock)
	uow := new(ResumeUoWMock)
	factory := new(ResumeUoWFactoryMock)

	blobs.On("Upload", ctx, expectedPath, content, dispatch.ResumeContentType).Return(nil).Once()
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ResumeRepository").Return(resumeRepo).Once()
	resumeRepo.On("Add", ctx, mock.MatchedBy(func(r *resume.Resume) bool {
		return r.ID().IsEqual(resumeID) &&
			r.IsOwnedBy(userID) &&
			r.FileName() == "cv.pdf" &&
			r.StoragePath() == expectedPath
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewUploadResumeCommandHandler(factory, blobs)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	blobs.AssertExpectations(t)
	uow.AssertExpectations(t)
	resumeRepo.AssertExpectations(t)
}

func TestUploadResumeCommandHandler_Handle_UploadErrorSkipsMetadata(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewUploadResumeCommand(kernel.NewUUID(), kernel.NewUUID(), "cv.pdf", []byte("x"))
	require.NoError(t, err)

	blobs := new(BlobStoreMock)
	factory := new(ResumeUoWFactoryMock)

	blobs.On("Upload", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("store unavailable")).Once()

	handler := commands.NewUploadResumeCommandHandler(factory, blobs)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "store unavailable")
	factory.AssertNotCalled(t, "Create")
}

func TestUploadResumeCommandHandler_Handle_AddErrorRemovesBlob(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewUploadResumeCommand(kernel.NewUUID(), kernel.NewUUID(), "cv.pdf", []byte("x"))
	require.NoError(t, err)

	resumeRepo := new(ResumeRepoMock)
	blobs := new(BlobStoreMock)
	uow := new(ResumeUoWMock)
	factory := new(ResumeUoWFactoryMock)

	blobs.On("Upload", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ResumeRepository").Return(resumeRepo).Once()
	resumeRepo.On("Add", ctx, mock.Anything).Return(errors.New("duplicate key")).Once()
	blobs.On("Remove", ctx, mock.Anything).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewUploadResumeCommandHandler(factory, blobs)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key")
	blobs.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewUploadResumeCommand_Validation(t *testing.T) {
	userID := kernel.NewUUID()

	_, err := commands.NewUploadResumeCommand(kernel.NewUUID(), userID, "", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fileName")

	_, err = commands.NewUploadResumeCommand(kernel.NewUUID(), userID, "cv.pdf", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content")

	_, err = commands.NewUploadResumeCommand(kernel.UUID{}, userID, "cv.pdf", []byte("x"))
	require.Error(t, err)
}
