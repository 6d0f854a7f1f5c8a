package commands_test

import (
	"testing"

	"resumeflow/internal/core/application/usecases/commands"
	"resumeflow/internal/core/domain/model/automation"
	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSaveAutomationSettingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	userID := kernel.NewUUID()
	stored := newStoredResume(t, userID)
	resumeID := stored.ID()

	nine, err := kernel.NewScheduleTime(9, 0)
	require.NoError(t, err)

	cmd, err := commands.NewSaveAutomationSettingCommand(userID, true, nine, &resumeID)
	require.NoError(t, err)

	settingRepo := new(SettingRepoMock)
	resumeRepo := new(ResumeRepoMock)
	uow := new(SettingUoWMock)
	factory := new(SettingUoWFactoryMock)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ResumeRepository").Return(resumeRepo).Once()
	resumeRepo.On("GetForOwner", ctx, resumeID, userID).Return(stored, nil).Once()
	uow.On("AutomationSettingRepository").Return(settingRepo).Once()
	settingRepo.On("Upsert", ctx, mock.MatchedBy(func(s *automation.Setting) bool {
		return s.UserID().IsEqual(userID) && s.IsEnabled() && s.ScheduledTime().IsEqual(nine)
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewSaveAutomationSettingCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	settingRepo.AssertExpectations(t)
	resumeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSaveAutomationSettingCommandHandler_Handle_NilResumeSkipsOwnershipCheck(t *testing.T) {
	ctx := t.Context()

	userID := kernel.NewUUID()
	nine, err := kernel.NewScheduleTime(9, 0)
	require.NoError(t, err)

	cmd, err := commands.NewSaveAutomationSettingCommand(userID, false, nine, nil)
	require.NoError(t, err)

	settingRepo := new(SettingRepoMock)
	uow := new(SettingUoWMock)
	factory := new(SettingUoWFactoryMock)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AutomationSettingRepository").Return(settingRepo).Once()
	settingRepo.On("Upsert", ctx, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewSaveAutomationSettingCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertNotCalled(t, "ResumeRepository")
	settingRepo.AssertExpectations(t)
}

func TestSaveAutomationSettingCommandHandler_Handle_ForeignResumeRejected(t *testing.T) {
	ctx := t.Context()

	userID := kernel.NewUUID()
	resumeID := kernel.NewUUID()
	nine, err := kernel.NewScheduleTime(9, 0)
	require.NoError(t, err)

	cmd, err := commands.NewSaveAutomationSettingCommand(userID, true, nine, &resumeID)
	require.NoError(t, err)

	settingRepo := new(SettingRepoMock)
	resumeRepo := new(ResumeRepoMock)
	uow := new(SettingUoWMock)
	factory := new(SettingUoWFactoryMock)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ResumeRepository").Return(resumeRepo).Once()
	resumeRepo.On("GetForOwner", ctx, resumeID, userID).
		Return(nil, errs.NewObjectNotFoundError("resumeId", resumeID.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewSaveAutomationSettingCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	settingRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}
