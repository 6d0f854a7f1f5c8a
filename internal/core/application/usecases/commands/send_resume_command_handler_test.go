package commands_test

import (
	"testing"
	"time"

	"resumeflow/internal/core/application/usecases/commands"
	"resumeflow/internal/core/domain/model/dispatch"
	"resumeflow/internal/core/domain/model/feed"
	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSendResumeCommandHandler_Handle_SendsFullFeedList(t *testing.T) {
	ctx := t.Context()

	resumeID := kernel.NewUUID()
	setting := newDueSetting(t, 9, 0, &resumeID)
	stored := newStoredResume(t, setting.UserID())

	first, err := feed.NewSource(kernel.NewUUID(), setting.UserID(), "jobs", "http://x/feed", time.Now())
	require.NoError(t, err)
	second, err := feed.NewSource(kernel.NewUUID(), setting.UserID(), "more", "http://y/feed", time.Now())
	require.NoError(t, err)

	settings, resumeRepo, contactRepo, feedRepo, blobs, intake := newDispatchMocks()

	cmd, err := commands.NewSendResumeCommand(setting.UserID())
	require.NoError(t, err)

	settings.On("Get", ctx, setting.UserID()).Return(setting, nil).Once()
	resumeRepo.On("GetForOwner", ctx, resumeID, setting.UserID()).Return(stored, nil).Once()
	contactRepo.On("Get", ctx, setting.UserID()).
		Return(nil, errs.NewObjectNotFoundError("userId", setting.UserID().String())).Once()
	feedRepo.On("GetAllForUser", ctx, setting.UserID()).
		Return([]*feed.Source{first, second}, nil).Once()
	blobs.On("Download", ctx, stored.StoragePath()).Return([]byte("pdf-bytes"), nil).Once()
	intake.On("Deliver", ctx, mock.MatchedBy(func(p dispatch.Payload) bool {
		return p.FeedFieldName() == dispatch.FieldFeedList &&
			p.FeedFieldValue() == `["http://x/feed","http://y/feed"]`
	})).Return(nil).Once()

	resolver := commands.NewAssetResolver(resumeRepo, contactRepo, feedRepo, blobs)
	handler := commands.NewSendResumeCommandHandler(settings, resolver, intake)

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	intake.AssertExpectations(t)
}

func TestSendResumeCommandHandler_Handle_NoSetting(t *testing.T) {
	ctx := t.Context()

	userID := kernel.NewUUID()
	cmd, err := commands.NewSendResumeCommand(userID)
	require.NoError(t, err)

	settings, resumeRepo, contactRepo, feedRepo, blobs, intake := newDispatchMocks()

	settings.On("Get", ctx, userID).
		Return(nil, errs.NewObjectNotFoundError("userId", userID.String())).Once()

	resolver := commands.NewAssetResolver(resumeRepo, contactRepo, feedRepo, blobs)
	handler := commands.NewSendResumeCommandHandler(settings, resolver, intake)

	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	intake.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything)
}

func TestSendResumeCommandHandler_Handle_SkipBecomesError(t *testing.T) {
	ctx := t.Context()

	setting := newDueSetting(t, 9, 0, nil)
	cmd, err := commands.NewSendResumeCommand(setting.UserID())
	require.NoError(t, err)

	settings, resumeRepo, contactRepo, feedRepo, blobs, intake := newDispatchMocks()

	settings.On("Get", ctx, setting.UserID()).Return(setting, nil).Once()

	resolver := commands.NewAssetResolver(resumeRepo, contactRepo, feedRepo, blobs)
	handler := commands.NewSendResumeCommandHandler(settings, resolver, intake)

	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSendNotPossible)
	assert.Contains(t, err.Error(), "no resume selected")
	intake.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything)
}
