package commands

import (
	"context"
	"time"

	"resumeflow/internal/core/domain/model/feed"
)

// AddFeedSourceCommandHandler handles the business logic for feed source
// registration.
type AddFeedSourceCommandHandler struct {
	uowFactory FeedUoWFactory
}

// NewAddFeedSourceCommandHandler creates a handler for feed registration.
func NewAddFeedSourceCommandHandler(uowFactory FeedUoWFactory) AddFeedSourceCommandHandler {
	return AddFeedSourceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the feed registration command.
func (h *AddFeedSourceCommandHandler) Handle(ctx context.Context, cmd AddFeedSourceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	source, err := feed.NewSource(
		cmd.SourceID(),
		cmd.UserID(),
		cmd.FeedName(),
		cmd.FeedURL(),
		time.Now(),
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

	if err = uow.FeedSourceRepository().Add(ctx, source); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
