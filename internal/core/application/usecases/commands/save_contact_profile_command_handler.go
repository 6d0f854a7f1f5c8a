package commands

import (
	"context"

	"resumeflow/internal/core/domain/model/contact"
)

// SaveContactProfileCommandHandler handles the business logic for contact
// profile upserts.
type SaveContactProfileCommandHandler struct {
	uowFactory ContactUoWFactory
}

// NewSaveContactProfileCommandHandler creates a handler for contact profile
// upserts.
func NewSaveContactProfileCommandHandler(uowFactory ContactUoWFactory) SaveContactProfileCommandHandler {
	return SaveContactProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the contact profile upsert command.
func (h *SaveContactProfileCommandHandler) Handle(ctx context.Context, cmd SaveContactProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	profile, err := contact.NewProfile(cmd.UserID(), cmd.WhatsAppNumber())
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

	if err = uow.ContactProfileRepository().Upsert(ctx, profile); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
