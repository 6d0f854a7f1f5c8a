package commands

import (
	"errors"

	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/pkg/errs"
	"resumeflow/internal/pkg/guard"
)

var (
	ErrAddFeedSourceCommandIsNotConstructed = errors.New(
		"AddFeedSourceCommand must be created via NewAddFeedSourceCommand constructor",
	)
)

// AddFeedSourceCommand represents a request to register a job feed for a
// user. Feeds are append-only through this command; there is no update.
type AddFeedSourceCommand struct { //nolint:recvcheck //using for validation
	sourceID kernel.UUID
	userID   kernel.UUID
	feedName string
	feedURL  string

	guard guard.ConstructorGuard
}

// NewAddFeedSourceCommand creates a command to register a feed source.
// Validates that both IDs are valid and the name and URL are not empty.
func NewAddFeedSourceCommand(
	sourceID kernel.UUID,
	userID kernel.UUID,
	feedName string,
	feedURL string,
) (AddFeedSourceCommand, error) {
	cmd := AddFeedSourceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSourceID(sourceID),
		cmd.setUserID(userID),
		cmd.setFeedName(feedName),
		cmd.setFeedURL(feedURL),
	); err != nil {
		return AddFeedSourceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddFeedSourceCommandIsNotConstructed if validation fails.
func (c AddFeedSourceCommand) Validate() error {
	return c.guard.Validate(ErrAddFeedSourceCommandIsNotConstructed)
}

// SourceID returns the identifier assigned to the new feed source.
func (c AddFeedSourceCommand) SourceID() kernel.UUID {
	return c.sourceID
}

// UserID returns the owning user's identifier.
func (c AddFeedSourceCommand) UserID() kernel.UUID {
	return c.userID
}

// FeedName returns the user-facing label.
func (c AddFeedSourceCommand) FeedName() string {
	return c.feedName
}

// FeedURL returns the feed location.
func (c AddFeedSourceCommand) FeedURL() string {
	return c.feedURL
}

func (c *AddFeedSourceCommand) setSourceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.sourceID = id
	return nil
}

func (c *AddFeedSourceCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}

func (c *AddFeedSourceCommand) setFeedName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("feedName")
	}

	c.feedName = name
	return nil
}

func (c *AddFeedSourceCommand) setFeedURL(url string) error {
	if url == "" {
		return errs.NewValueIsRequiredError("feedUrl")
	}

	c.feedURL = url
	return nil
}
