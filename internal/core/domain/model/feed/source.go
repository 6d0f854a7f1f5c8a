// Package feed contains the job-feed source aggregate. A user may register
// zero or more feed sources; the dispatcher includes the first one returned
// by the repository in the delivery payload.
package feed

import (
	"errors"
	"time"

	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/pkg/errs"
)

var (
	// ErrSourceIsNotConstructed is returned when a Source instance was not
	// created through NewSource or RestoreSource.
	ErrSourceIsNotConstructed = errors.New("FeedSource must be created via NewSource or RestoreSource")
)

// Source is one registered job feed (name plus URL) belonging to a user.
type Source struct {
	// id is the unique identifier for the feed source
	id kernel.UUID

	// userID is the owning user
	userID kernel.UUID

	// feedName is the user-facing label
	feedName string

	// feedURL is the feed location included in delivery payloads
	feedURL string

	// createdAt records when the source was registered
	createdAt time.Time

	// isConstructed ensures the source was created via a constructor
	isConstructed bool
}

// NewSource creates a validated feed source.
func NewSource(
	id kernel.UUID,
	userID kernel.UUID,
	feedName string,
	feedURL string,
	createdAt time.Time,
) (*Source, error) {
	s := &Source{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setUserID(userID),
		s.setFeedName(feedName),
		s.setFeedURL(feedURL),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSource reconstructs a feed source from persistence, applying the
// same validation as NewSource.
func RestoreSource(
	id kernel.UUID,
	userID kernel.UUID,
	feedName string,
	feedURL string,
	createdAt time.Time,
) (*Source, error) {
	return NewSource(id, userID, feedName, feedURL, createdAt)
}

// Validate ensures the Source was created through a constructor.
func (s *Source) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSourceIsNotConstructed
	}
	return nil
}

// ID returns the feed source's unique identifier.
func (s *Source) ID() kernel.UUID {
	return s.id
}

// UserID returns the owning user's identifier.
func (s *Source) UserID() kernel.UUID {
	return s.userID
}

// FeedName returns the user-facing label.
func (s *Source) FeedName() string {
	return s.feedName
}

// FeedURL returns the feed location.
func (s *Source) FeedURL() string {
	return s.feedURL
}

// CreatedAt returns the registration timestamp.
func (s *Source) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Source) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Source) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.userID = id
	return nil
}

func (s *Source) setFeedName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("feedName")
	}
	s.feedName = name
	return nil
}

func (s *Source) setFeedURL(url string) error {
	if url == "" {
		return errs.NewValueIsRequiredError("feedUrl")
	}
	s.feedURL = url
	return nil
}
