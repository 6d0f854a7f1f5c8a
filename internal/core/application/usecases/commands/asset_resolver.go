package commands

import (
	"context"
	"errors"

	"resumeflow/internal/core/domain/model/automation"
	"resumeflow/internal/core/domain/model/dispatch"
	"resumeflow/internal/core/ports"
	"resumeflow/internal/pkg/errs"
)

// AssetResolver gathers everything needed to deliver one user's resume: the
// selected resume's metadata and binary, the contact number, and the feed
// URLs. Resolution outcomes are expressed as a tagged dispatch.Resolution
// rather than errors, so the dispatch loop can distinguish intentional skips
// from unexpected infrastructure failures.
//
// Skip policy:
//   - no resume selected on the setting      -> SkipNoResumeSelected
//   - resume row missing or owned elsewhere  -> SkipResumeNotFound
//   - blob download failure                  -> SkipDownloadFailed (with cause)
//
// A missing contact profile or an empty feed list are defaults (empty
// strings), not skips. Only an unexpected repository failure is returned as
// an error, and even that is contained per-user by the caller.
type AssetResolver struct {
	resumes  ports.ResumeRepository
	contacts ports.ContactProfileRepository
	feeds    ports.FeedSourceRepository
	blobs    ports.BlobStore
}

// NewAssetResolver creates a resolver over the given read-side dependencies.
func NewAssetResolver(
	resumes ports.ResumeRepository,
	contacts ports.ContactProfileRepository,
	feeds ports.FeedSourceRepository,
	blobs ports.BlobStore,
) AssetResolver {
	return AssetResolver{
		resumes:  resumes,
		contacts: contacts,
		feeds:    feeds,
		blobs:    blobs,
	}
}

// Resolve fetches the assets for one automation setting.
func (r AssetResolver) Resolve(ctx context.Context, setting *automation.Setting) (dispatch.Resolution, error) {
	if err := setting.Validate(); err != nil {
		return dispatch.Resolution{}, err
	}

	resumeID := setting.SelectedResumeID()
	if resumeID == nil {
		return dispatch.NewSkippedResolution(dispatch.SkipNoResumeSelected, ""), nil
	}

	selected, err := r.resumes.GetForOwner(ctx, *resumeID, setting.UserID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return dispatch.NewSkippedResolution(dispatch.SkipResumeNotFound, ""), nil
		}
		return dispatch.Resolution{}, err
	}

	whatsappNumber := ""
	profile, err := r.contacts.Get(ctx, setting.UserID())
	if err == nil {
		whatsappNumber = profile.WhatsAppNumber()
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return dispatch.Resolution{}, err
	}

	sources, err := r.feeds.GetAllForUser(ctx, setting.UserID())
	if err != nil {
		return dispatch.Resolution{}, err
	}

	feedURLs := make([]string, 0, len(sources))
	for _, source := range sources {
		feedURLs = append(feedURLs, source.FeedURL())
	}

	content, err := r.blobs.Download(ctx, selected.StoragePath())
	if err != nil {
		return dispatch.NewSkippedResolution(dispatch.SkipDownloadFailed, err.Error()), nil
	}

	return dispatch.NewResolvedResolution(
		dispatch.NewResolvedAssets(selected, content, whatsappNumber, feedURLs),
	), nil
}
