package dispatch

import (
	"resumeflow/internal/core/domain/model/resume"
)

// ResolvedAssets is everything needed to build one user's delivery payload:
// the resume metadata and binary content, the contact number, and the
// registered feed URLs. The contact number and feed list may be empty;
// absence of either is not an error.
type ResolvedAssets struct {
	resume         *resume.Resume
	content        []byte
	whatsappNumber string
	feedURLs       []string
}

// NewResolvedAssets bundles the resolved pieces for payload assembly.
func NewResolvedAssets(
	r *resume.Resume,
	content []byte,
	whatsappNumber string,
	feedURLs []string,
) ResolvedAssets {
	return ResolvedAssets{
		resume:         r,
		content:        content,
		whatsappNumber: whatsappNumber,
		feedURLs:       feedURLs,
	}
}

// Resume returns the resume metadata.
func (a ResolvedAssets) Resume() *resume.Resume {
	return a.resume
}

// Content returns the resume binary.
func (a ResolvedAssets) Content() []byte {
	return a.content
}

// WhatsAppNumber returns the contact number; empty when no profile exists.
func (a ResolvedAssets) WhatsAppNumber() string {
	return a.whatsappNumber
}

// FeedURLs returns the user's feed URLs in repository fetch order.
func (a ResolvedAssets) FeedURLs() []string {
	return a.feedURLs
}

// FirstFeedURL returns the first feed URL by fetch order, or the empty
// string when the user has no feeds.
func (a ResolvedAssets) FirstFeedURL() string {
	if len(a.feedURLs) == 0 {
		return ""
	}
	return a.feedURLs[0]
}

// Resolution is the tagged outcome of resolving one user's assets: either
// the assets are available, or the user is skipped for a stated reason.
// The dispatch loop branches on IsSkipped instead of using errors for
// control flow.
type Resolution struct {
	assets     ResolvedAssets
	skipped    bool
	skipReason SkipReason
	skipCause  string
}

// NewResolvedResolution wraps successfully resolved assets.
func NewResolvedResolution(assets ResolvedAssets) Resolution {
	return Resolution{assets: assets}
}

// NewSkippedResolution marks the user as skipped. cause may carry the
// underlying error text (e.g. for download failures) and may be empty.
func NewSkippedResolution(reason SkipReason, cause string) Resolution {
	return Resolution{
		skipped:    true,
		skipReason: reason,
		skipCause:  cause,
	}
}

// IsSkipped reports whether the user should be skipped.
func (r Resolution) IsSkipped() bool {
	return r.skipped
}

// Assets returns the resolved assets; only meaningful when not skipped.
func (r Resolution) Assets() ResolvedAssets {
	return r.assets
}

// SkipReason returns why the user was skipped.
func (r Resolution) SkipReason() SkipReason {
	return r.skipReason
}

// SkipCause returns the underlying error text for the skip, if any.
func (r Resolution) SkipCause() string {
	return r.skipCause
}
