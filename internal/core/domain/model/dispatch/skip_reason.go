package dispatch

// SkipReason explains why a due user was intentionally not delivered to.
// Skips are recoverable per-user outcomes, never cycle-level failures.
type SkipReason int

const (
	// SkipReasonUnknown represents an invalid or undefined reason.
	SkipReasonUnknown SkipReason = iota

	// SkipNoResumeSelected means the automation setting has no resume reference.
	SkipNoResumeSelected

	// SkipResumeNotFound means the referenced resume row is missing or owned
	// by another user (a dangling reference).
	SkipResumeNotFound

	// SkipDownloadFailed means the resume blob could not be fetched from the
	// object store.
	SkipDownloadFailed
)

// String returns the human-readable reason text used in report messages.
func (r SkipReason) String() string {
	switch r {
	case SkipNoResumeSelected:
		return "no resume selected"
	case SkipResumeNotFound:
		return "resume not found"
	case SkipDownloadFailed:
		return "resume download failed"
	default:
		return "unknown"
	}
}
