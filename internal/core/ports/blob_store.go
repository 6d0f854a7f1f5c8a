package ports

import (
	"context"
)

// BlobStore is the object-store contract for resume binaries. The store is
// an externally provided service addressed by opaque path strings; all
// operations must apply a bounded timeout so one slow store call cannot
// stall a dispatch batch.
type BlobStore interface {
	// Download fetches the object at the given path.
	// Returns an errs.ObjectNotFoundError when the object is missing.
	Download(ctx context.Context, path string) ([]byte, error)

	// Upload stores content at the given path with the declared media type,
	// replacing any existing object.
	Upload(ctx context.Context, path string, content []byte, contentType string) error

	// Remove deletes the object at the given path.
	// Returns an errs.ObjectNotFoundError when the object is already gone;
	// deletion flows tolerate that case.
	Remove(ctx context.Context, path string) error
}
