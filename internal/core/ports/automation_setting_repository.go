// Package ports defines the contracts between the application core and
// infrastructure: repositories for the relational records, the blob store
// holding resume binaries, and the gateway to the external intake endpoint.
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"resumeflow/internal/core/domain/model/automation"
	"resumeflow/internal/core/domain/model/kernel"
)

// AutomationSettingRepository defines the persistence contract for per-user
// automation settings. Settings are saved wholesale and keyed by user.
type AutomationSettingRepository interface {
	// Upsert creates or replaces the user's setting. Settings are never
	// partially patched; the whole record is written.
	Upsert(ctx context.Context, setting *automation.Setting) error

	// Get retrieves the setting for a user.
	// Returns an errs.ObjectNotFoundError when the user has no setting.
	Get(ctx context.Context, userID kernel.UUID) (*automation.Setting, error)

	// GetAllEnabledAt retrieves every enabled setting whose scheduled time
	// equals the given minute. This is the dispatcher's due-user query;
	// ordering is irrelevant at the expected scale and no pagination is
	// applied. A query failure here aborts the whole cycle, since nothing
	// can be dispatched without knowing who is due.
	//
	// Rows with a malformed stored time never match any minute and are
	// therefore never due, rather than surfacing as errors.
	GetAllEnabledAt(ctx context.Context, at kernel.ScheduleTime) ([]*automation.Setting, error)
}
