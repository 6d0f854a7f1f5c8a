package ports

import (
	"context"

	"resumeflow/internal/core/domain/model/dispatch"
)

// IntakeGateway performs the outbound delivery of one payload to the fixed
// external intake endpoint.
//
// A nil return means the endpoint accepted the delivery (2xx response). Any
// other status or a transport-level failure (timeout, DNS, connection reset)
// is returned as a non-nil error whose text becomes the report message.
// The gateway never retries: at most one attempt is made per user per
// matching minute, and retries are simply the next cycle's concern. A
// bounded per-call timeout is required so one slow destination cannot stall
// the batch.
type IntakeGateway interface {
	Deliver(ctx context.Context, payload dispatch.Payload) error
}
