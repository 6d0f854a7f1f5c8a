package dispatch

import (
	"resumeflow/internal/core/domain/model/kernel"
)

// DeliveryResult is the outcome of processing one due user in one cycle.
// Results exist only inside the cycle report; they are not persisted.
type DeliveryResult struct {
	userID  kernel.UUID
	status  Status
	message string
}

// NewSuccessResult records that the intake endpoint accepted the delivery.
func NewSuccessResult(userID kernel.UUID) DeliveryResult {
	return DeliveryResult{
		userID:  userID,
		status:  StatusSuccess,
		message: "resume sent successfully",
	}
}

// NewErrorResult records a per-user failure with its cause. The message is
// the sole audit trail for the failure, so it must not be empty; a generic
// fallback is substituted if it is.
func NewErrorResult(userID kernel.UUID, message string) DeliveryResult {
	if message == "" {
		message = "delivery failed"
	}
	return DeliveryResult{
		userID:  userID,
		status:  StatusError,
		message: message,
	}
}

// NewSkippedResult records an intentional skip. An optional cause is appended
// to the reason text, e.g. for download failures.
func NewSkippedResult(userID kernel.UUID, reason SkipReason, cause string) DeliveryResult {
	message := reason.String()
	if cause != "" {
		message += ": " + cause
	}
	return DeliveryResult{
		userID:  userID,
		status:  StatusSkipped,
		message: message,
	}
}

// UserID returns the user this result belongs to.
func (r DeliveryResult) UserID() kernel.UUID {
	return r.userID
}

// Status returns the outcome classification.
func (r DeliveryResult) Status() Status {
	return r.status
}

// Message returns the human-readable outcome description.
func (r DeliveryResult) Message() string {
	return r.message
}
