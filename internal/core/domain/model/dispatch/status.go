package dispatch

import (
	"fmt"

	"resumeflow/internal/pkg/errs"
)

// Status classifies the outcome of one user's delivery attempt within a
// cycle. The string forms are the exact values emitted in the cycle report.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusSuccess means the intake endpoint accepted the delivery.
	StatusSuccess

	// StatusError means resolution or delivery failed for this user.
	StatusError

	// StatusSkipped means the user was intentionally not delivered to,
	// e.g. because no resume was selected.
	StatusSkipped
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		StatusSuccess: "success",
		StatusError:   "error",
		StatusSkipped: "skipped",
	}
}

func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		StatusSuccess: "success",
		StatusError:   "error",
		StatusSkipped: "skipped",
	}
}

// Validate checks that the Status is one of success, error, or skipped.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase report form of the status. Invalid values
// render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
