package order

import (
	"fmt"

	"taproom/internal/pkg/errs"
)

// Status is the journal state of a submitted order.
//
// State transitions:
//
//	Submitted ──> Dispatched
//
// Submitted orders wait in the journal for the relay job; Dispatched is final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Submitted is the status of every freshly assembled order.
	Submitted

	// Dispatched means the order event was published.
	Dispatched
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Submitted:  "Submitted",
		Dispatched: "Dispatched",
	}
}

// Validate accepts Submitted and Dispatched.
func (s Status) Validate() error {
	if s != Submitted && s != Dispatched {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Dispatch performs the Submitted -> Dispatched transition.
//
// Returns:
//   - Dispatched and nil when the current status is Submitted
//   - the current status and an error otherwise
func (s Status) Dispatch() (Status, error) {
	if s != Submitted {
		return s, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s order cannot be dispatched", s),
		)
	}
	return Dispatched, nil
}
