package task

import (
	"fmt"

	"fleetplan/internal/pkg/errs"
)

// Status tracks whether a task has been placed into a stored plan.
//
// State transitions:
//
//	Unplanned ──> Planned
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Unplanned is the initial status; the task waits for the next planning run.
	Unplanned

	// Planned indicates the task is part of the latest stored plan.
	Planned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Unplanned: "Unplanned",
		Planned:   "Planned",
	}
}

// Validate checks that s is Unplanned or Planned.
func (s Status) Validate() error {
	if s != Unplanned && s != Planned {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus is the inverse of String for persisted values.
func ParseStatus(value string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == value && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", value))
}

// Plan transitions the status to Planned.
//
// Valid transitions:
//   - Unplanned -> Planned
func (s Status) Plan() (Status, error) {
	if s != Unplanned {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to plan", s.String()),
		)
	}

	return Planned, nil
}
