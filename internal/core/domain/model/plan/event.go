package plan

import (
	"fmt"

	"fleetplan/internal/pkg/errs"
)

// Event is the kind of operation an Action performs on its task.
type Event int

const (
	// EventUnknown catches uninitialized Event values.
	EventUnknown Event = iota
	// EventPick loads the task at its pickup location.
	EventPick
	// EventDeliver unloads the task at its delivery location.
	EventDeliver
)

// Validate checks that e is EventPick or EventDeliver.
func (e Event) Validate() error {
	if e != EventPick && e != EventDeliver {
		return errs.NewValueIsInvalidErrorWithCause("event is invalid", fmt.Errorf("%d is not a valid event", e))
	}
	return nil
}

func (e Event) String() string {
	switch e {
	case EventPick:
		return "Pick"
	case EventDeliver:
		return "Deliver"
	default:
		return "Unknown"
	}
}

// ParseEvent is the inverse of String for persisted values.
func ParseEvent(value string) (Event, error) {
	switch value {
	case "Pick":
		return EventPick, nil
	case "Deliver":
		return EventDeliver, nil
	default:
		return EventUnknown, errs.NewValueIsInvalidErrorWithCause("event is invalid", fmt.Errorf("%q is not a valid event", value))
	}
}
