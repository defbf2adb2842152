package plan

import (
	"errors"
	"fmt"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/task"
)

// Action is one timed operation of a route: picking up or delivering a task.
// It is a small immutable value and is copied freely between routes.
type Action struct {
	event Event
	task  *task.Task
}

// NewAction validates both parts of the action.
func NewAction(event Event, t *task.Task) (Action, error) {
	if err := errors.Join(event.Validate(), t.Validate()); err != nil {
		return Action{}, err
	}
	return Action{event: event, task: t}, nil
}

// Pick returns the pickup action of t. t must be a constructed task.
func Pick(t *task.Task) Action {
	return Action{event: EventPick, task: t}
}

// Deliver returns the delivery action of t. t must be a constructed task.
func Deliver(t *task.Task) Action {
	return Action{event: EventDeliver, task: t}
}

func (a Action) Event() Event {
	return a.event
}

func (a Action) Task() *task.Task {
	return a.task
}

// DifferentialWeight is the load change caused by the action:
// +weight for a pickup, -weight for a delivery.
func (a Action) DifferentialWeight() int {
	if a.event == EventPick {
		return a.task.Weight()
	}
	return -a.task.Weight()
}

// Location is where the action takes place.
func (a Action) Location() kernel.Location {
	if a.event == EventPick {
		return a.task.Pickup()
	}
	return a.task.Delivery()
}

func (a Action) String() string {
	return fmt.Sprintf("%s(%s)", a.event, a.task.ID())
}

// Route is the ordered sequence of actions performed by one vehicle.
// The position of an action in the route is its execution time.
type Route []Action

// Load returns the vehicle load right after the action at index upto,
// i.e. the running sum of differential weights of route[0..upto].
// Load(route, -1) is the empty-vehicle load, 0.
func Load(route Route, upto int) int {
	load := 0
	for i := 0; i <= upto; i++ {
		load += route[i].DifferentialWeight()
	}
	return load
}

// clone returns an independently owned copy of r.
func (r Route) clone() Route {
	out := make(Route, len(r))
	copy(out, r)
	return out
}

// indexOf returns the position of the action of t with the given event, or -1.
func (r Route) indexOf(event Event, t *task.Task) int {
	for i, a := range r {
		if a.event == event && a.task.IsEqual(t) {
			return i
		}
	}
	return -1
}
