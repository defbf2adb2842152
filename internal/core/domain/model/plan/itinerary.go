package plan

import (
	"errors"
	"fmt"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/task"
	"fleetplan/internal/core/domain/model/vehicle"
)

// ErrPatherIsRequired is returned by ToItineraries when no path provider is given.
var ErrPatherIsRequired = errors.New("a path provider is required to build itineraries")

// Pather lists the cells travelled between two locations, excluding from and including to.
type Pather interface {
	Path(from, to kernel.Location) ([]kernel.Location, error)
}

// StepKind is the kind of an executable itinerary step.
type StepKind int

const (
	StepUnknown StepKind = iota
	StepMove
	StepPickup
	StepDeliver
)

func (k StepKind) String() string {
	switch k {
	case StepMove:
		return "Move"
	case StepPickup:
		return "Pickup"
	case StepDeliver:
		return "Deliver"
	default:
		return "Unknown"
	}
}

// Step is one executable operation: travel one leg to Location, or pick up / deliver
// Task at Location.
type Step struct {
	Kind     StepKind
	Location kernel.Location
	Task     *task.Task
}

func (s Step) String() string {
	if s.Task == nil {
		return fmt.Sprintf("%s %s", s.Kind, s.Location)
	}
	return fmt.Sprintf("%s %s at %s", s.Kind, s.Task.ID(), s.Location)
}

// Itinerary is the executable form of one vehicle's route.
type Itinerary struct {
	Vehicle *vehicle.Vehicle
	Start   kernel.Location
	Steps   []Step
}

// ToItineraries expands every route into explicit travel steps followed by the pickup or
// delivery itself. The result has one itinerary per vehicle, in fleet order.
func (p *PlanState) ToItineraries(pather Pather) ([]Itinerary, error) {
	if pather == nil {
		return nil, ErrPatherIsRequired
	}

	itineraries := make([]Itinerary, 0, len(p.vehicles))
	for i, v := range p.vehicles {
		itinerary := Itinerary{Vehicle: v, Start: v.Home()}
		current := v.Home()

		for _, a := range p.routes[i] {
			next := a.Location()
			path, err := pather.Path(current, next)
			if err != nil {
				return nil, fmt.Errorf("path for %s of vehicle %s: %w", a, v.Name(), err)
			}
			for _, cell := range path {
				itinerary.Steps = append(itinerary.Steps, Step{Kind: StepMove, Location: cell})
			}

			kind := StepPickup
			if a.event == EventDeliver {
				kind = StepDeliver
			}
			itinerary.Steps = append(itinerary.Steps, Step{Kind: kind, Location: next, Task: a.task})
			current = next
		}

		itineraries = append(itineraries, itinerary)
	}

	return itineraries, nil
}
