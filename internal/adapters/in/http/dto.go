package http

import (
	"time"

	"fleetplan/internal/core/application/usecases/queries"
	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/pkg/errs"

	"github.com/google/uuid"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Location struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewVehicle is the body of POST /api/v1/vehicles. A missing home gets a random cell.
type NewVehicle struct {
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CostPerKm float64   `json:"costPerKm"`
	Home      *Location `json:"home,omitempty"`
}

type Vehicle struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CostPerKm float64   `json:"costPerKm"`
	Home      Location  `json:"home"`
}

type NewTask struct {
	Pickup   Location `json:"pickup"`
	Delivery Location `json:"delivery"`
	Weight   int      `json:"weight"`
}

type Task struct {
	ID       uuid.UUID `json:"id"`
	Pickup   Location  `json:"pickup"`
	Delivery Location  `json:"delivery"`
	Weight   int       `json:"weight"`
	Status   string    `json:"status"`
}

// NewPlan is the body of POST /api/v1/plans; an empty strategy means the configured default.
type NewPlan struct {
	Strategy string `json:"strategy"`
}

// Created carries the id of a resource made by a POST.
type Created struct {
	ID uuid.UUID `json:"id"`
}

type Plan struct {
	ID          uuid.UUID   `json:"id"`
	Strategy    string      `json:"strategy"`
	Cost        float64     `json:"cost"`
	CreatedAt   time.Time   `json:"createdAt"`
	Itineraries []Itinerary `json:"itineraries"`
}

type Itinerary struct {
	VehicleID   uuid.UUID `json:"vehicleId"`
	VehicleName string    `json:"vehicleName"`
	Start       Location  `json:"start"`
	Steps       []Step    `json:"steps"`
}

type Step struct {
	Kind     string     `json:"kind"`
	Location Location   `json:"location"`
	TaskID   *uuid.UUID `json:"taskId,omitempty"`
}

// toLocation checks the bounds before narrowing to kernel.Coordinate.
func (l Location) toLocation() (kernel.Location, error) {
	if l.X < int(kernel.LocationMinX) || l.X > int(kernel.LocationMaxX) {
		return kernel.Location{}, errs.NewValueIsOutOfRangeError("x", l.X, kernel.LocationMinX, kernel.LocationMaxX)
	}
	if l.Y < int(kernel.LocationMinY) || l.Y > int(kernel.LocationMaxY) {
		return kernel.Location{}, errs.NewValueIsOutOfRangeError("y", l.Y, kernel.LocationMinY, kernel.LocationMaxY)
	}
	return kernel.NewLocation(kernel.Coordinate(l.X), kernel.Coordinate(l.Y))
}

func fromLocation(l kernel.Location) Location {
	return Location{X: int(l.X()), Y: int(l.Y())}
}

func fromVehicle(v queries.GetAllVehiclesQueryResponse) Vehicle {
	return Vehicle{
		ID:        v.ID.Bytes(),
		Name:      v.Name,
		Capacity:  v.Capacity,
		CostPerKm: v.CostPerKm,
		Home:      fromLocation(v.Home),
	}
}

func fromTask(t queries.GetTasksQueryResponse) Task {
	return Task{
		ID:       t.ID.Bytes(),
		Pickup:   fromLocation(t.Pickup),
		Delivery: fromLocation(t.Delivery),
		Weight:   t.Weight,
		Status:   t.Status.String(),
	}
}

func fromPlan(p queries.GetLatestPlanQueryResponse) Plan {
	itineraries := make([]Itinerary, len(p.Itineraries))
	for i, it := range p.Itineraries {
		steps := make([]Step, len(it.Steps))
		for j, s := range it.Steps {
			steps[j] = Step{Kind: s.Kind, Location: fromLocation(s.Location)}
			if s.TaskID != nil {
				id := s.TaskID.Bytes()
				steps[j].TaskID = &id
			}
		}
		itineraries[i] = Itinerary{
			VehicleID:   it.VehicleID.Bytes(),
			VehicleName: it.VehicleName,
			Start:       fromLocation(it.Start),
			Steps:       steps,
		}
	}

	return Plan{
		ID:          p.ID.Bytes(),
		Strategy:    p.Strategy,
		Cost:        p.Cost,
		CreatedAt:   p.CreatedAt,
		Itineraries: itineraries,
	}
}
