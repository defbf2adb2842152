package plan

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/task"
	"fleetplan/internal/core/domain/model/vehicle"
	"fleetplan/internal/pkg/errs"
	"fleetplan/internal/pkg/guard"
)

var (
	// ErrNoVehicles is returned when a plan is requested for an empty fleet.
	ErrNoVehicles = errors.New("at least one vehicle is required")
	// ErrInfeasibleConfiguration is returned when some task is heavier than every vehicle can carry.
	ErrInfeasibleConfiguration = errors.New("impossible to plan: vehicles are not big enough")
	// ErrTaskAlreadyPlanned is returned when extending a plan with a task it already contains.
	ErrTaskAlreadyPlanned = errors.New("task is already part of the plan")
	// ErrMetricIsRequired is returned when no distance metric is supplied.
	ErrMetricIsRequired = errs.NewValueIsRequiredError("metric")
)

// Metric measures the travel distance between two grid locations.
type Metric interface {
	Distance(from, to kernel.Location) float64
}

var debugValidation atomic.Bool

// SetDebugValidation turns the full invariant check of every new PlanState on or off.
// It is off by default; tests switch it on.
func SetDebugValidation(enabled bool) {
	debugValidation.Store(enabled)
}

// PlanState assigns a route to every vehicle of the fleet.
//
// A PlanState never changes after construction: every move returns a new PlanState
// with freshly copied routes for the vehicles it touches, so older states stay valid
// and can be explored independently. The only lazily written field is the cost cache.
type PlanState struct {
	vehicles []*vehicle.Vehicle
	tasks    []*task.Task
	// routes[i] belongs to vehicles[i].
	routes []Route
	index  map[kernel.UUID]int
	metric Metric

	costOnce     sync.Once
	vehicleCosts []float64
	totalCost    float64
}

// RestorePlanState rebuilds a plan from stored routes. Vehicles missing from routes get
// an empty route. Unlike the search moves, a restored plan is always validated and the
// violations are returned instead of panicking.
func RestorePlanState(
	vehicles []*vehicle.Vehicle,
	tasks []*task.Task,
	routes map[kernel.UUID]Route,
	metric Metric,
) (*PlanState, error) {
	if len(vehicles) == 0 {
		return nil, ErrNoVehicles
	}
	if metric == nil {
		return nil, ErrMetricIsRequired
	}

	index := indexVehicles(vehicles)
	for id := range routes {
		if _, ok := index[id]; !ok {
			return nil, errs.NewObjectNotFoundError("vehicle", id.String())
		}
	}

	aligned := make([]Route, len(vehicles))
	for i, v := range vehicles {
		aligned[i] = routes[v.ID()].clone()
	}

	p := &PlanState{
		vehicles: vehicles,
		tasks:    tasks,
		routes:   aligned,
		index:    index,
		metric:   metric,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func newPlanState(vehicles []*vehicle.Vehicle, tasks []*task.Task, routes []Route, index map[kernel.UUID]int, metric Metric) *PlanState {
	p := &PlanState{
		vehicles: vehicles,
		tasks:    tasks,
		routes:   routes,
		index:    index,
		metric:   metric,
	}
	if debugValidation.Load() {
		p.MustValidate()
	}
	return p
}

// derive builds a sibling plan over the same universe where only the given routes change.
func (p *PlanState) derive(changed map[int]Route) *PlanState {
	routes := make([]Route, len(p.routes))
	copy(routes, p.routes)
	for i, r := range changed {
		routes[i] = r
	}
	return newPlanState(p.vehicles, p.tasks, routes, p.index, p.metric)
}

func indexVehicles(vehicles []*vehicle.Vehicle) map[kernel.UUID]int {
	index := make(map[kernel.UUID]int, len(vehicles))
	for i, v := range vehicles {
		index[v.ID()] = i
	}
	return index
}

// Vehicles returns the fleet in input order.
func (p *PlanState) Vehicles() []*vehicle.Vehicle {
	out := make([]*vehicle.Vehicle, len(p.vehicles))
	copy(out, p.vehicles)
	return out
}

// Tasks returns the task universe the plan was built from.
func (p *PlanState) Tasks() []*task.Task {
	out := make([]*task.Task, len(p.tasks))
	copy(out, p.tasks)
	return out
}

// Route returns a copy of the route of v, nil when v is not part of the fleet.
func (p *PlanState) Route(v *vehicle.Vehicle) Route {
	i, ok := p.index[v.ID()]
	if !ok {
		return nil
	}
	return p.routes[i].clone()
}

// Metric returns the distance metric the costs are computed with.
func (p *PlanState) Metric() Metric {
	return p.metric
}

// vehicleIndex resolves v or panics: asking for a vehicle outside the fleet is a caller bug.
func (p *PlanState) vehicleIndex(v *vehicle.Vehicle) int {
	i, ok := p.index[v.ID()]
	guard.Ensure(ok, "vehicle %s is not part of the plan", v.ID())
	return i
}

func (p *PlanState) String() string {
	var sb strings.Builder
	for i, v := range p.vehicles {
		fmt.Fprintf(&sb, "Plan for vehicle %s: %v\n", v.Name(), p.routes[i])
	}
	return sb.String()
}
