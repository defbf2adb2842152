package plan

import (
	"fleetplan/internal/core/domain/model/vehicle"
	"fleetplan/internal/pkg/guard"
)

// TransferFirstTask removes the first task of v (its pickup and its delivery) and
// prepends it, pickup then delivery, to every other vehicle able to carry it.
// It yields one candidate per such vehicle.
func (p *PlanState) TransferFirstTask(v *vehicle.Vehicle) []*PlanState {
	src := p.vehicleIndex(v)
	guard.Ensure(len(p.routes[src]) > 0, "transfer needs vehicle %s to have at least one task", v.Name())

	moved := p.routes[src][0].task
	source := make(Route, 0, len(p.routes[src])-2)
	for _, a := range p.routes[src] {
		if !a.task.IsEqual(moved) {
			source = append(source, a)
		}
	}

	var neighbors []*PlanState
	for dst, other := range p.vehicles {
		if dst == src || !other.CanCarry(moved) {
			continue
		}

		destination := make(Route, 0, len(p.routes[dst])+2)
		destination = append(destination, Pick(moved), Deliver(moved))
		destination = append(destination, p.routes[dst]...)

		neighbors = append(neighbors, p.derive(map[int]Route{src: source.clone(), dst: destination}))
	}

	return neighbors
}

// AdvancePickup moves the pickup at index i of the route of v to every earlier position
// t = i-1, i-2, ... while the vehicle stays within capacity, and stops at the first
// position that would overload it.
func (p *PlanState) AdvancePickup(v *vehicle.Vehicle, i int) []*PlanState {
	route := p.checkedRoute(v, i, EventPick)
	if i == 0 {
		return nil
	}

	var neighbors []*PlanState
	load := Load(route, i)
	for t := i - 1; t >= 0 && load-route[t].DifferentialWeight() <= v.Capacity(); t-- {
		neighbors = append(neighbors, p.MoveAction(v, i, t))
		load -= route[t].DifferentialWeight()
	}

	return neighbors
}

// PostponePickup moves the pickup at index i of the route of v to every later position
// t = i+1, i+2, ... up to, excluding, the position of the task's delivery.
func (p *PlanState) PostponePickup(v *vehicle.Vehicle, i int) []*PlanState {
	route := p.checkedRoute(v, i, EventPick)
	moved := route[i].task

	var neighbors []*PlanState
	for t := i + 1; t < len(route) && !route[t].task.IsEqual(moved); t++ {
		neighbors = append(neighbors, p.MoveAction(v, i, t))
	}

	return neighbors
}

// AdvanceDelivery moves the delivery at index i of the route of v to every earlier
// position t = i-1, i-2, ... down to, excluding, the position of the task's pickup.
func (p *PlanState) AdvanceDelivery(v *vehicle.Vehicle, i int) []*PlanState {
	route := p.checkedRoute(v, i, EventDeliver)
	moved := route[i].task

	var neighbors []*PlanState
	for t := i - 1; t >= 0 && !route[t].task.IsEqual(moved); t-- {
		neighbors = append(neighbors, p.MoveAction(v, i, t))
	}

	return neighbors
}

// PostponeDelivery moves the delivery at index i of the route of v to every later
// position t = i+1, i+2, ... while the load carried past the skipped actions stays
// within capacity, and stops at the first violation.
func (p *PlanState) PostponeDelivery(v *vehicle.Vehicle, i int) []*PlanState {
	route := p.checkedRoute(v, i, EventDeliver)

	var neighbors []*PlanState
	load := Load(route, i-1)
	for t := i + 1; t < len(route) && load+route[t].DifferentialWeight() <= v.Capacity(); t++ {
		neighbors = append(neighbors, p.MoveAction(v, i, t))
		load += route[t].DifferentialWeight()
	}

	return neighbors
}

// MoveAction removes the action at index src of the route of v and reinserts it so that
// it lands in front of the action that was at index dst before the removal: at dst when
// src >= dst, at dst-1 otherwise. dst may be len(route), which moves the action last.
func (p *PlanState) MoveAction(v *vehicle.Vehicle, src, dst int) *PlanState {
	vi := p.vehicleIndex(v)
	route := p.routes[vi]
	guard.Ensure(src >= 0 && src < len(route), "source index %d is out of range for a route of %d actions", src, len(route))
	guard.Ensure(dst >= 0 && dst <= len(route), "destination index %d is out of range for a route of %d actions", dst, len(route))

	return p.derive(map[int]Route{vi: moveAction(route, src, dst)})
}

func moveAction(route Route, src, dst int) Route {
	action := route[src]

	moved := make(Route, 0, len(route))
	moved = append(moved, route[:src]...)
	moved = append(moved, route[src+1:]...)

	at := dst
	if src < dst {
		at = dst - 1
	}

	moved = append(moved, Action{})
	copy(moved[at+1:], moved[at:])
	moved[at] = action
	return moved
}

// checkedRoute returns the route of v after checking that index i holds an action of
// the expected event.
func (p *PlanState) checkedRoute(v *vehicle.Vehicle, i int, event Event) Route {
	route := p.routes[p.vehicleIndex(v)]
	guard.Ensure(i >= 0 && i < len(route), "index %d is out of range for a route of %d actions", i, len(route))
	guard.Ensure(route[i].event == event, "index %d of the route of %s holds a %s, expected %s", i, v.Name(), route[i].event, event)
	return route
}
