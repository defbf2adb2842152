package plan

import (
	"fleetplan/internal/core/domain/model/vehicle"
	"fleetplan/internal/pkg/guard"
)

// Neighbors returns a stochastic, non-exhaustive sample of the plans reachable from p
// by a single move.
//
// One vehicle with a non-empty route is drawn uniformly from rnd (the model vehicle).
// The result concatenates the transfer of its first task to every other vehicle able to
// carry it, then, for each action of its route, the advance and postpone moves of that
// action. Neighbors returns nil when every route is empty.
//
// Calling Neighbors twice on the same plan yields the same candidates only when rnd
// produces the same draws.
func (p *PlanState) Neighbors(rnd RandomSource) []*PlanState {
	model, ok := p.selectModelVehicle(rnd)
	if !ok {
		return nil
	}

	neighbors := p.TransferFirstTask(model)

	route := p.routes[p.vehicleIndex(model)]
	for i, a := range route {
		if a.event == EventPick {
			neighbors = append(neighbors, p.AdvancePickup(model, i)...)
			neighbors = append(neighbors, p.PostponePickup(model, i)...)
		} else {
			neighbors = append(neighbors, p.AdvanceDelivery(model, i)...)
			neighbors = append(neighbors, p.PostponeDelivery(model, i)...)
		}
	}

	return neighbors
}

// selectModelVehicle draws vehicles uniformly until one with a non-empty route comes up.
func (p *PlanState) selectModelVehicle(rnd RandomSource) (*vehicle.Vehicle, bool) {
	guard.Ensure(rnd != nil, "neighbor generation needs a random source")

	nonEmpty := false
	for _, r := range p.routes {
		if len(r) > 0 {
			nonEmpty = true
			break
		}
	}
	if !nonEmpty {
		return nil, false
	}

	i := rnd.IntN(len(p.vehicles))
	for len(p.routes[i]) == 0 {
		i = rnd.IntN(len(p.vehicles))
	}
	return p.vehicles[i], true
}
