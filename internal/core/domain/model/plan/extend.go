package plan

import (
	"fmt"

	"fleetplan/internal/core/domain/model/task"
)

// ExtendWithTask returns a new plan whose universe also contains t. The pickup and the
// delivery of t are appended to the route of the vehicle with the smallest marginal cost
// among those able to carry it; ties go to the first vehicle in fleet order.
//
// Appending keeps the plan feasible: every route ends empty, so the only load the
// vehicle carries on the new leg is t itself.
func (p *PlanState) ExtendWithTask(t *task.Task) (*PlanState, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	for _, known := range p.tasks {
		if known.IsEqual(t) {
			return nil, fmt.Errorf("%w: %s", ErrTaskAlreadyPlanned, t)
		}
	}

	best := -1
	bestMarginal := 0.0
	for i, v := range p.vehicles {
		if !v.CanCarry(t) {
			continue
		}
		from := lastLocation(v, p.routes[i])
		marginal := (p.metric.Distance(from, t.Pickup()) + p.metric.Distance(t.Pickup(), t.Delivery())) * v.CostPerKm()
		if best < 0 || marginal < bestMarginal {
			best, bestMarginal = i, marginal
		}
	}
	if best < 0 {
		return nil, fmt.Errorf("%w: no vehicle can carry %s", ErrInfeasibleConfiguration, t)
	}

	extended := make(Route, 0, len(p.routes[best])+2)
	extended = append(extended, p.routes[best]...)
	extended = append(extended, Pick(t), Deliver(t))

	routes := make([]Route, len(p.routes))
	copy(routes, p.routes)
	routes[best] = extended

	tasks := make([]*task.Task, 0, len(p.tasks)+1)
	tasks = append(tasks, p.tasks...)
	tasks = append(tasks, t)

	return newPlanState(p.vehicles, tasks, routes, p.index, p.metric), nil
}
