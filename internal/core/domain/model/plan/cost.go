package plan

import (
	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/vehicle"
)

// Cost returns the total travel cost of the plan: the sum of every vehicle's route cost.
// It is computed on first use and cached for the lifetime of the PlanState.
func (p *PlanState) Cost() float64 {
	p.computeCosts()
	return p.totalCost
}

// VehicleCost returns the cost of the route of v.
func (p *PlanState) VehicleCost(v *vehicle.Vehicle) float64 {
	i := p.vehicleIndex(v)
	p.computeCosts()
	return p.vehicleCosts[i]
}

func (p *PlanState) computeCosts() {
	p.costOnce.Do(func() {
		p.vehicleCosts = make([]float64, len(p.vehicles))
		for i, v := range p.vehicles {
			p.vehicleCosts[i] = RouteCost(p.metric, v, p.routes[i])
			p.totalCost += p.vehicleCosts[i]
		}
	})
}

// RouteCost walks route from the home of v and sums distance times cost per km over
// every leg.
func RouteCost(metric Metric, v *vehicle.Vehicle, route Route) float64 {
	cost := 0.0
	current := v.Home()
	for _, a := range route {
		next := a.Location()
		cost += metric.Distance(current, next) * v.CostPerKm()
		current = next
	}
	return cost
}

// lastLocation is where v stands after completing route.
func lastLocation(v *vehicle.Vehicle, route Route) kernel.Location {
	if len(route) == 0 {
		return v.Home()
	}
	return route[len(route)-1].Location()
}
