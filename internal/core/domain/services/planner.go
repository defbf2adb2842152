package services

import (
	"context"
	"fmt"

	"fleetplan/internal/core/domain/model/plan"
	"fleetplan/internal/core/domain/model/task"
	"fleetplan/internal/core/domain/model/vehicle"
)

// Planner builds optimized plans for a fixed fleet and task set.
//
// Key responsibilities:
//   - Building the initial plan with the configured strategy
//   - Running the local search on top of it
//   - Producing planners for a task set grown by one task
//
// A Planner never changes; ExtendPlan returns a new one.
//
// Example usage:
//
//	planner, err := services.NewPlanner(vehicles, tasks, topology, plan.StrategyGreedy, services.DefaultSearchOptions())
//	if err != nil {
//	    return err
//	}
//	result, err := planner.GeneratePlan(ctx, rand.New(rand.NewPCG(seed, seed)))
type Planner struct {
	vehicles []*vehicle.Vehicle
	tasks    []*task.Task
	metric   plan.Metric
	strategy plan.Strategy
	options  SearchOptions
}

// NewPlanner checks the fleet and the search options up front.
//
// Returns:
//   - *Planner: A planner ready to generate plans
//   - error: plan.ErrNoVehicles for an empty fleet, or option/metric validation errors
func NewPlanner(
	vehicles []*vehicle.Vehicle,
	tasks []*task.Task,
	metric plan.Metric,
	strategy plan.Strategy,
	options SearchOptions,
) (*Planner, error) {
	if len(vehicles) == 0 {
		return nil, plan.ErrNoVehicles
	}
	if metric == nil {
		return nil, plan.ErrMetricIsRequired
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}

	return &Planner{
		vehicles: append([]*vehicle.Vehicle(nil), vehicles...),
		tasks:    append([]*task.Task(nil), tasks...),
		metric:   metric,
		strategy: strategy,
		options:  options,
	}, nil
}

func (p *Planner) Strategy() plan.Strategy {
	return p.strategy
}

func (p *Planner) Tasks() []*task.Task {
	return append([]*task.Task(nil), p.tasks...)
}

// GeneratePlan builds the initial plan and improves it with a LocalSearch driven by rnd.
func (p *Planner) GeneratePlan(ctx context.Context, rnd RandomSource) (SearchResult, error) {
	initial, err := plan.BuildInitial(p.vehicles, p.tasks, p.metric, p.strategy, rnd)
	if err != nil {
		return SearchResult{}, err
	}

	search, err := NewLocalSearch(p.options, rnd)
	if err != nil {
		return SearchResult{}, err
	}

	return search.Run(ctx, initial)
}

// ExtendPlan returns a planner over the same fleet with t added to the task set.
func (p *Planner) ExtendPlan(t *task.Task) (*Planner, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	for _, known := range p.tasks {
		if known.IsEqual(t) {
			return nil, fmt.Errorf("%w: %s", plan.ErrTaskAlreadyPlanned, t)
		}
	}

	tasks := make([]*task.Task, 0, len(p.tasks)+1)
	tasks = append(tasks, p.tasks...)
	tasks = append(tasks, t)

	return &Planner{
		vehicles: p.vehicles,
		tasks:    tasks,
		metric:   p.metric,
		strategy: p.strategy,
		options:  p.options,
	}, nil
}
