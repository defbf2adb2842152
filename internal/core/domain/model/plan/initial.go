package plan

import (
	"fmt"
	"strings"

	"fleetplan/internal/core/domain/model/task"
	"fleetplan/internal/core/domain/model/vehicle"
	"fleetplan/internal/pkg/errs"
)

// Strategy selects how the first PlanState of a search is built.
type Strategy int

const (
	StrategyUnknown Strategy = iota
	// StrategyGreedy gives every task, in input order, to the biggest vehicle.
	StrategyGreedy
	// StrategyRandom gives every task to a uniformly drawn vehicle able to carry it.
	StrategyRandom
)

// Validate checks that s is StrategyGreedy or StrategyRandom.
func (s Strategy) Validate() error {
	if s != StrategyGreedy && s != StrategyRandom {
		return errs.NewValueIsInvalidErrorWithCause("strategy is invalid", fmt.Errorf("%d is not a known strategy", s))
	}
	return nil
}

func (s Strategy) String() string {
	switch s {
	case StrategyGreedy:
		return "greedy"
	case StrategyRandom:
		return "random"
	default:
		return "unknown"
	}
}

// ParseStrategy accepts "greedy" and "random", case-insensitively.
func ParseStrategy(value string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "greedy":
		return StrategyGreedy, nil
	case "random":
		return StrategyRandom, nil
	default:
		return StrategyUnknown, errs.NewValueIsInvalidErrorWithCause("strategy is invalid", fmt.Errorf("%q is not a known strategy", value))
	}
}

// RandomSource draws uniform integers in [0, n). *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// BuildInitial builds the first plan of a search.
//
// Both strategies need at least one vehicle and fail with ErrInfeasibleConfiguration
// when the heaviest task does not fit into the biggest vehicle. rnd is only used by
// StrategyRandom and may be nil for StrategyGreedy.
//
// Example:
//
//	rnd := rand.New(rand.NewPCG(seed, seed))
//	initial, err := plan.BuildInitial(vehicles, tasks, topology, plan.StrategyRandom, rnd)
func BuildInitial(
	vehicles []*vehicle.Vehicle,
	tasks []*task.Task,
	metric Metric,
	strategy Strategy,
	rnd RandomSource,
) (*PlanState, error) {
	if len(vehicles) == 0 {
		return nil, ErrNoVehicles
	}
	if metric == nil {
		return nil, ErrMetricIsRequired
	}

	biggest := vehicle.Biggest(vehicles)
	if heaviest := task.HeaviestWeight(tasks); heaviest > biggest.Capacity() {
		return nil, fmt.Errorf("%w: heaviest task weighs %d, biggest vehicle carries %d",
			ErrInfeasibleConfiguration, heaviest, biggest.Capacity())
	}

	vehicles = append([]*vehicle.Vehicle(nil), vehicles...)
	tasks = append([]*task.Task(nil), tasks...)
	index := indexVehicles(vehicles)
	routes := make([]Route, len(vehicles))

	switch strategy {
	case StrategyGreedy:
		route := make(Route, 0, 2*len(tasks))
		for _, t := range tasks {
			route = append(route, Pick(t), Deliver(t))
		}
		routes[index[biggest.ID()]] = route
	case StrategyRandom:
		if rnd == nil {
			return nil, errs.NewValueIsRequiredError("random source")
		}
		for _, t := range tasks {
			if !anyCanCarry(vehicles, t) {
				return nil, fmt.Errorf("%w: no vehicle can carry %s", ErrInfeasibleConfiguration, t)
			}
			i := rnd.IntN(len(vehicles))
			for !vehicles[i].CanCarry(t) {
				i = rnd.IntN(len(vehicles))
			}
			routes[i] = append(routes[i], Pick(t), Deliver(t))
		}
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("strategy is invalid", fmt.Errorf("%d is not a known strategy", strategy))
	}

	return newPlanState(vehicles, tasks, routes, index, metric), nil
}

func anyCanCarry(vehicles []*vehicle.Vehicle, t *task.Task) bool {
	for _, v := range vehicles {
		if v.CanCarry(t) {
			return true
		}
	}
	return false
}
