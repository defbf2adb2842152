package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"fleetplan/internal/core/domain/model/plan"
	"fleetplan/internal/pkg/errs"
)

// ErrInitialPlanIsRequired is returned when a search is started without a plan.
var ErrInitialPlanIsRequired = errs.NewValueIsRequiredError("initial plan")

// RandomSource drives both neighbor sampling and annealing draws.
// *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
	Float64() float64
}

// Acceptance decides which neighbor the search continues from.
type Acceptance int

const (
	AcceptUnknown Acceptance = iota
	// AcceptImproving moves to the cheapest neighbor unless it is worse than the current plan.
	AcceptImproving
	// AcceptAnnealing moves to a random neighbor, accepting a cost increase delta
	// with probability exp(-delta/T) while T cools geometrically.
	AcceptAnnealing
)

func (a Acceptance) String() string {
	switch a {
	case AcceptImproving:
		return "improving"
	case AcceptAnnealing:
		return "annealing"
	default:
		return "unknown"
	}
}

// ParseAcceptance accepts "improving" and "annealing", case-insensitively.
func ParseAcceptance(value string) (Acceptance, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "improving":
		return AcceptImproving, nil
	case "annealing":
		return AcceptAnnealing, nil
	default:
		return AcceptUnknown, errs.NewValueIsInvalidErrorWithCause("acceptance is invalid", fmt.Errorf("%q is not a known acceptance", value))
	}
}

// SearchOptions bound and tune a LocalSearch run.
type SearchOptions struct {
	// MaxIterations caps the number of neighbor generations.
	MaxIterations int
	Acceptance    Acceptance
	// InitialTemperature and Cooling only matter for AcceptAnnealing.
	InitialTemperature float64
	Cooling            float64
	// MaxStall stops the search after that many iterations without a new best plan; 0 disables it.
	MaxStall int
}

// DefaultSearchOptions returns the options used when nothing is configured.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		MaxIterations:      5000,
		Acceptance:         AcceptAnnealing,
		InitialTemperature: 50,
		Cooling:            0.995,
		MaxStall:           1000,
	}
}

// Validate reports every invalid field, joined.
func (o SearchOptions) Validate() error {
	var problems []error
	if o.MaxIterations <= 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("max iterations", o.MaxIterations, 1, math.MaxInt))
	}
	if o.Acceptance != AcceptImproving && o.Acceptance != AcceptAnnealing {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("acceptance is invalid", fmt.Errorf("%d is not a known acceptance", o.Acceptance)))
	}
	if o.Acceptance == AcceptAnnealing {
		if o.InitialTemperature <= 0 {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("initial temperature is invalid", fmt.Errorf("%g is not greater than 0", o.InitialTemperature)))
		}
		if o.Cooling <= 0 || o.Cooling > 1 {
			problems = append(problems, errs.NewValueIsOutOfRangeError("cooling", o.Cooling, 0, 1))
		}
	}
	if o.MaxStall < 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("max stall", o.MaxStall, 0, math.MaxInt))
	}
	return errors.Join(problems...)
}

// SearchResult is the outcome of a LocalSearch run.
type SearchResult struct {
	Best          *plan.PlanState
	Iterations    int
	Improvements  int
	AcceptedWorse int
	InitialCost   float64
	BestCost      float64
}

// LocalSearch drives neighbor generation from an initial plan and keeps the best plan seen.
//
// Example:
//
//	search, err := services.NewLocalSearch(services.DefaultSearchOptions(), rand.New(rand.NewPCG(seed, seed)))
//	if err != nil {
//	    return err
//	}
//	result, err := search.Run(ctx, initial)
type LocalSearch struct {
	options SearchOptions
	rnd     RandomSource
}

// NewLocalSearch validates options and binds the random source used by every run.
func NewLocalSearch(options SearchOptions, rnd RandomSource) (*LocalSearch, error) {
	if rnd == nil {
		return nil, errs.NewValueIsRequiredError("random source")
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return &LocalSearch{options: options, rnd: rnd}, nil
}

// Run searches from initial until the iteration cap, the stall limit, a plan without
// neighbors, or the end of ctx. Reaching a deadline is not an error: the best plan found
// so far is returned. Only a context that is already done before the first iteration
// yields its error.
func (s *LocalSearch) Run(ctx context.Context, initial *plan.PlanState) (SearchResult, error) {
	if initial == nil {
		return SearchResult{}, ErrInitialPlanIsRequired
	}
	if err := ctx.Err(); err != nil {
		return SearchResult{}, err
	}

	current, best := initial, initial
	result := SearchResult{InitialCost: initial.Cost()}
	temperature := s.options.InitialTemperature
	stall := 0

	for result.Iterations < s.options.MaxIterations {
		if ctx.Err() != nil {
			break
		}

		neighbors := current.Neighbors(s.rnd)
		if len(neighbors) == 0 {
			break
		}
		result.Iterations++

		next, worse := s.accept(current, neighbors, temperature)
		if next != nil {
			current = next
			if worse {
				result.AcceptedWorse++
			}
		}
		temperature *= s.options.Cooling

		if current.Cost() < best.Cost() {
			best = current
			result.Improvements++
			stall = 0
		} else {
			stall++
		}
		if s.options.MaxStall > 0 && stall >= s.options.MaxStall {
			break
		}
	}

	result.Best = best
	result.BestCost = best.Cost()
	return result, nil
}

// accept returns the plan to continue from, nil to stay, and whether it is worse than current.
func (s *LocalSearch) accept(current *plan.PlanState, neighbors []*plan.PlanState, temperature float64) (*plan.PlanState, bool) {
	switch s.options.Acceptance {
	case AcceptImproving:
		cheapest := neighbors[0]
		for _, n := range neighbors[1:] {
			if n.Cost() < cheapest.Cost() {
				cheapest = n
			}
		}
		if cheapest.Cost() <= current.Cost() {
			return cheapest, false
		}
		return nil, false
	case AcceptAnnealing:
		candidate := neighbors[s.rnd.IntN(len(neighbors))]
		delta := candidate.Cost() - current.Cost()
		if delta <= 0 {
			return candidate, false
		}
		if s.rnd.Float64() < math.Exp(-delta/(temperature+1e-9)) {
			return candidate, true
		}
		return nil, false
	default:
		return nil, false
	}
}
