package commands

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"fleetplan/internal/core/domain/model/plan"
	"fleetplan/internal/core/domain/services"
	"fleetplan/internal/core/ports"
)

var (
	ErrNoVehiclesFound = errors.New("no vehicles found")
	ErrNothingToPlan   = errors.New("no unplanned tasks")
)

// PlanRoutesCommandHandler replans every known task over the current fleet.
// Builds the initial plan, improves it with the local search, stores the best plan with
// its itineraries and marks the waiting tasks as planned, all within one transaction.
//
// Each run draws from its own generator seeded with (seed, run number), so a process
// started with the same seed reproduces the same sequence of plans.
//
// Example:
//
//	handler := NewPlanRoutesCommandHandler(uowFactory, topology, services.DefaultSearchOptions(), 42, observer)
//	cmd, _ := NewPlanRoutesCommand(plan.StrategyGreedy, true)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNothingToPlan):
//	    log.Println("No new tasks")
//	case errors.Is(err, ErrNoVehiclesFound):
//	    log.Println("Fleet is empty")
//	case err != nil:
//	    log.Printf("Planning failed: %v", err)
//	}
type PlanRoutesCommandHandler struct {
	uowFactory UoWFactory
	topology   ports.Topology
	options    services.SearchOptions
	seed       uint64
	runs       *atomic.Uint64
	observer   ports.SearchObserver
}

// NewPlanRoutesCommandHandler creates a planning handler. observer may be nil.
func NewPlanRoutesCommandHandler(
	uowFactory UoWFactory,
	topology ports.Topology,
	options services.SearchOptions,
	seed uint64,
	observer ports.SearchObserver,
) PlanRoutesCommandHandler {
	return PlanRoutesCommandHandler{
		uowFactory: uowFactory,
		topology:   topology,
		options:    options,
		seed:       seed,
		runs:       &atomic.Uint64{},
		observer:   observer,
	}
}

// Handle runs the planner and persists its best plan.
// Returns ErrNoVehiclesFound for an empty fleet, ErrNothingToPlan when the command only
// asks for new work and none exists, and plan.ErrInfeasibleConfiguration when a task is
// heavier than every vehicle.
func (h PlanRoutesCommandHandler) Handle(ctx context.Context, command PlanRoutesCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicles, err := uow.VehicleRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	if len(vehicles) == 0 {
		return ErrNoVehiclesFound
	}

	taskRepo := uow.TaskRepository()
	unplanned, err := taskRepo.GetUnplanned(ctx)
	if err != nil {
		return err
	}
	if command.OnlyIfUnplanned() && len(unplanned) == 0 {
		return ErrNothingToPlan
	}

	tasks, err := taskRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	planner, err := services.NewPlanner(vehicles, tasks, h.topology, command.Strategy(), h.options)
	if err != nil {
		return err
	}

	started := time.Now()
	rnd := rand.New(rand.NewPCG(h.seed, h.runs.Add(1))) //nolint:gosec // search randomness, not security
	result, err := planner.GeneratePlan(ctx, rnd)
	if err != nil {
		return err
	}
	elapsed := time.Since(started)

	itineraries, err := result.Best.ToItineraries(h.topology)
	if err != nil {
		return err
	}

	record, err := plan.NewRecord(command.PlanID(), command.Strategy(), result.Best, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.PlanRepository().Save(ctx, record, itineraries); err != nil {
		return err
	}

	for _, t := range unplanned {
		if err = t.MarkPlanned(); err != nil {
			return err
		}
		if err = taskRepo.Update(ctx, t); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.observer != nil {
		h.observer.ObserveSearch(ctx, ports.SearchSummary{
			Strategy:      command.Strategy().String(),
			Acceptance:    h.options.Acceptance.String(),
			Tasks:         len(tasks),
			Iterations:    result.Iterations,
			Improvements:  result.Improvements,
			AcceptedWorse: result.AcceptedWorse,
			InitialCost:   result.InitialCost,
			BestCost:      result.BestCost,
			Duration:      elapsed,
		})
	}

	return nil
}
