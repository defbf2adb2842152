package commands

import (
	"context"
	"errors"
	"time"

	"fleetplan/internal/core/domain/model/plan"
	"fleetplan/internal/core/ports"
	"fleetplan/internal/pkg/errs"
)

var ErrNoPlanFound = errors.New("no plan found")

// AssignTaskCommandHandler appends a single task to the latest plan.
// The task goes to the vehicle with the lowest marginal cost, at the end of its route.
//
// Example:
//
//	handler := NewAssignTaskCommandHandler(uowFactory, topology)
//	cmd, _ := NewAssignTaskCommand(taskID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPlanFound):
//	    log.Println("Run a full planning first")
//	case errors.Is(err, plan.ErrTaskAlreadyPlanned):
//	    log.Println("Task is already in the plan")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignTaskCommandHandler struct {
	uowFactory UoWFactory
	topology   ports.Topology
}

// NewAssignTaskCommandHandler creates a handler for incremental task assignment.
func NewAssignTaskCommandHandler(uowFactory UoWFactory, topology ports.Topology) AssignTaskCommandHandler {
	return AssignTaskCommandHandler{
		uowFactory: uowFactory,
		topology:   topology,
	}
}

// Handle extends the latest plan with the task and saves the result as a new plan version.
// Returns ErrNoPlanFound when nothing was planned yet.
func (h AssignTaskCommandHandler) Handle(ctx context.Context, command AssignTaskCommand) error {
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

	taskRepo := uow.TaskRepository()
	t, err := taskRepo.Get(ctx, command.TaskID())
	if err != nil {
		return err
	}

	planRepo := uow.PlanRepository()
	latest, err := planRepo.GetLatest(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPlanFound
	}
	if err != nil {
		return err
	}

	extended, err := latest.State().ExtendWithTask(t)
	if err != nil {
		return err
	}

	itineraries, err := extended.ToItineraries(h.topology)
	if err != nil {
		return err
	}

	record, err := plan.NewRecord(command.PlanID(), latest.Strategy(), extended, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = planRepo.Save(ctx, record, itineraries); err != nil {
		return err
	}

	if err = t.MarkPlanned(); err != nil {
		return err
	}
	if err = taskRepo.Update(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
