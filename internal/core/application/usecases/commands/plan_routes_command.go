package commands

import (
	"errors"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/plan"
	"fleetplan/internal/pkg/guard"
)

var ErrPlanRoutesCommandIsNotConstructed = errors.New(
	"PlanRoutesCommand must be created via NewPlanRoutesCommand constructor",
)

// PlanRoutesCommand asks for a complete replanning of every known task over the current fleet.
// With onlyIfUnplanned set the run is skipped (ErrNothingToPlan) when no task waits for planning;
// the replanning job uses that mode.
//
// Example:
//
//	cmd, err := NewPlanRoutesCommand(plan.StrategyGreedy, false)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	fmt.Printf("Plan %s saved", cmd.PlanID())
type PlanRoutesCommand struct { //nolint:recvcheck //using for validation
	planID          kernel.UUID
	strategy        plan.Strategy
	onlyIfUnplanned bool

	guard guard.ConstructorGuard
}

// NewPlanRoutesCommand creates a planning command; the resulting plan gets a fresh ID.
func NewPlanRoutesCommand(strategy plan.Strategy, onlyIfUnplanned bool) (PlanRoutesCommand, error) {
	command := PlanRoutesCommand{
		guard:           guard.NewConstructorGuard(),
		onlyIfUnplanned: onlyIfUnplanned,
	}

	if err := errors.Join(
		command.setPlanID(kernel.NewUUID()),
		command.setStrategy(strategy),
	); err != nil {
		return PlanRoutesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlanRoutesCommand) Validate() error {
	return c.guard.Validate(ErrPlanRoutesCommandIsNotConstructed)
}

func (c PlanRoutesCommand) PlanID() kernel.UUID {
	return c.planID
}

func (c PlanRoutesCommand) Strategy() plan.Strategy {
	return c.strategy
}

func (c PlanRoutesCommand) OnlyIfUnplanned() bool {
	return c.onlyIfUnplanned
}

func (c *PlanRoutesCommand) setPlanID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.planID = id
	return nil
}

func (c *PlanRoutesCommand) setStrategy(strategy plan.Strategy) error {
	if err := strategy.Validate(); err != nil {
		return err
	}

	c.strategy = strategy
	return nil
}
