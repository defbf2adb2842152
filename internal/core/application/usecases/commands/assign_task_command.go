package commands

import (
	"errors"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/pkg/guard"
)

var ErrAssignTaskCommandIsNotConstructed = errors.New(
	"AssignTaskCommand must be created via NewAssignTaskCommand constructor",
)

// AssignTaskCommand asks to add one task to the latest plan without replanning the rest.
// The extended plan is saved as a new version under PlanID.
type AssignTaskCommand struct { //nolint:recvcheck //using for validation
	taskID kernel.UUID
	planID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignTaskCommand creates the command for an existing task.
func NewAssignTaskCommand(taskID kernel.UUID) (AssignTaskCommand, error) {
	command := AssignTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTaskID(taskID),
		command.setPlanID(kernel.NewUUID()),
	); err != nil {
		return AssignTaskCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTaskCommand) Validate() error {
	return c.guard.Validate(ErrAssignTaskCommandIsNotConstructed)
}

func (c AssignTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

func (c AssignTaskCommand) PlanID() kernel.UUID {
	return c.planID
}

func (c *AssignTaskCommand) setTaskID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.taskID = id
	return nil
}

func (c *AssignTaskCommand) setPlanID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.planID = id
	return nil
}
