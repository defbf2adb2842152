package commands

import (
	"errors"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/pkg/guard"
)

var (
	ErrCreateTaskCommandIsNotConstructed = errors.New(
		"CreateTaskCommand must be created via NewCreateTaskCommand constructor",
	)
	ErrWeightIsInvalid = errors.New("weight must be greater than 0")
)

// CreateTaskCommand represents a request to register a transport task.
// The task waits in Unplanned status until a planning run or an assignment picks it up.
//
// Example:
//
//	pickup, _ := kernel.NewLocation(2, 3)
//	delivery, _ := kernel.NewLocation(9, 9)
//	cmd, err := NewCreateTaskCommand(pickup, delivery, 4)
//	if err != nil {
//	    return fmt.Errorf("invalid task data: %w", err)
//	}
//
//	handler := NewCreateTaskCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create task: %w", err)
//	}
//	fmt.Printf("Task %s awaiting planning", cmd.TaskID())
type CreateTaskCommand struct { //nolint:recvcheck //using for validation
	taskID   kernel.UUID
	pickup   kernel.Location
	delivery kernel.Location
	weight   int

	guard guard.ConstructorGuard
}

// NewCreateTaskCommand creates a command with a freshly generated task ID.
// Validates both locations and requires a positive weight.
func NewCreateTaskCommand(pickup, delivery kernel.Location, weight int) (CreateTaskCommand, error) {
	taskCommand := CreateTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		taskCommand.setTaskID(kernel.NewUUID()),
		taskCommand.setPickup(pickup),
		taskCommand.setDelivery(delivery),
		taskCommand.setWeight(weight),
	); err != nil {
		return CreateTaskCommand{}, err
	}

	return taskCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateTaskCommandIsNotConstructed if validation fails.
func (c CreateTaskCommand) Validate() error {
	return c.guard.Validate(ErrCreateTaskCommandIsNotConstructed)
}

// TaskID returns the identifier the new task will be stored under.
func (c CreateTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Pickup returns where the goods are collected.
func (c CreateTaskCommand) Pickup() kernel.Location {
	return c.pickup
}

// Delivery returns where the goods are dropped off.
func (c CreateTaskCommand) Delivery() kernel.Location {
	return c.delivery
}

// Weight returns the weight of the goods.
func (c CreateTaskCommand) Weight() int {
	return c.weight
}

func (c *CreateTaskCommand) setTaskID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.taskID = id
	return nil
}

func (c *CreateTaskCommand) setPickup(pickup kernel.Location) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	c.pickup = pickup
	return nil
}

func (c *CreateTaskCommand) setDelivery(delivery kernel.Location) error {
	if err := delivery.Validate(); err != nil {
		return err
	}

	c.delivery = delivery
	return nil
}

func (c *CreateTaskCommand) setWeight(weight int) error {
	if weight <= 0 {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}
