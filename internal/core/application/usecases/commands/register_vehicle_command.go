package commands

import (
	"errors"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/pkg/guard"
)

var (
	ErrRegisterVehicleCommandIsNotConstructed = errors.New(
		"RegisterVehicleCommand must be created via NewRegisterVehicleCommand constructor",
	)
	ErrNameIsRequired     = errors.New("name is required")
	ErrCapacityIsInvalid  = errors.New("capacity must be greater than 0")
	ErrCostPerKmIsInvalid = errors.New("cost per km must be greater than 0")
)

// RegisterVehicleCommand represents a request to add a vehicle to the fleet.
//
// Example:
//
//	home, _ := kernel.NewLocation(1, 1)
//	cmd, err := NewRegisterVehicleCommand("Van 1", 10, 1.5, home)
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle data: %w", err)
//	}
//
//	handler := NewRegisterVehicleCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register vehicle: %w", err)
//	}
type RegisterVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	name      string
	capacity  int
	costPerKm float64
	home      kernel.Location

	guard guard.ConstructorGuard
}

// NewRegisterVehicleCommand creates a command to register a vehicle with a fresh ID.
func NewRegisterVehicleCommand(name string, capacity int, costPerKm float64, home kernel.Location) (RegisterVehicleCommand, error) {
	command := RegisterVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVehicleID(kernel.NewUUID()),
		command.setName(name),
		command.setCapacity(capacity),
		command.setCostPerKm(costPerKm),
		command.setHome(home),
	); err != nil {
		return RegisterVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVehicleCommandIsNotConstructed)
}

func (c RegisterVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c RegisterVehicleCommand) Name() string {
	return c.name
}

func (c RegisterVehicleCommand) Capacity() int {
	return c.capacity
}

func (c RegisterVehicleCommand) CostPerKm() float64 {
	return c.costPerKm
}

func (c RegisterVehicleCommand) Home() kernel.Location {
	return c.home
}

func (c *RegisterVehicleCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vehicleID = id
	return nil
}

func (c *RegisterVehicleCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterVehicleCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}

func (c *RegisterVehicleCommand) setCostPerKm(costPerKm float64) error {
	if costPerKm <= 0 {
		return ErrCostPerKmIsInvalid
	}

	c.costPerKm = costPerKm
	return nil
}

func (c *RegisterVehicleCommand) setHome(home kernel.Location) error {
	if err := home.Validate(); err != nil {
		return err
	}

	c.home = home
	return nil
}
