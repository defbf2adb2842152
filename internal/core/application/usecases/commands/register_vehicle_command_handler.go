package commands

import (
	"context"

	"fleetplan/internal/core/domain/model/vehicle"
)

// RegisterVehicleCommandHandler creates and persists new fleet vehicles.
type RegisterVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewRegisterVehicleCommandHandler creates a handler for vehicle registration.
func NewRegisterVehicleCommandHandler(uowFactory VehicleUoWFactory) RegisterVehicleCommandHandler {
	return RegisterVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the vehicle and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *RegisterVehicleCommandHandler) Handle(ctx context.Context, cmd RegisterVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	v, err := vehicle.NewVehicle(cmd.VehicleID(), cmd.Name(), cmd.Capacity(), cmd.CostPerKm(), cmd.Home())
	if err != nil {
		return err
	}

	if err = uow.VehicleRepository().Add(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
