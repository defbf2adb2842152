// Package ports defines the contracts between the planning core and its infrastructure:
// repositories, the unit of work, the grid topology and the search observer.
// These interfaces keep the domain and application layers free of adapter details.
package ports

import (
	"context"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for the fleet.
type VehicleRepository interface {
	// Add persists a new vehicle.
	// The vehicle must be valid and not already exist in the repository.
	Add(ctx context.Context, vehicle *vehicle.Vehicle) error

	// Get retrieves a vehicle by its unique identifier.
	// Returns errs.ObjectNotFoundError when no vehicle has that ID.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetAll retrieves the whole fleet in registration order.
	// The order matters: ties between vehicles are broken by fleet order.
	GetAll(ctx context.Context) ([]*vehicle.Vehicle, error)
}
