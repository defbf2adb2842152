// Package vehiclerepo provides data transfer objects and mapping functions for fleet persistence.
// It implements the repository pattern for the vehicle aggregate, converting between
// domain entities and database rows.
package vehiclerepo

import (
	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicles.
// Seq is assigned by the database and preserves registration order, which the planner
// relies on for tie-breaking.
type VehicleDTO struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Seq       int64       `gorm:"autoIncrement;not null;uniqueIndex"`
	Name      string      `gorm:"type:varchar(255);not null"`
	Capacity  int         `gorm:"type:int;not null"`
	CostPerKm float64     `gorm:"type:double precision;not null"`
	Home      LocationDTO `gorm:"embedded;embeddedPrefix:home_"`
}

// TableName overrides GORM's default "vehicle_dtos".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// LocationDTO represents the embedded home coordinates within the vehicle table.
type LocationDTO struct {
	X kernel.Coordinate `gorm:"type:smallint"`
	Y kernel.Coordinate `gorm:"type:smallint"`
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:        v.ID().Bytes(),
		Name:      v.Name(),
		Capacity:  v.Capacity(),
		CostPerKm: v.CostPerKm(),
		Home: LocationDTO{
			X: v.Home().X(),
			Y: v.Home().Y(),
		},
	}
}

// ToDomain converts a database row back into a vehicle using RestoreVehicle.
// Exported for the plan repository, which restores the fleet of a stored plan.
func ToDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	home, err := kernel.NewLocation(dto.Home.X, dto.Home.Y)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(id, dto.Name, dto.Capacity, dto.CostPerKm, home)
}
