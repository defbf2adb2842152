package queries

import (
	"context"

	"fleetplan/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllVehiclesQueryHandler reads the fleet straight from the vehicles table.
type GetAllVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllVehiclesQueryHandler creates a handler for fleet retrieval queries.
func NewGetAllVehiclesQueryHandler(db *gorm.DB) GetAllVehiclesQueryHandler {
	return GetAllVehiclesQueryHandler{db: db}
}

// Handle returns every vehicle in registration order.
func (h GetAllVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetAllVehiclesQuery,
) ([]GetAllVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]GetAllVehiclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			capacity,
			cost_per_km,
			home_x,
			home_y
		FROM vehicles
		ORDER BY seq
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var v GetAllVehiclesQueryResponse
		var homeX, homeY int8
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&v.Name,
			&v.Capacity,
			&v.CostPerKm,
			&homeX,
			&homeY,
		)
		if err != nil {
			return nil, err
		}

		vehicleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		v.ID = vehicleID

		home, locErr := kernel.NewLocation(kernel.Coordinate(homeX), kernel.Coordinate(homeY))
		if locErr != nil {
			return nil, locErr
		}
		v.Home = home
		vehicles = append(vehicles, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
