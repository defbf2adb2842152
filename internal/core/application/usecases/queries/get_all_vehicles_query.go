// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read the tables directly and return read models for specific use cases.
package queries

import (
	"errors"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/pkg/guard"
)

var (
	ErrGetAllVehiclesQueryIsNotConstructed = errors.New(
		"GetAllVehiclesQuery must be created via NewGetAllVehiclesQuery constructor",
	)
)

// GetAllVehiclesQuery retrieves the whole fleet in registration order.
//
// Example:
//
//	query := NewGetAllVehiclesQuery()
//	handler := NewGetAllVehiclesQueryHandler(db)
//
//	vehicles, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve vehicles: %w", err)
//	}
//	for _, v := range vehicles {
//	    fmt.Printf("%s carries %d from %s\n", v.Name, v.Capacity, v.Home)
//	}
type GetAllVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllVehiclesQuery creates a query to retrieve all vehicles.
func NewGetAllVehiclesQuery() GetAllVehiclesQuery {
	return GetAllVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllVehiclesQueryIsNotConstructed)
}

// GetAllVehiclesQueryResponse represents a vehicle in the read model.
type GetAllVehiclesQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Capacity  int
	CostPerKm float64
	Home      kernel.Location
}
