package queries

import (
	"errors"
	"time"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/pkg/guard"
)

var ErrGetLatestPlanQueryIsNotConstructed = errors.New(
	"GetLatestPlanQuery must be created via NewGetLatestPlanQuery constructor",
)

// GetLatestPlanQuery retrieves the most recent plan version with the executable
// itinerary of every vehicle.
//
// Example:
//
//	latest, err := handler.Handle(ctx, NewGetLatestPlanQuery())
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return nil // nothing planned yet
//	}
//	for _, it := range latest.Itineraries {
//	    fmt.Printf("%s: %d steps\n", it.VehicleName, len(it.Steps))
//	}
type GetLatestPlanQuery struct {
	guard guard.ConstructorGuard
}

func NewGetLatestPlanQuery() GetLatestPlanQuery {
	return GetLatestPlanQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLatestPlanQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestPlanQueryIsNotConstructed)
}

// GetLatestPlanQueryResponse is the read model of a stored plan.
type GetLatestPlanQueryResponse struct {
	ID          kernel.UUID
	Strategy    string
	Cost        float64
	CreatedAt   time.Time
	Itineraries []ItineraryResponse
}

// ItineraryResponse lists the steps of one vehicle, starting from its home.
type ItineraryResponse struct {
	VehicleID   kernel.UUID
	VehicleName string
	Start       kernel.Location
	Steps       []StepResponse
}

// StepResponse is one itinerary step. TaskID is nil for moves.
type StepResponse struct {
	Kind     string
	Location kernel.Location
	TaskID   *kernel.UUID
}
