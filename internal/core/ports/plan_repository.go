package ports

import (
	"context"

	"fleetplan/internal/core/domain/model/plan"
)

// PlanRepository stores plan versions. Plans are never updated: every planning run or
// task assignment saves a new version.
type PlanRepository interface {
	// Save persists the record with its routes and executable itineraries.
	Save(ctx context.Context, record *plan.Record, itineraries []plan.Itinerary) error

	// GetLatest restores the most recently saved plan.
	// Returns errs.ObjectNotFoundError when nothing was planned yet.
	GetLatest(ctx context.Context) (*plan.Record, error)
}
