package queries

import (
	"errors"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/task"
	"fleetplan/internal/pkg/guard"
)

var ErrGetTasksQueryIsNotConstructed = errors.New(
	"GetTasksQuery must be created via NewGetTasksQuery constructor",
)

// GetTasksQuery lists tasks in creation order, optionally only those still waiting
// for a planning run.
type GetTasksQuery struct {
	onlyUnplanned bool

	guard guard.ConstructorGuard
}

// NewGetTasksQuery creates a task listing query.
func NewGetTasksQuery(onlyUnplanned bool) GetTasksQuery {
	return GetTasksQuery{onlyUnplanned: onlyUnplanned, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetTasksQueryIsNotConstructed)
}

func (q GetTasksQuery) OnlyUnplanned() bool {
	return q.onlyUnplanned
}

// GetTasksQueryResponse represents a task in the read model.
type GetTasksQueryResponse struct {
	ID       kernel.UUID
	Pickup   kernel.Location
	Delivery kernel.Location
	Weight   int
	Status   task.Status
}
