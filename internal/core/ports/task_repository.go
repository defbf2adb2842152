package ports

import (
	"context"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/task"
)

// TaskRepository defines the persistence contract for transport tasks.
type TaskRepository interface {
	// Add persists a new task.
	Add(ctx context.Context, task *task.Task) error

	// Update persists the planning status of an existing task.
	Update(ctx context.Context, task *task.Task) error

	// Get retrieves a task by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*task.Task, error)

	// GetAll retrieves every task in creation order.
	GetAll(ctx context.Context) ([]*task.Task, error)

	// GetUnplanned retrieves the tasks in Unplanned status, in creation order.
	GetUnplanned(ctx context.Context) ([]*task.Task, error)
}
