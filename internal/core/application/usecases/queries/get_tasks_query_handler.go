package queries

import (
	"context"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/task"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTasksQueryHandler reads tasks straight from the tasks table.
type GetTasksQueryHandler struct {
	db *gorm.DB
}

func NewGetTasksQueryHandler(db *gorm.DB) GetTasksQueryHandler {
	return GetTasksQueryHandler{db: db}
}

// Handle returns the matching tasks in creation order.
func (h GetTasksQueryHandler) Handle(ctx context.Context, query GetTasksQuery) ([]GetTasksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT id, pickup_x, pickup_y, delivery_x, delivery_y, weight, status
		FROM tasks
		WHERE ? = FALSE OR status = ?
		ORDER BY seq
	`

	rows, err := h.db.WithContext(ctx).Raw(sql, query.OnlyUnplanned(), int(task.Unplanned)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]GetTasksQueryResponse, 0)
	for rows.Next() {
		var (
			id                   uuid.UUID
			pickupX, pickupY     int8
			deliveryX, deliveryY int8
			weight, status       int
		)
		if err = rows.Scan(&id, &pickupX, &pickupY, &deliveryX, &deliveryY, &weight, &status); err != nil {
			return nil, err
		}

		taskID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		pickup, locErr := kernel.NewLocation(kernel.Coordinate(pickupX), kernel.Coordinate(pickupY))
		if locErr != nil {
			return nil, locErr
		}
		delivery, locErr := kernel.NewLocation(kernel.Coordinate(deliveryX), kernel.Coordinate(deliveryY))
		if locErr != nil {
			return nil, locErr
		}

		tasks = append(tasks, GetTasksQueryResponse{
			ID:       taskID,
			Pickup:   pickup,
			Delivery: delivery,
			Weight:   weight,
			Status:   task.Status(status),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
