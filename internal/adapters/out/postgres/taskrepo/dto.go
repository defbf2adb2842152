// Package taskrepo provides data transfer objects and mapping functions for task persistence.
package taskrepo

import (
	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// TaskDTO represents the database structure for persisting transport tasks.
// Status is indexed for the unplanned-task lookups of the replanning job.
type TaskDTO struct {
	ID       uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Seq      int64       `gorm:"autoIncrement;not null;uniqueIndex"`
	Pickup   LocationDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery LocationDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	Weight   int         `gorm:"type:int;not null"`
	Status   int         `gorm:"type:smallint;not null;index"`
}

// TableName overrides GORM's default "task_dtos".
func (TaskDTO) TableName() string {
	return "tasks"
}

// LocationDTO represents embedded grid coordinates within the task table.
type LocationDTO struct {
	X kernel.Coordinate `gorm:"type:smallint"`
	Y kernel.Coordinate `gorm:"type:smallint"`
}

func fromDomain(t *task.Task) TaskDTO {
	return TaskDTO{
		ID: t.ID().Bytes(),
		Pickup: LocationDTO{
			X: t.Pickup().X(),
			Y: t.Pickup().Y(),
		},
		Delivery: LocationDTO{
			X: t.Delivery().X(),
			Y: t.Delivery().Y(),
		},
		Weight: t.Weight(),
		Status: int(t.Status()),
	}
}

// ToDomain converts a database row back into a task using RestoreTask.
// Exported for the plan repository, which restores the tasks of a stored plan.
func ToDomain(dto TaskDTO) (*task.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewLocation(dto.Pickup.X, dto.Pickup.Y)
	if err != nil {
		return nil, err
	}

	delivery, err := kernel.NewLocation(dto.Delivery.X, dto.Delivery.Y)
	if err != nil {
		return nil, err
	}

	return task.RestoreTask(id, pickup, delivery, dto.Weight, task.Status(dto.Status))
}
