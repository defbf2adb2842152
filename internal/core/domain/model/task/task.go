package task

import (
	"errors"
	"fmt"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/pkg/errs"
	"fleetplan/internal/pkg/guard"
)

// ErrTaskIsNotConstructed is returned when a Task was not created through NewTask or RestoreTask.
var ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask constructor")

// Task is a load that has to travel from its pickup location to its delivery location.
//
// A task is identified by its ID; two Task values with the same ID are the same task
// even if they were loaded separately. Pickup, delivery and weight never change after
// construction, only the planning status does.
//
// Example:
//
//	pickup, _ := kernel.NewLocation(1, 1)
//	delivery, _ := kernel.NewLocation(4, 6)
//	t, err := task.NewTask(kernel.NewUUID(), pickup, delivery, 3)
//	if err != nil {
//	    // Handle validation error
//	}
type Task struct {
	id       kernel.UUID
	pickup   kernel.Location
	delivery kernel.Location
	weight   int
	status   Status
	guard    guard.ConstructorGuard
}

// NewTask creates an Unplanned task.
//
// Returns:
//   - *Task: The created task if all validations pass
//   - error: all validation errors joined together
func NewTask(id kernel.UUID, pickup, delivery kernel.Location, weight int) (*Task, error) {
	return RestoreTask(id, pickup, delivery, weight, Unplanned)
}

// RestoreTask rebuilds a task loaded from persistent storage, status included.
func RestoreTask(id kernel.UUID, pickup, delivery kernel.Location, weight int, status Status) (*Task, error) {
	t := &Task{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setPickup(pickup),
		t.setDelivery(delivery),
		t.setWeight(weight),
		t.setStatus(status),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate returns ErrTaskIsNotConstructed for nil or zero-value tasks.
func (t *Task) Validate() error {
	if t == nil {
		return ErrTaskIsNotConstructed
	}
	return t.guard.Validate(ErrTaskIsNotConstructed)
}

// IsEqual compares two tasks by identity.
func (t *Task) IsEqual(other *Task) bool {
	return other != nil && t.id.IsEqual(other.id)
}

func (t *Task) ID() kernel.UUID {
	return t.id
}

func (t *Task) Pickup() kernel.Location {
	return t.pickup
}

func (t *Task) Delivery() kernel.Location {
	return t.delivery
}

func (t *Task) Weight() int {
	return t.weight
}

func (t *Task) Status() Status {
	return t.status
}

// MarkPlanned records that the task became part of a stored plan.
func (t *Task) MarkPlanned() error {
	newStatus, err := t.status.Plan()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// String returns a compact human-readable form used in logs and plan dumps.
func (t *Task) String() string {
	return fmt.Sprintf("Task(%s %s->%s w=%d)", t.id, t.pickup, t.delivery, t.weight)
}

// HeaviestWeight returns the largest weight among tasks, 0 for an empty slice.
func HeaviestWeight(tasks []*Task) int {
	heaviest := 0
	for _, t := range tasks {
		heaviest = max(heaviest, t.weight)
	}
	return heaviest
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setPickup(pickup kernel.Location) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	t.pickup = pickup
	return nil
}

func (t *Task) setDelivery(delivery kernel.Location) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	t.delivery = delivery
	return nil
}

// setWeight requires a strictly positive weight.
func (t *Task) setWeight(weight int) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid", fmt.Errorf("%d is not greater than 0", weight))
	}
	t.weight = weight
	return nil
}

func (t *Task) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}
