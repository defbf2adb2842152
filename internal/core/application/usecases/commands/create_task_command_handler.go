package commands

import (
	"context"

	"fleetplan/internal/core/domain/model/task"
)

// CreateTaskCommandHandler persists new transport tasks.
type CreateTaskCommandHandler struct {
	uowFactory TaskUoWFactory
}

// NewCreateTaskCommandHandler creates a handler for task creation.
func NewCreateTaskCommandHandler(uowFactory TaskUoWFactory) CreateTaskCommandHandler {
	return CreateTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the task in Unplanned status and persists it within a transaction.
func (h *CreateTaskCommandHandler) Handle(ctx context.Context, cmd CreateTaskCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	t, err := task.NewTask(cmd.TaskID(), cmd.Pickup(), cmd.Delivery(), cmd.Weight())
	if err != nil {
		return err
	}

	if err = uow.TaskRepository().Add(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
