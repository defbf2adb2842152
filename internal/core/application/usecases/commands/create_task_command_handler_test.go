package commands_test

import (
	"context"
	"errors"
	"testing"

	"fleetplan/internal/core/application/usecases/commands"
	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/task"
	"fleetplan/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Add(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*task.Task)
	return t, args.Error(1)
}

func (m *MockTaskRepository) GetAll(ctx context.Context) ([]*task.Task, error) {
	args := m.Called(ctx)
	tasks, _ := args.Get(0).([]*task.Task)
	return tasks, args.Error(1)
}

func (m *MockTaskRepository) GetUnplanned(ctx context.Context) ([]*task.Task, error) {
	args := m.Called(ctx)
	tasks, _ := args.Get(0).([]*task.Task)
	return tasks, args.Error(1)
}

type MockTaskUoW struct {
	mock.Mock
}

func (m *MockTaskUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskUoW) TaskRepository() ports.TaskRepository {
	args := m.Called()
	return args.Get(0).(ports.TaskRepository)
}

type MockTaskUoWFactory struct {
	mock.Mock
}

func (m *MockTaskUoWFactory) Create() commands.TaskUoW {
	args := m.Called()
	return args.Get(0).(commands.TaskUoW)
}

func TestCreateTaskCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateTaskCommand(kernel.MustNewLocation(2, 3), kernel.MustNewLocation(9, 9), 4)
	require.NoError(t, err)

	mockRepo := new(MockTaskRepository)
	mockUoW := new(MockTaskUoW)
	mockFactory := new(MockTaskUoWFactory)

	created := mock.MatchedBy(func(tk *task.Task) bool {
		return tk.ID().IsEqual(cmd.TaskID()) && tk.Weight() == 4 && tk.Status() == task.Unplanned
	})

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("TaskRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, created).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateTaskCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateTaskCommandHandler_Handle_InvalidCommand(t *testing.T) {
	ctx := t.Context()
	mockFactory := new(MockTaskUoWFactory)
	handler := commands.NewCreateTaskCommandHandler(mockFactory)

	err := handler.Handle(ctx, commands.CreateTaskCommand{})

	require.ErrorIs(t, err, commands.ErrCreateTaskCommandIsNotConstructed)
	mockFactory.AssertNotCalled(t, "Create")
}

func TestCreateTaskCommandHandler_Handle_RepositoryAddError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateTaskCommand(kernel.MustNewLocation(2, 3), kernel.MustNewLocation(9, 9), 4)
	require.NoError(t, err)

	expectedError := errors.New("repository add failed")
	mockRepo := new(MockTaskRepository)
	mockUoW := new(MockTaskUoW)
	mockFactory := new(MockTaskUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("TaskRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*task.Task")).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateTaskCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	assert.Equal(t, expectedError, err)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}
