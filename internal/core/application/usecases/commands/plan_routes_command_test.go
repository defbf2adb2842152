package commands_test

import (
	"testing"

	"fleetplan/internal/core/application/usecases/commands"
	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/plan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlanRoutesCommand(t *testing.T) {
	cmd, err := commands.NewPlanRoutesCommand(plan.StrategyRandom, true)

	require.NoError(t, err)
	assert.Equal(t, plan.StrategyRandom, cmd.Strategy())
	assert.True(t, cmd.OnlyIfUnplanned())
	assert.NoError(t, cmd.PlanID().Validate())
	assert.NoError(t, cmd.Validate())
}

func TestNewPlanRoutesCommand_UnknownStrategy(t *testing.T) {
	cmd, err := commands.NewPlanRoutesCommand(plan.StrategyUnknown, false)

	require.Error(t, err)
	assert.Equal(t, commands.PlanRoutesCommand{}, cmd)
	assert.Equal(t, commands.ErrPlanRoutesCommandIsNotConstructed, cmd.Validate())
}

func TestNewAssignTaskCommand(t *testing.T) {
	taskID := kernel.NewUUID()

	cmd, err := commands.NewAssignTaskCommand(taskID)

	require.NoError(t, err)
	assert.Equal(t, taskID, cmd.TaskID())
	assert.NoError(t, cmd.PlanID().Validate())
	assert.False(t, cmd.PlanID().IsEqual(taskID))
}

func TestNewAssignTaskCommand_NilTaskID(t *testing.T) {
	cmd, err := commands.NewAssignTaskCommand(kernel.UUID{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.Equal(t, commands.ErrAssignTaskCommandIsNotConstructed, cmd.Validate())
}
