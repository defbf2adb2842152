package services_test

import (
	"testing"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/plan"
	"fleetplan/internal/core/domain/model/task"
	"fleetplan/internal/core/domain/model/vehicle"
	"fleetplan/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlanner(t *testing.T) {
	vehicles, tasks := scatteredFleet(t)

	t.Run("valid", func(t *testing.T) {
		planner, err := services.NewPlanner(vehicles, tasks, manhattan{}, plan.StrategyRandom, services.DefaultSearchOptions())

		require.NoError(t, err)
		assert.Equal(t, plan.StrategyRandom, planner.Strategy())
		assert.Equal(t, tasks, planner.Tasks())
	})

	t.Run("no vehicles", func(t *testing.T) {
		_, err := services.NewPlanner(nil, tasks, manhattan{}, plan.StrategyGreedy, services.DefaultSearchOptions())
		require.ErrorIs(t, err, plan.ErrNoVehicles)
	})

	t.Run("no metric", func(t *testing.T) {
		_, err := services.NewPlanner(vehicles, tasks, nil, plan.StrategyGreedy, services.DefaultSearchOptions())
		require.ErrorIs(t, err, plan.ErrMetricIsRequired)
	})

	t.Run("invalid options", func(t *testing.T) {
		_, err := services.NewPlanner(vehicles, tasks, manhattan{}, plan.StrategyGreedy, services.SearchOptions{})
		require.Error(t, err)
	})
}

func TestPlanner_GeneratePlan(t *testing.T) {
	vehicles, tasks := scatteredFleet(t)

	for _, strategy := range []plan.Strategy{plan.StrategyGreedy, plan.StrategyRandom} {
		t.Run(strategy.String(), func(t *testing.T) {
			planner, err := services.NewPlanner(vehicles, tasks, manhattan{}, strategy, services.DefaultSearchOptions())
			require.NoError(t, err)

			result, err := planner.GeneratePlan(t.Context(), seeded(11))

			require.NoError(t, err)
			require.NoError(t, result.Best.Validate())
			assert.ElementsMatch(t, tasks, result.Best.Tasks())
			assert.LessOrEqual(t, result.BestCost, result.InitialCost)
		})
	}
}

func TestPlanner_GeneratePlan_Infeasible(t *testing.T) {
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "tiny", 1, 1, kernel.MustNewLocation(1, 1))
	require.NoError(t, err)
	heavy, err := task.NewTask(kernel.NewUUID(), kernel.MustNewLocation(2, 2), kernel.MustNewLocation(3, 3), 5)
	require.NoError(t, err)

	planner, err := services.NewPlanner([]*vehicle.Vehicle{v}, []*task.Task{heavy}, manhattan{}, plan.StrategyGreedy, services.DefaultSearchOptions())
	require.NoError(t, err)

	_, err = planner.GeneratePlan(t.Context(), seeded(1))
	require.ErrorIs(t, err, plan.ErrInfeasibleConfiguration)
}

func TestPlanner_ExtendPlan(t *testing.T) {
	vehicles, tasks := scatteredFleet(t)
	planner, err := services.NewPlanner(vehicles, tasks[:2], manhattan{}, plan.StrategyGreedy, services.DefaultSearchOptions())
	require.NoError(t, err)

	extended, err := planner.ExtendPlan(tasks[2])

	require.NoError(t, err)
	assert.Len(t, planner.Tasks(), 2)
	assert.Equal(t, tasks[:3], extended.Tasks())

	_, err = extended.ExtendPlan(tasks[2])
	require.ErrorIs(t, err, plan.ErrTaskAlreadyPlanned)

	_, err = extended.ExtendPlan(nil)
	require.ErrorIs(t, err, task.ErrTaskIsNotConstructed)
}
