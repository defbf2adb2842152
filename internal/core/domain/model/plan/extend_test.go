package plan_test

import (
	"testing"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/plan"
	"fleetplan/internal/core/domain/model/task"
	"fleetplan/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendWithTask(t *testing.T) {
	near := newVehicle(t, "near", 10, 1, loc(10, 10))
	far := newVehicle(t, "far", 10, 1, loc(1, 1))
	existing := newTask(t, loc(2, 2), loc(3, 3), 2)
	base := restore(t, []*vehicle.Vehicle{far, near}, []*task.Task{existing}, map[kernel.UUID]plan.Route{
		far.ID(): routeOf(t, P, existing, D, existing),
	})

	won := newTask(t, loc(9, 10), loc(9, 12), 5)

	extended, err := base.ExtendWithTask(won)

	require.NoError(t, err)
	require.NoError(t, extended.Validate())
	assert.Equal(t, routeOf(t, P, won, D, won), extended.Route(near))
	assert.Equal(t, routeOf(t, P, existing, D, existing), extended.Route(far))
	assert.Len(t, extended.Tasks(), 2)
	assert.InDelta(t, base.Cost()+3, extended.Cost(), 1e-9)

	t.Run("base plan is untouched", func(t *testing.T) {
		assert.Len(t, base.Tasks(), 1)
		assert.Empty(t, base.Route(near))
	})

	t.Run("task already planned", func(t *testing.T) {
		_, err := extended.ExtendWithTask(won)
		require.ErrorIs(t, err, plan.ErrTaskAlreadyPlanned)
	})
}

func TestExtendWithTask_SkipsSmallVehicles(t *testing.T) {
	small := newVehicle(t, "small", 2, 1, loc(5, 5))
	big := newVehicle(t, "big", 10, 1, loc(90, 90))
	base := restore(t, []*vehicle.Vehicle{small, big}, nil, nil)

	extended, err := base.ExtendWithTask(newTask(t, loc(5, 6), loc(5, 7), 3))

	require.NoError(t, err)
	assert.Empty(t, extended.Route(small))
	assert.Len(t, extended.Route(big), 2)
}

func TestExtendWithTask_TieGoesToFirstVehicle(t *testing.T) {
	first := newVehicle(t, "first", 10, 1, loc(5, 5))
	second := newVehicle(t, "second", 10, 1, loc(5, 5))
	base := restore(t, []*vehicle.Vehicle{first, second}, nil, nil)

	extended, err := base.ExtendWithTask(newTask(t, loc(6, 6), loc(7, 7), 3))

	require.NoError(t, err)
	assert.Len(t, extended.Route(first), 2)
	assert.Empty(t, extended.Route(second))
}

func TestExtendWithTask_Errors(t *testing.T) {
	v := newVehicle(t, "v", 2, 1, loc(5, 5))
	base := restore(t, []*vehicle.Vehicle{v}, nil, nil)

	_, err := base.ExtendWithTask(newTask(t, loc(6, 6), loc(7, 7), 3))
	require.ErrorIs(t, err, plan.ErrInfeasibleConfiguration)

	_, err = base.ExtendWithTask(nil)
	require.ErrorIs(t, err, task.ErrTaskIsNotConstructed)
}
