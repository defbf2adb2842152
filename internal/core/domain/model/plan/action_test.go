package plan_test

import (
	"testing"

	"fleetplan/internal/core/domain/model/plan"
	"fleetplan/internal/core/domain/model/task"
	"fleetplan/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent(t *testing.T) {
	assert.Equal(t, "Pick", plan.EventPick.String())
	assert.Equal(t, "Deliver", plan.EventDeliver.String())
	assert.Equal(t, "Unknown", plan.EventUnknown.String())
	require.ErrorIs(t, plan.EventUnknown.Validate(), errs.ErrValueIsInvalid)

	parsed, err := plan.ParseEvent("Deliver")
	require.NoError(t, err)
	assert.Equal(t, plan.EventDeliver, parsed)

	_, err = plan.ParseEvent("Drop")
	require.Error(t, err)
}

func TestAction(t *testing.T) {
	tk := newTask(t, loc(1, 2), loc(3, 4), 5)

	pick := plan.Pick(tk)
	deliver := plan.Deliver(tk)

	assert.Equal(t, plan.EventPick, pick.Event())
	assert.Same(t, tk, pick.Task())
	assert.Equal(t, 5, pick.DifferentialWeight())
	assert.Equal(t, -5, deliver.DifferentialWeight())
	assert.Equal(t, loc(1, 2), pick.Location())
	assert.Equal(t, loc(3, 4), deliver.Location())
	assert.Equal(t, "Pick("+tk.ID().String()+")", pick.String())
}

func TestNewAction(t *testing.T) {
	tk := newTask(t, loc(1, 2), loc(3, 4), 5)

	a, err := plan.NewAction(plan.EventDeliver, tk)
	require.NoError(t, err)
	assert.Equal(t, plan.Deliver(tk), a)

	_, err = plan.NewAction(plan.EventUnknown, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, task.ErrTaskIsNotConstructed)
}

func TestLoad(t *testing.T) {
	t1 := newTask(t, loc(1, 1), loc(2, 2), 4)
	t2 := newTask(t, loc(1, 1), loc(2, 2), 3)
	route := routeOf(t, plan.EventPick, t1, plan.EventPick, t2, plan.EventDeliver, t1, plan.EventDeliver, t2)

	assert.Equal(t, 0, plan.Load(route, -1))
	assert.Equal(t, 4, plan.Load(route, 0))
	assert.Equal(t, 7, plan.Load(route, 1))
	assert.Equal(t, 3, plan.Load(route, 2))
	assert.Equal(t, 0, plan.Load(route, 3))
}
