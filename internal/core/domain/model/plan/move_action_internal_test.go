package plan

import (
	"testing"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sixPickups(t *testing.T) Route {
	t.Helper()
	route := make(Route, 0, 6)
	for i := range 6 {
		tk, err := task.NewTask(kernel.NewUUID(), kernel.MustNewLocation(1, kernel.Coordinate(i+1)), kernel.MustNewLocation(2, 2), 1)
		require.NoError(t, err)
		route = append(route, Pick(tk))
	}
	return route
}

func TestMoveAction_ForwardIndexIsAdjustedAfterRemoval(t *testing.T) {
	route := sixPickups(t)

	moved := moveAction(route, 2, 5)

	// Remove index 2, then insert at 4 in the shortened route.
	expected := Route{route[0], route[1], route[3], route[4], route[2], route[5]}
	assert.Equal(t, expected, moved)
	assert.Len(t, moved, 6)
}

func TestMoveAction_BackwardIndexIsKept(t *testing.T) {
	route := sixPickups(t)

	moved := moveAction(route, 4, 1)

	assert.Equal(t, Route{route[0], route[4], route[1], route[2], route[3], route[5]}, moved)
}

func TestMoveAction_ToTheEnd(t *testing.T) {
	route := sixPickups(t)

	moved := moveAction(route, 0, 6)

	assert.Equal(t, Route{route[1], route[2], route[3], route[4], route[5], route[0]}, moved)
}

func TestMoveAction_SameOrNextPositionIsIdentity(t *testing.T) {
	route := sixPickups(t)

	assert.Equal(t, route, moveAction(route, 3, 3))
	assert.Equal(t, route, moveAction(route, 3, 4))
}

func TestMoveAction_LeavesInputUntouched(t *testing.T) {
	route := sixPickups(t)
	snapshot := route.clone()

	_ = moveAction(route, 0, 6)

	assert.Equal(t, snapshot, route)
}
