package vehicle_test

import (
	"testing"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/task"
	"fleetplan/internal/core/domain/model/vehicle"
	"fleetplan/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidVehicle(t *testing.T, name string, capacity int) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), name, capacity, 1, kernel.MustNewLocation(1, 1))
	require.NoError(t, err)
	require.NotNil(t, v)
	return v
}

func createValidTask(t *testing.T, weight int) *task.Task {
	t.Helper()
	tk, err := task.NewTask(kernel.NewUUID(), kernel.MustNewLocation(5, 5), kernel.MustNewLocation(6, 6), weight)
	require.NoError(t, err)
	return tk
}

func TestNewVehicle(t *testing.T) {
	validID := kernel.NewUUID()
	home := kernel.MustNewLocation(5, 7)

	t.Run("should create vehicle with valid parameters", func(t *testing.T) {
		v, err := vehicle.NewVehicle(validID, "Van", 10, 2.5, home)

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.True(t, v.ID().IsEqual(validID))
		assert.Equal(t, "Van", v.Name())
		assert.Equal(t, 10, v.Capacity())
		assert.InDelta(t, 2.5, v.CostPerKm(), 1e-9)
		assert.Equal(t, home, v.Home())
	})

	t.Run("should return error for invalid UUID", func(t *testing.T) {
		v, err := vehicle.NewVehicle(kernel.UUID{}, "Van", 10, 1, home)

		require.Error(t, err)
		assert.Nil(t, v)
		assert.Contains(t, err.Error(), kernel.ErrUUIDIsNotConstructed.Error())
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		_, err := vehicle.NewVehicle(validID, "", 10, 1, home)

		require.ErrorIs(t, err, vehicle.ErrNameIsRequired)
	})

	t.Run("should return error for non positive capacity", func(t *testing.T) {
		_, err := vehicle.NewVehicle(validID, "Van", 0, 1, home)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "capacity is invalid")
	})

	t.Run("should return error for non positive cost", func(t *testing.T) {
		_, err := vehicle.NewVehicle(validID, "Van", 3, -0.5, home)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "cost per km is invalid")
	})

	t.Run("should aggregate errors", func(t *testing.T) {
		_, err := vehicle.NewVehicle(kernel.UUID{}, "", -1, 0, kernel.Location{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "value is required: name")
		assert.Contains(t, err.Error(), "capacity is invalid")
		assert.Contains(t, err.Error(), "cost per km is invalid")
		assert.Contains(t, err.Error(), "location must be created")
	})
}

func TestRestoreVehicle(t *testing.T) {
	id := kernel.NewUUID()
	v, err := vehicle.RestoreVehicle(id, "Truck", 25, 3, kernel.MustNewLocation(9, 9))

	require.NoError(t, err)
	require.NoError(t, v.Validate())
	assert.True(t, v.ID().IsEqual(id))
}

func TestVehicle_Validate(t *testing.T) {
	var nilVehicle *vehicle.Vehicle
	assert.Equal(t, vehicle.ErrVehicleIsNotConstructed, nilVehicle.Validate())
	assert.Equal(t, vehicle.ErrVehicleIsNotConstructed, (&vehicle.Vehicle{}).Validate())
}

func TestVehicle_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, _ := vehicle.NewVehicle(id, "A", 1, 1, kernel.MustNewLocation(1, 1))
	b, _ := vehicle.NewVehicle(id, "B", 7, 2, kernel.MustNewLocation(3, 3))

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(createValidVehicle(t, "C", 1)))
	assert.False(t, a.IsEqual(nil))
}

func TestVehicle_CanCarry(t *testing.T) {
	v := createValidVehicle(t, "Van", 4)

	assert.True(t, v.CanCarry(createValidTask(t, 3)))
	assert.True(t, v.CanCarry(createValidTask(t, 4)))
	assert.False(t, v.CanCarry(createValidTask(t, 5)))
}

func TestBiggest(t *testing.T) {
	t.Run("empty fleet", func(t *testing.T) {
		assert.Nil(t, vehicle.Biggest(nil))
	})

	t.Run("largest capacity wins", func(t *testing.T) {
		small := createValidVehicle(t, "small", 5)
		big := createValidVehicle(t, "big", 10)

		assert.Same(t, big, vehicle.Biggest([]*vehicle.Vehicle{small, big}))
	})

	t.Run("ties go to the first vehicle", func(t *testing.T) {
		first := createValidVehicle(t, "first", 8)
		second := createValidVehicle(t, "second", 8)

		assert.Same(t, first, vehicle.Biggest([]*vehicle.Vehicle{first, second}))
	})
}
