package vehicle

import (
	"errors"
	"fmt"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/task"
	"fleetplan/internal/pkg/errs"
	"fleetplan/internal/pkg/guard"
)

// Domain errors for vehicle construction.
var (
	// ErrNameIsRequired is returned when attempting to create a vehicle without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
)

// Vehicle is a member of the fleet: it starts at its home location, can hold up to
// capacity units of weight and costs costPerKm for every distance unit travelled.
//
// Vehicles are immutable; plans refer to them by pointer and compare them by ID.
//
// Example:
//
//	home, _ := kernel.NewLocation(1, 1)
//	v, err := vehicle.NewVehicle(kernel.NewUUID(), "Van 1", 10, 1.5, home)
//	if err != nil {
//	    // Handle construction error
//	}
type Vehicle struct {
	id        kernel.UUID
	name      string
	capacity  int
	costPerKm float64
	home      kernel.Location
	guard     guard.ConstructorGuard
}

// NewVehicle creates a Vehicle, validating every parameter.
//
// Returns:
//   - *Vehicle: A valid vehicle
//   - error: Validation error (aggregated for multiple issues)
func NewVehicle(id kernel.UUID, name string, capacity int, costPerKm float64, home kernel.Location) (*Vehicle, error) {
	v := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setName(name),
		v.setCapacity(capacity),
		v.setCostPerKm(costPerKm),
		v.setHome(home),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a Vehicle from persistent storage.
// Vehicles carry no state beyond their construction parameters, so the same
// validation rules as NewVehicle apply.
func RestoreVehicle(id kernel.UUID, name string, capacity int, costPerKm float64, home kernel.Location) (*Vehicle, error) {
	return NewVehicle(id, name, capacity, costPerKm, home)
}

// IsEqual compares two vehicles by their identifiers.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	if other == nil {
		return false
	}
	return v.id.IsEqual(other.id)
}

// Validate checks that the Vehicle was built by NewVehicle or RestoreVehicle.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// ID returns the unique identifier of the vehicle.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Name returns the human-readable name of the vehicle.
func (v *Vehicle) Name() string {
	return v.name
}

// Capacity returns the maximum total weight the vehicle can hold at once.
func (v *Vehicle) Capacity() int {
	return v.capacity
}

// CostPerKm returns the price of one distance unit.
func (v *Vehicle) CostPerKm() float64 {
	return v.costPerKm
}

// Home returns the location every route of the vehicle starts from.
func (v *Vehicle) Home() kernel.Location {
	return v.home
}

// CanCarry reports whether t fits into an empty vehicle.
//
// Example:
//
//	if !v.CanCarry(t) {
//	    // no route of v can ever contain t
//	}
func (v *Vehicle) CanCarry(t *task.Task) bool {
	return t.Weight() <= v.capacity
}

func (v *Vehicle) String() string {
	return fmt.Sprintf("Vehicle(%s cap=%d)", v.name, v.capacity)
}

// Biggest returns the vehicle with the largest capacity; ties go to the first one in
// input order. It returns nil for an empty slice.
func Biggest(vehicles []*Vehicle) *Vehicle {
	var biggest *Vehicle
	for _, v := range vehicles {
		if biggest == nil || v.capacity > biggest.capacity {
			biggest = v
		}
	}
	return biggest
}

// setID sets the vehicle's unique identifier with validation.
func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	v.id = id
	return nil
}

// setName sets the vehicle's name with validation.
func (v *Vehicle) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	v.name = name
	return nil
}

func (v *Vehicle) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity is invalid", fmt.Errorf("%d is not greater than 0", capacity))
	}

	v.capacity = capacity
	return nil
}

func (v *Vehicle) setCostPerKm(costPerKm float64) error {
	if costPerKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("cost per km is invalid", fmt.Errorf("%g is not greater than 0", costPerKm))
	}

	v.costPerKm = costPerKm
	return nil
}

// setHome sets the starting location with validation.
func (v *Vehicle) setHome(home kernel.Location) error {
	if err := home.Validate(); err != nil {
		return err
	}

	v.home = home
	return nil
}
