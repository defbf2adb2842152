package kernel

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"fleetplan/internal/pkg/errs"
	"fleetplan/internal/pkg/guard"
)

// Coordinate represents a position value on the delivery grid.
// Valid coordinates range from LocationMinX/Y to LocationMaxX/Y inclusive.
type Coordinate int8

const (
	// LocationMinX is the minimum valid X coordinate on the delivery grid.
	LocationMinX Coordinate = 1
	// LocationMinY is the minimum valid Y coordinate on the delivery grid.
	LocationMinY Coordinate = 1
	// LocationMaxX is the maximum valid X coordinate on the delivery grid.
	LocationMaxX Coordinate = 100
	// LocationMaxY is the maximum valid Y coordinate on the delivery grid.
	LocationMaxY Coordinate = 100
)

// ErrLocationIsNotConstructed is returned when using a zero-value Location.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or NewRandomLocation constructors")

// Location is a cell of the delivery grid: vehicle homes, pickup and delivery points.
// It is an immutable value object; the zero value is invalid.
//
// Example:
//
//	loc, err := kernel.NewLocation(5, 7)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Location: %s", loc) // Output: Location(5,7)
type Location struct { //nolint:recvcheck //using for validation
	x     Coordinate
	y     Coordinate
	guard guard.ConstructorGuard
}

// NewLocation creates a Location after checking both coordinates against the grid bounds.
//
// Returns:
//   - Location: A valid location instance
//   - error: errs.ValueIsOutOfRangeError for each coordinate out of bounds (joined)
func NewLocation(x Coordinate, y Coordinate) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setX(x), loc.setY(y)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// MustNewLocation is NewLocation for fixtures and constants; it panics on invalid coordinates.
func MustNewLocation(x Coordinate, y Coordinate) Location {
	loc, err := NewLocation(x, y)
	if err != nil {
		panic(err)
	}
	return loc
}

// NewRandomLocation creates a Location with uniformly drawn coordinates.
func NewRandomLocation() (Location, error) {
	x := Coordinate(rand.IntN(int(LocationMaxX-LocationMinX+1)) + int(LocationMinX)) //nolint:gosec // it's ok
	y := Coordinate(rand.IntN(int(LocationMaxY-LocationMinY+1)) + int(LocationMinY)) //nolint:gosec // it's ok
	return NewLocation(x, y)
}

// Validate returns ErrLocationIsNotConstructed for the zero value.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// X returns the X coordinate of the location.
func (l Location) X() Coordinate {
	return l.x
}

// Y returns the Y coordinate of the location.
func (l Location) Y() Coordinate {
	return l.y
}

// String returns "Location(x,y)".
func (l Location) String() string {
	return fmt.Sprintf("Location(%d,%d)", l.x, l.y)
}

// IsEqual compares two locations by coordinates.
// Both locations must be properly constructed for the comparison to succeed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// Distance calculates the Manhattan distance |x1-x2| + |y1-y2| between two locations.
//
// Example:
//
//	loc1, _ := NewLocation(1, 1)
//	loc2, _ := NewLocation(4, 5)
//	distance, err := loc1.Distance(loc2) // 7, nil
func (l Location) Distance(other Location) (int, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dx := abs(int(l.x) - int(other.x))
	dy := abs(int(l.y) - int(other.y))
	return dx + dy, nil
}

// PathTo returns the cells visited when travelling from l to other, one grid step at a
// time, moving along the X axis first and then along the Y axis.
// The starting cell is excluded and the destination is included, so the path of a
// location to itself is empty and len(path) always equals the Manhattan distance.
//
// Example:
//
//	from, _ := NewLocation(1, 1)
//	to, _ := NewLocation(3, 2)
//	path, _ := from.PathTo(to) // [Location(2,1) Location(3,1) Location(3,2)]
func (l Location) PathTo(other Location) ([]Location, error) {
	distance, err := l.Distance(other)
	if err != nil {
		return nil, err
	}

	path := make([]Location, 0, distance)
	current := l
	for current.x != other.x {
		current.x += step(current.x, other.x)
		path = append(path, current)
	}
	for current.y != other.y {
		current.y += step(current.y, other.y)
		path = append(path, current)
	}

	return path, nil
}

// setX sets the x coordinate with validation.
// Pointer receivers on the private setters let the constructor validate in place.
func (l *Location) setX(x Coordinate) error {
	if x < LocationMinX || x > LocationMaxX {
		return errs.NewValueIsOutOfRangeError("x", x, LocationMinX, LocationMaxX)
	}

	l.x = x
	return nil
}

// setY sets the y coordinate with validation.
func (l *Location) setY(y Coordinate) error {
	if y < LocationMinY || y > LocationMaxY {
		return errs.NewValueIsOutOfRangeError("y", y, LocationMinY, LocationMaxY)
	}

	l.y = y
	return nil
}

func step(from, to Coordinate) Coordinate {
	if from < to {
		return 1
	}
	return -1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
