// Package grid implements the delivery grid topology: Manhattan distances and
// axis-aligned paths between grid cells.
package grid

import (
	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/pkg/guard"
)

// Topology is the ports.Topology of the kernel grid. It is stateless and safe for
// concurrent use.
type Topology struct{}

func NewTopology() Topology {
	return Topology{}
}

// Distance returns the Manhattan distance between two valid locations.
// Plans only ever hold constructed locations, so an invalid one is a programming error.
func (Topology) Distance(from, to kernel.Location) float64 {
	d, err := from.Distance(to)
	guard.Ensure(err == nil, "distance between %s and %s: %v", from, to, err)
	return float64(d)
}

// Path walks along the X axis first and then along the Y axis.
func (Topology) Path(from, to kernel.Location) ([]kernel.Location, error) {
	return from.PathTo(to)
}
