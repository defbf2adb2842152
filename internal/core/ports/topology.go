package ports

import "fleetplan/internal/core/domain/model/kernel"

// Topology answers distance and path queries on the delivery grid.
// Implementations satisfy both plan.Metric and plan.Pather.
type Topology interface {
	Distance(from, to kernel.Location) float64
	Path(from, to kernel.Location) ([]kernel.Location, error)
}
