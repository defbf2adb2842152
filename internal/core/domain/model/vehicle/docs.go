// Package vehicle provides the Vehicle entity of the planning domain.
//
// A vehicle starts every route from its home location, carries at most its capacity at
// any moment and pays its cost per distance unit for every unit it travels.
//
// Key business rules:
//   - Vehicles must have a valid identifier, non-empty name and home location
//   - Capacity and cost per kilometre must be positive
//   - A vehicle can carry a task only if the task weight does not exceed its capacity
package vehicle
