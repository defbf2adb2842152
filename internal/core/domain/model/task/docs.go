// Package task provides the transport task of the planning domain: a load of a given
// weight that has to be picked up at one grid location and delivered at another.
//
// The package includes:
//   - Task: the entity holding identity, pickup, delivery and weight
//   - Status: a small state machine tracking whether a task is already part of a plan
//
// Key business rules:
//   - Tasks must have a valid identifier, two valid locations and a positive weight
//   - Pickup and delivery may coincide; such a task travels zero distance
//   - Status follows Unplanned -> Planned; a planned task cannot be planned again
package task
