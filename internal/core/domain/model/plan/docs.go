// Package plan holds the pickup-and-delivery plan model and the local moves a search
// uses to explore it.
//
// A PlanState gives every vehicle an ordered Route of pick and deliver Actions. Plans are
// immutable snapshots: BuildInitial creates the first one, Neighbors and the individual
// moves derive new ones, and Cost is computed once per snapshot. Every plan produced by
// this package satisfies the following rules, which Validate checks exhaustively:
//
//  1. every vehicle has a route, possibly empty
//  2. every task is picked up exactly once
//  3. every task is delivered exactly once
//  4. the vehicle that picks a task up also delivers it
//  5. the pickup of a task comes strictly before its delivery
//  6. no prefix of a route loads the vehicle beyond its capacity
//
// Precondition failures of the moves (wrong event at an index, index out of range,
// transferring from an empty route) panic with a *guard.ContractViolation.
package plan
