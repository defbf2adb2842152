package plan

import (
	"errors"
	"fmt"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/pkg/guard"
)

// Rules every PlanState has to satisfy.
var (
	ErrMissingRoute         = errors.New("all vehicles should have a (maybe empty) route")
	ErrPickupCount          = errors.New("all tasks should be picked up exactly once")
	ErrDeliveryCount        = errors.New("all tasks should be delivered exactly once")
	ErrVehicleMismatch      = errors.New("all tasks should be delivered by the vehicle that picked them up")
	ErrDeliveryBeforePickup = errors.New("all tasks should be delivered after being picked up")
	ErrOverloaded           = errors.New("no vehicle should be overloaded")
	ErrUnknownTask          = errors.New("routes should only contain tasks of the plan")
)

type taskTrace struct {
	pickups, deliveries              int
	pickupVehicle, deliveryVehicle   int
	pickupPosition, deliveryPosition int
}

// Validate scans the whole plan and returns every violated rule, joined.
// It is O(total actions) and meant for tests, debugging and restored plans.
func (p *PlanState) Validate() error {
	var violations []error

	if len(p.routes) != len(p.vehicles) {
		violations = append(violations, fmt.Errorf("%w: %d routes for %d vehicles", ErrMissingRoute, len(p.routes), len(p.vehicles)))
		return errors.Join(violations...)
	}

	traces := make(map[kernel.UUID]*taskTrace, len(p.tasks))
	for _, t := range p.tasks {
		traces[t.ID()] = &taskTrace{}
	}

	for vi, v := range p.vehicles {
		load := 0
		for position, a := range p.routes[vi] {
			trace, ok := traces[a.task.ID()]
			if !ok {
				violations = append(violations, fmt.Errorf("%w: %s in route of %s", ErrUnknownTask, a, v.Name()))
				continue
			}

			if a.event == EventPick {
				trace.pickups++
				trace.pickupVehicle = vi
				trace.pickupPosition = position
			} else {
				trace.deliveries++
				trace.deliveryVehicle = vi
				trace.deliveryPosition = position
			}

			load += a.DifferentialWeight()
			if load > v.Capacity() {
				violations = append(violations,
					fmt.Errorf("%w: %s carries %d at position %d, capacity is %d", ErrOverloaded, v.Name(), load, position, v.Capacity()))
			}
		}
	}

	for _, t := range p.tasks {
		trace := traces[t.ID()]
		if trace.pickups != 1 {
			violations = append(violations, fmt.Errorf("%w: task %s picked up %d times", ErrPickupCount, t.ID(), trace.pickups))
		}
		if trace.deliveries != 1 {
			violations = append(violations, fmt.Errorf("%w: task %s delivered %d times", ErrDeliveryCount, t.ID(), trace.deliveries))
		}
		if trace.pickups != 1 || trace.deliveries != 1 {
			continue
		}
		if trace.pickupVehicle != trace.deliveryVehicle {
			violations = append(violations, fmt.Errorf("%w: task %s", ErrVehicleMismatch, t.ID()))
			continue
		}
		if trace.pickupPosition >= trace.deliveryPosition {
			violations = append(violations, fmt.Errorf("%w: task %s picked up at %d, delivered at %d",
				ErrDeliveryBeforePickup, t.ID(), trace.pickupPosition, trace.deliveryPosition))
		}
	}

	return errors.Join(violations...)
}

// MustValidate panics with a guard.ContractViolation when the plan breaks any rule.
// A broken plan can only come from a bug in move generation.
func (p *PlanState) MustValidate() {
	err := p.Validate()
	guard.Ensure(err == nil, "invalid plan state: %v", err)
}
