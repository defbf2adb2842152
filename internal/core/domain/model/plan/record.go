package plan

import (
	"errors"
	"time"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/pkg/errs"
	"fleetplan/internal/pkg/guard"
)

// ErrRecordIsNotConstructed is returned when a Record was not created through NewRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Record is a stored plan version: a PlanState together with its identity, the strategy
// that produced it and its creation time.
type Record struct {
	id        kernel.UUID
	strategy  Strategy
	createdAt time.Time
	state     *PlanState
	guard     guard.ConstructorGuard
}

// NewRecord wraps state into a new plan version.
func NewRecord(id kernel.UUID, strategy Strategy, state *PlanState, createdAt time.Time) (*Record, error) {
	r := &Record{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setStrategy(strategy),
		r.setState(state),
		r.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

func (r *Record) ID() kernel.UUID {
	return r.id
}

func (r *Record) Strategy() Strategy {
	return r.strategy
}

func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Record) State() *PlanState {
	return r.state
}

// Cost is the total cost of the wrapped plan.
func (r *Record) Cost() float64 {
	return r.state.Cost()
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setStrategy(strategy Strategy) error {
	if err := strategy.Validate(); err != nil {
		return err
	}
	r.strategy = strategy
	return nil
}

func (r *Record) setState(state *PlanState) error {
	if state == nil {
		return errs.NewValueIsRequiredError("plan state")
	}
	r.state = state
	return nil
}

func (r *Record) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	r.createdAt = createdAt
	return nil
}
