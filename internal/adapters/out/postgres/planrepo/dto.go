// Package planrepo persists plan versions: a header row per plan, its routes as ordered
// action rows and its executable itineraries as ordered step rows.
package planrepo

import (
	"time"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/plan"

	"github.com/google/uuid"
)

// PlanDTO represents the header of a stored plan version.
// Seq orders versions; the highest one is the latest plan.
type PlanDTO struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Seq       int64       `gorm:"autoIncrement;not null;uniqueIndex"`
	Strategy  string      `gorm:"type:varchar(16);not null"`
	Cost      float64     `gorm:"type:double precision;not null"`
	CreatedAt time.Time   `gorm:"not null"`
	Actions   []ActionDTO `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
	Steps     []StepDTO   `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "plan_dtos".
func (PlanDTO) TableName() string {
	return "plans"
}

// ActionDTO is one pickup or delivery at Position in the route of a vehicle.
type ActionDTO struct {
	PlanID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey;autoIncrement:false"`
	Event     string    `gorm:"type:varchar(16);not null"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName overrides GORM's default "action_dtos".
func (ActionDTO) TableName() string {
	return "plan_actions"
}

// StepDTO is one executable step of a vehicle itinerary. TaskID is nil for moves.
type StepDTO struct {
	PlanID    uuid.UUID   `gorm:"type:uuid;primaryKey"`
	VehicleID uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Position  int         `gorm:"primaryKey;autoIncrement:false"`
	Kind      string      `gorm:"type:varchar(16);not null"`
	Location  LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	TaskID    *uuid.UUID  `gorm:"type:uuid"`
}

// TableName overrides GORM's default "step_dtos".
func (StepDTO) TableName() string {
	return "itinerary_steps"
}

// LocationDTO represents embedded grid coordinates within the step table.
type LocationDTO struct {
	X kernel.Coordinate `gorm:"type:smallint"`
	Y kernel.Coordinate `gorm:"type:smallint"`
}

func fromDomain(record *plan.Record, itineraries []plan.Itinerary) PlanDTO {
	planID := record.ID().Bytes()
	state := record.State()

	var actions []ActionDTO
	for _, v := range state.Vehicles() {
		for position, a := range state.Route(v) {
			actions = append(actions, ActionDTO{
				PlanID:    planID,
				VehicleID: v.ID().Bytes(),
				Position:  position,
				Event:     a.Event().String(),
				TaskID:    a.Task().ID().Bytes(),
			})
		}
	}

	var steps []StepDTO
	for _, itinerary := range itineraries {
		for position, s := range itinerary.Steps {
			var taskID *uuid.UUID
			if s.Task != nil {
				raw := s.Task.ID().Bytes()
				taskID = &raw
			}

			steps = append(steps, StepDTO{
				PlanID:    planID,
				VehicleID: itinerary.Vehicle.ID().Bytes(),
				Position:  position,
				Kind:      s.Kind.String(),
				Location: LocationDTO{
					X: s.Location.X(),
					Y: s.Location.Y(),
				},
				TaskID: taskID,
			})
		}
	}

	return PlanDTO{
		ID:        planID,
		Strategy:  record.Strategy().String(),
		Cost:      record.Cost(),
		CreatedAt: record.CreatedAt(),
		Actions:   actions,
		Steps:     steps,
	}
}
