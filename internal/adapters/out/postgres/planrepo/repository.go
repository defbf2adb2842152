package planrepo

import (
	"context"
	"errors"
	"fmt"

	"fleetplan/internal/adapters/out/postgres/taskrepo"
	"fleetplan/internal/adapters/out/postgres/vehiclerepo"
	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/plan"
	"fleetplan/internal/core/domain/model/task"
	"fleetplan/internal/core/domain/model/vehicle"
	"fleetplan/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPlanRepository implements ports.PlanRepository using GORM.
// Restored plans price their routes with the injected metric.
type GormPlanRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	metric  plan.Metric
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPlanRepository creates a new GORM plan repository.
func NewGormPlanRepository(db *gorm.DB, tracker aggregateTracker, metric plan.Metric) *GormPlanRepository {
	return &GormPlanRepository{
		db:      db,
		tracker: tracker,
		metric:  metric,
	}
}

// Save inserts the plan header with all its action and step rows.
func (r *GormPlanRepository) Save(ctx context.Context, record *plan.Record, itineraries []plan.Itinerary) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record, itineraries)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// GetLatest restores the plan with the highest sequence number over the current fleet.
// Vehicles registered after that plan was saved get empty routes.
func (r *GormPlanRepository) GetLatest(ctx context.Context) (*plan.Record, error) {
	db := r.db.WithContext(ctx)

	var dto PlanDTO
	err := db.
		Preload("Actions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("vehicle_id").Order("position")
		}).
		Order("seq DESC").
		Take(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("plan", "latest")
	}
	if err != nil {
		return nil, err
	}

	vehicles, err := r.loadVehicles(db)
	if err != nil {
		return nil, err
	}

	tasks, err := r.loadTasks(db, dto.Actions)
	if err != nil {
		return nil, err
	}

	routes, err := toRoutes(dto.Actions, tasks)
	if err != nil {
		return nil, err
	}

	state, err := plan.RestorePlanState(vehicles, tasks, routes, r.metric)
	if err != nil {
		return nil, fmt.Errorf("restore plan %s: %w", dto.ID, err)
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	strategy, err := plan.ParseStrategy(dto.Strategy)
	if err != nil {
		return nil, err
	}

	return plan.NewRecord(id, strategy, state, dto.CreatedAt)
}

func (r *GormPlanRepository) loadVehicles(db *gorm.DB) ([]*vehicle.Vehicle, error) {
	var dtos []vehiclerepo.VehicleDTO
	if err := db.Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	vehicles := make([]*vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		v, err := vehiclerepo.ToDomain(dto)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

func (r *GormPlanRepository) loadTasks(db *gorm.DB, actions []ActionDTO) ([]*task.Task, error) {
	if len(actions) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(actions)/2)
	seen := make(map[uuid.UUID]struct{}, len(actions)/2)
	for _, a := range actions {
		if _, ok := seen[a.TaskID]; ok {
			continue
		}
		seen[a.TaskID] = struct{}{}
		ids = append(ids, a.TaskID)
	}

	var dtos []taskrepo.TaskDTO
	if err := db.Where("id IN ?", ids).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	tasks := make([]*task.Task, 0, len(dtos))
	for _, dto := range dtos {
		t, err := taskrepo.ToDomain(dto)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// toRoutes groups action rows, already sorted by vehicle and position, into routes.
func toRoutes(actions []ActionDTO, tasks []*task.Task) (map[kernel.UUID]plan.Route, error) {
	byID := make(map[uuid.UUID]*task.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID().Bytes()] = t
	}

	routes := make(map[kernel.UUID]plan.Route)
	for _, a := range actions {
		t, ok := byID[a.TaskID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("task", a.TaskID.String())
		}

		event, err := plan.ParseEvent(a.Event)
		if err != nil {
			return nil, err
		}

		action, err := plan.NewAction(event, t)
		if err != nil {
			return nil, err
		}

		vehicleID, err := kernel.UUIDFromBytes(a.VehicleID[:])
		if err != nil {
			return nil, err
		}
		routes[vehicleID] = append(routes[vehicleID], action)
	}
	return routes, nil
}
