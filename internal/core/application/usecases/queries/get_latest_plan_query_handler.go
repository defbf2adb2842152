package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLatestPlanQueryHandler reads the latest plan header, the fleet and the stored
// itinerary steps.
type GetLatestPlanQueryHandler struct {
	db *gorm.DB
}

func NewGetLatestPlanQueryHandler(db *gorm.DB) GetLatestPlanQueryHandler {
	return GetLatestPlanQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when no plan was stored yet.
// Vehicles without steps, including those registered after the plan was made, get an
// empty itinerary.
func (h GetLatestPlanQueryHandler) Handle(ctx context.Context, query GetLatestPlanQuery) (GetLatestPlanQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLatestPlanQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var (
		response  GetLatestPlanQueryResponse
		planID    uuid.UUID
		createdAt time.Time
	)
	row := db.Raw(`
		SELECT id, strategy, cost, created_at
		FROM plans
		ORDER BY seq DESC
		LIMIT 1
	`).Row()
	err := row.Scan(&planID, &response.Strategy, &response.Cost, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetLatestPlanQueryResponse{}, errs.NewObjectNotFoundError("plan", "latest")
	}
	if err != nil {
		return GetLatestPlanQueryResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(planID[:])
	if err != nil {
		return GetLatestPlanQueryResponse{}, err
	}
	response.ID = id
	response.CreatedAt = createdAt

	steps, err := h.steps(db, planID)
	if err != nil {
		return GetLatestPlanQueryResponse{}, err
	}

	itineraries, err := h.itineraries(db, steps)
	if err != nil {
		return GetLatestPlanQueryResponse{}, err
	}
	response.Itineraries = itineraries

	return response, nil
}

func (h GetLatestPlanQueryHandler) steps(db *gorm.DB, planID uuid.UUID) (map[uuid.UUID][]StepResponse, error) {
	rows, err := db.Raw(`
		SELECT vehicle_id, kind, location_x, location_y, task_id
		FROM itinerary_steps
		WHERE plan_id = ?
		ORDER BY vehicle_id, position
	`, planID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	steps := make(map[uuid.UUID][]StepResponse)
	for rows.Next() {
		var (
			vehicleID uuid.UUID
			step      StepResponse
			x, y      int8
			taskID    uuid.NullUUID
		)
		if err = rows.Scan(&vehicleID, &step.Kind, &x, &y, &taskID); err != nil {
			return nil, err
		}

		loc, locErr := kernel.NewLocation(kernel.Coordinate(x), kernel.Coordinate(y))
		if locErr != nil {
			return nil, locErr
		}
		step.Location = loc

		if taskID.Valid {
			id, idErr := kernel.UUIDFromBytes(taskID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			step.TaskID = &id
		}

		steps[vehicleID] = append(steps[vehicleID], step)
	}

	return steps, rows.Err()
}

func (h GetLatestPlanQueryHandler) itineraries(db *gorm.DB, steps map[uuid.UUID][]StepResponse) ([]ItineraryResponse, error) {
	rows, err := db.Raw(`
		SELECT id, name, home_x, home_y
		FROM vehicles
		ORDER BY seq
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itineraries := make([]ItineraryResponse, 0)
	for rows.Next() {
		var (
			id           uuid.UUID
			itinerary    ItineraryResponse
			homeX, homeY int8
		)
		if err = rows.Scan(&id, &itinerary.VehicleName, &homeX, &homeY); err != nil {
			return nil, err
		}

		vehicleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		itinerary.VehicleID = vehicleID

		home, locErr := kernel.NewLocation(kernel.Coordinate(homeX), kernel.Coordinate(homeY))
		if locErr != nil {
			return nil, locErr
		}
		itinerary.Start = home
		itinerary.Steps = steps[id]
		if itinerary.Steps == nil {
			itinerary.Steps = []StepResponse{}
		}

		itineraries = append(itineraries, itinerary)
	}

	return itineraries, rows.Err()
}
