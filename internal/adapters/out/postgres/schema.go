package postgres

import (
	"fleetplan/internal/adapters/out/postgres/planrepo"
	"fleetplan/internal/adapters/out/postgres/taskrepo"
	"fleetplan/internal/adapters/out/postgres/vehiclerepo"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the repositories use.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&vehiclerepo.VehicleDTO{},
		&taskrepo.TaskDTO{},
		&planrepo.PlanDTO{},
		&planrepo.ActionDTO{},
		&planrepo.StepDTO{},
	)
}
