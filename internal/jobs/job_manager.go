package jobs

import (
	"fmt"
	"log/slog"

	"fleetplan/internal/core/domain/model/plan"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	replanningJob *ReplanningJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	planRoutesHandler PlanRoutesHandler,
	strategy plan.Strategy,
	replanningSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		replanningJob: NewReplanningJob(planRoutesHandler, strategy, replanningSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.replanningJob.Start(); err != nil {
		return fmt.Errorf("failed to start replanning job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.replanningJob.Stop()
}
