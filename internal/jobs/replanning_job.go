package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fleetplan/internal/core/application/usecases/commands"
	"fleetplan/internal/core/domain/model/plan"

	"github.com/robfig/cron/v3"
)

// DefaultReplanningSchedule runs the replanning every ten seconds.
const DefaultReplanningSchedule = "*/10 * * * * *"

// PlanRoutesHandler is the use case the replanning job drives.
type PlanRoutesHandler interface {
	Handle(ctx context.Context, cmd commands.PlanRoutesCommand) error
}

// ReplanningJob periodically replans the whole fleet when new tasks are waiting.
type ReplanningJob struct {
	handler  PlanRoutesHandler
	strategy plan.Strategy
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReplanningJob creates the job. schedule is a six-field cron expression (with seconds);
// an empty schedule means DefaultReplanningSchedule.
func NewReplanningJob(handler PlanRoutesHandler, strategy plan.Strategy, schedule string, logger *slog.Logger) *ReplanningJob {
	if schedule == "" {
		schedule = DefaultReplanningSchedule
	}

	return &ReplanningJob{
		handler:  handler,
		strategy: strategy,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "replanning_job"),
	}
}

// Start registers the schedule and starts the cron runner.
func (j *ReplanningJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Replanning job started", "schedule", j.schedule, "strategy", j.strategy)
	return nil
}

// RunOnce performs a single replanning tick.
// Ticks without unplanned tasks or without vehicles are expected and stay silent.
func (j *ReplanningJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewPlanRoutesCommand(j.strategy, true)
	if err != nil {
		j.logger.ErrorContext(ctx, "Replanning job misconfigured", "error", err)
		return
	}

	if err = j.handler.Handle(ctx, cmd); err != nil {
		if !errors.Is(err, commands.ErrNothingToPlan) && !errors.Is(err, commands.ErrNoVehiclesFound) {
			j.logger.ErrorContext(ctx, "Replanning job failed", "error", err)
		}
		return
	}

	j.logger.InfoContext(ctx, "Routes replanned", "plan_id", cmd.PlanID().String())
}

// Stop stops the cron runner and waits for a running tick to finish.
func (j *ReplanningJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Replanning job stopped")
}
