// Package jobs provides scheduled background tasks for the planning service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with seconds).
//
// # Available Jobs
//
// ReplanningJob runs PlanRoutesCommand in "only if unplanned" mode, so a tick replans the
// whole fleet only when tasks were created since the last stored plan.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(planRoutesHandler, plan.StrategyGreedy, "*/10 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// An empty fleet and an empty backlog are normal and not logged; every other error is
// logged and the next tick tries again.
package jobs
