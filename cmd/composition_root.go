package cmd

import (
	"log/slog"

	httpin "fleetplan/internal/adapters/in/http"
	"fleetplan/internal/adapters/out/grid"
	"fleetplan/internal/adapters/out/postgres"
	"fleetplan/internal/adapters/out/prommetrics"
	"fleetplan/internal/core/application/usecases/commands"
	"fleetplan/internal/core/application/usecases/queries"
	"fleetplan/internal/core/domain/model/plan"
	"fleetplan/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	topology   grid.Topology
	metrics    *prommetrics.Metrics
	logger     *slog.Logger

	strategy plan.Strategy

	// holds the run counter that seeds every planning run
	planRoutesHandler commands.PlanRoutesCommandHandler
}

// NewCompositionRoot wires the adapters. The tuning file and the seed are validated here.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	tuning, err := LoadTuning(config.TuningPath)
	if err != nil {
		return nil, err
	}
	strategy, err := tuning.PlanStrategy()
	if err != nil {
		return nil, err
	}
	options, err := tuning.SearchOptions()
	if err != nil {
		return nil, err
	}
	seed, err := config.Seed()
	if err != nil {
		return nil, err
	}

	topology := grid.NewTopology()
	metrics := prommetrics.New()
	metrics.RegisterRuntime()

	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, topology),
		topology:   topology,
		metrics:    metrics,
		logger:     logger,
		strategy:   strategy,
	}
	c.planRoutesHandler = commands.NewPlanRoutesCommandHandler(c.unitOfWorkFactory(), topology, options, seed, metrics)

	return c, nil
}

func (c *CompositionRoot) CreateRegisterVehicleCommandHandler() *commands.RegisterVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewRegisterVehicleCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreateCreateTaskCommandHandler() *commands.CreateTaskCommandHandler {
	var f commands.TaskUoWFactory = FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewCreateTaskCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreatePlanRoutesCommandHandler() commands.PlanRoutesCommandHandler {
	return c.planRoutesHandler
}

func (c *CompositionRoot) CreateAssignTaskCommandHandler() commands.AssignTaskCommandHandler {
	return commands.NewAssignTaskCommandHandler(c.unitOfWorkFactory(), c.topology)
}

func (c *CompositionRoot) CreateGetAllVehiclesQueryHandler() queries.GetAllVehiclesQueryHandler {
	return queries.NewGetAllVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTasksQueryHandler() queries.GetTasksQueryHandler {
	return queries.NewGetTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLatestPlanQueryHandler() queries.GetLatestPlanQueryHandler {
	return queries.NewGetLatestPlanQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		RegisterVehicle: c.CreateRegisterVehicleCommandHandler(),
		CreateTask:      c.CreateCreateTaskCommandHandler(),
		PlanRoutes:      c.CreatePlanRoutesCommandHandler(),
		AssignTask:      c.CreateAssignTaskCommandHandler(),
		GetAllVehicles:  c.CreateGetAllVehiclesQueryHandler(),
		GetTasks:        c.CreateGetTasksQueryHandler(),
		GetLatestPlan:   c.CreateGetLatestPlanQueryHandler(),
	}, c.strategy)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreatePlanRoutesCommandHandler(), c.strategy, c.config.ReplanningSchedule, c.logger)
}

func (c *CompositionRoot) Metrics() *prommetrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) unitOfWorkFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncTaskUoWFactory func() commands.TaskUoW

func (f FuncTaskUoWFactory) Create() commands.TaskUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
