package http

import (
	"context"
	"errors"
	"net/http"

	"fleetplan/internal/core/application/usecases/commands"
	"fleetplan/internal/core/application/usecases/queries"
	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/plan"
	"fleetplan/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type RegisterVehicleHandler interface {
	Handle(ctx context.Context, cmd commands.RegisterVehicleCommand) error
}

type CreateTaskHandler interface {
	Handle(ctx context.Context, cmd commands.CreateTaskCommand) error
}

type PlanRoutesHandler interface {
	Handle(ctx context.Context, cmd commands.PlanRoutesCommand) error
}

type AssignTaskHandler interface {
	Handle(ctx context.Context, cmd commands.AssignTaskCommand) error
}

type GetAllVehiclesHandler interface {
	Handle(ctx context.Context, query queries.GetAllVehiclesQuery) ([]queries.GetAllVehiclesQueryResponse, error)
}

type GetTasksHandler interface {
	Handle(ctx context.Context, query queries.GetTasksQuery) ([]queries.GetTasksQueryResponse, error)
}

type GetLatestPlanHandler interface {
	Handle(ctx context.Context, query queries.GetLatestPlanQuery) (queries.GetLatestPlanQueryResponse, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	RegisterVehicle RegisterVehicleHandler
	CreateTask      CreateTaskHandler
	PlanRoutes      PlanRoutesHandler
	AssignTask      AssignTaskHandler
	GetAllVehicles  GetAllVehiclesHandler
	GetTasks        GetTasksHandler
	GetLatestPlan   GetLatestPlanHandler
}

// Server maps the REST API onto application use cases.
type Server struct {
	handlers        Handlers
	defaultStrategy plan.Strategy
}

// NewServer creates a server; defaultStrategy is used when POST /api/v1/plans names none.
func NewServer(handlers Handlers, defaultStrategy plan.Strategy) *Server {
	return &Server{
		handlers:        handlers,
		defaultStrategy: defaultStrategy,
	}
}

// GetVehicles handles GET /api/v1/vehicles - lists the fleet in registration order.
func (s *Server) GetVehicles(ctx echo.Context) error {
	vehicles, err := s.handlers.GetAllVehicles.Handle(ctx.Request().Context(), queries.NewGetAllVehiclesQuery())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve vehicles")
	}

	response := make([]Vehicle, len(vehicles))
	for i, v := range vehicles {
		response[i] = fromVehicle(v)
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterVehicle handles POST /api/v1/vehicles - adds a vehicle to the fleet.
func (s *Server) RegisterVehicle(ctx echo.Context) error {
	var newVehicle NewVehicle
	if err := ctx.Bind(&newVehicle); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	var (
		home kernel.Location
		err  error
	)
	if newVehicle.Home != nil {
		home, err = newVehicle.Home.toLocation()
	} else {
		home, err = kernel.NewRandomLocation()
	}
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid home location: "+err.Error())
	}

	cmd, err := commands.NewRegisterVehicleCommand(newVehicle.Name, newVehicle.Capacity, newVehicle.CostPerKm, home)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid vehicle data: "+err.Error())
	}

	if err = s.handlers.RegisterVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, http.StatusConflict, "Failed to register vehicle")
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.VehicleID().Bytes()})
}

// GetTasks handles GET /api/v1/tasks - lists tasks, only the waiting ones with ?unplanned=true.
func (s *Server) GetTasks(ctx echo.Context) error {
	onlyUnplanned := ctx.QueryParam("unplanned") == "true"

	tasks, err := s.handlers.GetTasks.Handle(ctx.Request().Context(), queries.NewGetTasksQuery(onlyUnplanned))
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve tasks")
	}

	response := make([]Task, len(tasks))
	for i, t := range tasks {
		response[i] = fromTask(t)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateTask handles POST /api/v1/tasks - stores a task waiting for planning.
func (s *Server) CreateTask(ctx echo.Context) error {
	var newTask NewTask
	if err := ctx.Bind(&newTask); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	pickup, pickupErr := newTask.Pickup.toLocation()
	delivery, deliveryErr := newTask.Delivery.toLocation()
	if err := errors.Join(pickupErr, deliveryErr); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid task locations: "+err.Error())
	}

	cmd, err := commands.NewCreateTaskCommand(pickup, delivery, newTask.Weight)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid task data: "+err.Error())
	}

	if err = s.handlers.CreateTask.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to create task")
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.TaskID().Bytes()})
}

// PlanRoutes handles POST /api/v1/plans - replans every task over the whole fleet.
func (s *Server) PlanRoutes(ctx echo.Context) error {
	var newPlan NewPlan
	if err := ctx.Bind(&newPlan); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	strategy := s.defaultStrategy
	if newPlan.Strategy != "" {
		parsed, err := plan.ParseStrategy(newPlan.Strategy)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid strategy: "+err.Error())
		}
		strategy = parsed
	}

	cmd, err := commands.NewPlanRoutesCommand(strategy, false)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid planning request: "+err.Error())
	}

	if err = s.handlers.PlanRoutes.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, commands.ErrNoVehiclesFound):
			return errorJSON(ctx, http.StatusConflict, "No vehicles registered")
		case errors.Is(err, plan.ErrInfeasibleConfiguration):
			return errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
		default:
			return errorJSON(ctx, http.StatusInternalServerError, "Failed to plan routes")
		}
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.PlanID().Bytes()})
}

// AssignTask handles POST /api/v1/plans/tasks/:taskId - adds one task to the latest plan.
func (s *Server) AssignTask(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("taskId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid task id")
	}

	cmd, err := commands.NewAssignTaskCommand(taskID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid task id: "+err.Error())
	}

	if err = s.handlers.AssignTask.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, commands.ErrNoPlanFound):
			return errorJSON(ctx, http.StatusConflict, "No plan to extend, plan routes first")
		case errors.Is(err, errs.ErrObjectNotFound):
			return errorJSON(ctx, http.StatusNotFound, "Task not found")
		case errors.Is(err, plan.ErrTaskAlreadyPlanned), errors.Is(err, errs.ErrValueIsInvalid):
			return errorJSON(ctx, http.StatusConflict, "Task is already planned")
		case errors.Is(err, plan.ErrInfeasibleConfiguration):
			return errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
		default:
			return errorJSON(ctx, http.StatusInternalServerError, "Failed to assign task")
		}
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.PlanID().Bytes()})
}

// GetLatestPlan handles GET /api/v1/plans/latest - returns the itineraries of the newest plan.
func (s *Server) GetLatestPlan(ctx echo.Context) error {
	latest, err := s.handlers.GetLatestPlan.Handle(ctx.Request().Context(), queries.NewGetLatestPlanQuery())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorJSON(ctx, http.StatusNotFound, "No plan found")
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve plan")
	}

	return ctx.JSON(http.StatusOK, fromPlan(latest))
}

func errorJSON(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}
