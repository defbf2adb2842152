package postgres_test

import (
	"context"
	"testing"
	"time"

	"fleetplan/internal/adapters/out/grid"
	postgres_adapter "fleetplan/internal/adapters/out/postgres"
	"fleetplan/internal/core/domain/model/kernel"
	"fleetplan/internal/core/domain/model/plan"
	"fleetplan/internal/core/domain/model/task"
	"fleetplan/internal/core/domain/model/vehicle"
	"fleetplan/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.AutoMigrate(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, grid.NewTopology())
}

// SetupTest truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE itinerary_steps, plan_actions, plans, tasks, vehicles").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.VehicleRepository())
	suite.NotNil(uow1.TaskRepository())
	suite.NotNil(uow1.PlanRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

// TestUnitOfWork_PlanningWorkflow stores a fleet, a task and a plan in one transaction,
// the way the planning command does.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PlanningWorkflow() {
	ctx := context.Background()
	van := createTestVehicle("van")
	delivery := createTestTask()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.VehicleRepository().Add(ctx, van))
	suite.Require().NoError(uow.TaskRepository().Add(ctx, delivery))

	state, err := plan.RestorePlanState([]*vehicle.Vehicle{van}, []*task.Task{delivery}, map[kernel.UUID]plan.Route{
		van.ID(): {plan.Pick(delivery), plan.Deliver(delivery)},
	}, grid.NewTopology())
	suite.Require().NoError(err)
	record, err := plan.NewRecord(kernel.NewUUID(), plan.StrategyGreedy, state, time.Now().UTC())
	suite.Require().NoError(err)
	itineraries, err := state.ToItineraries(grid.NewTopology())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.PlanRepository().Save(ctx, record, itineraries))
	suite.Require().NoError(delivery.MarkPlanned())
	suite.Require().NoError(uow.TaskRepository().Update(ctx, delivery))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	latest, err := reader.PlanRepository().GetLatest(ctx)
	suite.Require().NoError(err)
	suite.True(latest.ID().IsEqual(record.ID()))

	unplanned, err := reader.TaskRepository().GetUnplanned(ctx)
	suite.Require().NoError(err)
	suite.Empty(unplanned)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	van := createTestVehicle("van")
	delivery := createTestTask()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.VehicleRepository().Add(ctx, van))
	suite.Require().NoError(uow.TaskRepository().Add(ctx, delivery))

	_, err := uow.VehicleRepository().Get(ctx, van.ID())
	suite.Require().NoError(err, "Vehicle should be visible inside the transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	_, err = reader.VehicleRepository().Get(ctx, van.ID())
	suite.Require().Error(err, "Vehicle should not exist after rollback")
	_, err = reader.TaskRepository().Get(ctx, delivery.ID())
	suite.Require().Error(err, "Task should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AggregateTracking() {
	ctx := context.Background()
	van := createTestVehicle("van")
	delivery := createTestTask()

	uow := postgres_adapter.NewGormUnitOfWorkFactory(suite.db, grid.NewTopology()).Create().(*postgres_adapter.GormUnitOfWork)
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.VehicleRepository().Add(ctx, van))
	suite.Require().NoError(uow.TaskRepository().Add(ctx, delivery))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal([]kernel.UUID{van.ID(), delivery.ID()}, uow.TrackedAggregates())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	van := createTestVehicle("van")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.VehicleRepository().Add(ctx, van))

	fleet, err := suite.factory.Create().VehicleRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(fleet, 1)
}

func createTestVehicle(name string) *vehicle.Vehicle {
	v, err := vehicle.NewVehicle(kernel.NewUUID(), name, 10, 1, kernel.MustNewLocation(1, 1))
	if err != nil {
		panic(err)
	}
	return v
}

func createTestTask() *task.Task {
	t, err := task.NewTask(kernel.NewUUID(), kernel.MustNewLocation(3, 3), kernel.MustNewLocation(7, 2), 4)
	if err != nil {
		panic(err)
	}
	return t
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
