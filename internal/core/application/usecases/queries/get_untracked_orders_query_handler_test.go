package queries_test

import (
	"context"
	"testing"
	"time"

	"routerorders/internal/adapters/out/postgres/orderrepo"
	"routerorders/internal/adapters/out/postgres/trackingrepo"
	"routerorders/internal/core/application/usecases/queries"
	"routerorders/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetUntrackedOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetUntrackedOrdersQueryHandler
	orderRepo    *orderrepo.GormOrderRepository
	trackingRepo *trackingrepo.GormTrackingRepository
}

func (suite *GetUntrackedOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &trackingrepo.TrackingDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetUntrackedOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.trackingRepo = trackingrepo.NewGormTrackingRepository(db, &mockAggregateTracker{})
}

func (suite *GetUntrackedOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetUntrackedOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE router_orders, order_trackings CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetUntrackedOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetUntrackedOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetUntrackedOrdersQueryHandlerTestSuite) TestHandle_ReturnsOnlyOrdersWithoutTracking() {
	ctx := context.Background()

	tracked := placeOrder(&suite.Suite, suite.orderRepo, "bob@example.com")
	record, err := tracking.NewTracking(tracked.ID(), tracked.Reference(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.trackingRepo.Add(ctx, record))

	orphan1 := placeOrder(&suite.Suite, suite.orderRepo, "bob@example.com")
	orphan2 := placeOrder(&suite.Suite, suite.orderRepo, "alice@example.com")

	result, err := suite.handler.Handle(ctx, queries.NewGetUntrackedOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	// Sorted by id, oldest gap first
	suite.Equal(orphan1.ID(), result[0].ID)
	suite.Equal(orphan1.Reference().String(), result[0].Reference)
	suite.Equal(orphan2.ID(), result[1].ID)
}

func (suite *GetUntrackedOrdersQueryHandlerTestSuite) TestHandle_AllTracked_ReturnsEmptySlice() {
	ctx := context.Background()

	for range 3 {
		o := placeOrder(&suite.Suite, suite.orderRepo, "bob@example.com")
		record, err := tracking.NewTracking(o.ID(), o.Reference(), time.Now().UTC())
		suite.Require().NoError(err)
		suite.Require().NoError(suite.trackingRepo.Add(ctx, record))
	}

	result, err := suite.handler.Handle(ctx, queries.NewGetUntrackedOrdersQuery())
	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetUntrackedOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetUntrackedOrdersQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().Error(err)
}

func TestGetUntrackedOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetUntrackedOrdersQueryHandlerTestSuite))
}
