package queries_test

import (
	"context"
	"testing"
	"time"

	"routerorders/internal/adapters/out/postgres/orderrepo"
	"routerorders/internal/adapters/out/postgres/trackingrepo"
	"routerorders/internal/core/application/usecases/queries"
	"routerorders/internal/core/domain/model/kernel"
	"routerorders/internal/core/domain/model/order"
	"routerorders/internal/core/domain/model/tracking"
	"routerorders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ uint64, _ any) {
	// No-op for query tests
}

func placeOrder(s *suite.Suite, repo *orderrepo.GormOrderRepository, email string) *order.Order {
	site, err := order.NewSite(
		"Cardiff Exchange",
		"12 Queen Street",
		"CF10 1AA",
		email,
		"",
		"02920 000000",
		"Bob Site",
	)
	s.Require().NoError(err)

	o, err := order.NewOrder(order.Details{
		CustomerID:        1,
		RouterID:          2,
		InsideConnections: "ETHERNET",
		Vlans:             order.VlanUnspecified,
		Site:              site,
		Quantity:          3,
		PriorityLevel:     "STANDARD",
	}, time.Now().UTC().Truncate(time.Microsecond))
	s.Require().NoError(err)

	err = repo.Add(context.Background(), o)
	s.Require().NoError(err)
	return o
}

type GetTrackingQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetTrackingQueryHandler
	orderRepo    *orderrepo.GormOrderRepository
	trackingRepo *trackingrepo.GormTrackingRepository
}

func (suite *GetTrackingQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetTrackingQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.trackingRepo = trackingrepo.NewGormTrackingRepository(db, &mockAggregateTracker{})
}

func (suite *GetTrackingQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetTrackingQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE router_orders, order_trackings CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetTrackingQueryHandlerTestSuite) TestHandle_ReturnsJoinedView() {
	ctx := context.Background()
	o := placeOrder(&suite.Suite, suite.orderRepo, "bob@example.com")

	record, err := tracking.NewTracking(o.ID(), o.Reference(), time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.trackingRepo.Add(ctx, record))

	query, err := queries.NewGetTrackingQuery(o.Reference())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(o.ID(), result.OrderID)
	suite.Equal(o.Reference().String(), result.Reference)
	suite.Equal("PENDING", result.Status)
	suite.True(result.CanModify)
	suite.True(result.CanCancel)
	suite.Equal(uint64(2), result.RouterID)
	suite.Equal(3, result.Quantity)
	suite.Equal("CF10 1AA", result.SitePostcode)
}

func (suite *GetTrackingQueryHandlerTestSuite) TestHandle_ReflectsStatusChange() {
	ctx := context.Background()
	o := placeOrder(&suite.Suite, suite.orderRepo, "bob@example.com")

	record, err := tracking.NewTracking(o.ID(), o.Reference(), time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.trackingRepo.Add(ctx, record))
	suite.Require().NoError(record.ChangeStatus(tracking.InTransit, time.Now().UTC().Truncate(time.Microsecond)))
	suite.Require().NoError(suite.trackingRepo.Update(ctx, record))

	query, err := queries.NewGetTrackingQuery(o.Reference())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("IN_TRANSIT", result.Status)
	suite.False(result.CanModify)
	suite.False(result.CanCancel)
}

func (suite *GetTrackingQueryHandlerTestSuite) TestHandle_UnknownReference_ReturnsNotFound() {
	query, err := queries.NewGetTrackingQuery(kernel.NewReferenceNumber())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetTrackingQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetTrackingQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetTrackingQuery constructor")
}

func TestGetTrackingQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetTrackingQueryHandlerTestSuite))
}
