package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"routerorders/internal/core/application/usecases/commands"
	"routerorders/internal/core/domain/model/kernel"
	"routerorders/internal/core/domain/model/order"
	"routerorders/internal/core/domain/model/tracking"
	"routerorders/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id uint64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByEmail(ctx context.Context, email string) ([]*order.Order, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByStatus(
	ctx context.Context, status tracking.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Add(ctx context.Context, t *tracking.Tracking) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrackingRepository) Update(ctx context.Context, t *tracking.Tracking) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrackingRepository) GetByReference(
	ctx context.Context, reference kernel.ReferenceNumber,
) (*tracking.Tracking, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Tracking), args.Error(1)
}

func (m *MockTrackingRepository) GetByOrderID(
	ctx context.Context, orderID uint64,
) (*tracking.Tracking, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Tracking), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) SendOrderConfirmation(
	ctx context.Context, email string, reference string, snapshot ports.OrderSnapshot,
) error {
	args := m.Called(ctx, email, reference, snapshot)
	return args.Error(0)
}

func (m *MockNotifier) SendStatusUpdate(
	ctx context.Context, email string, reference string, status string,
) error {
	args := m.Called(ctx, email, reference, status)
	return args.Error(0)
}

func (m *MockNotifier) SendCancellation(ctx context.Context, email string, reference string) error {
	args := m.Called(ctx, email, reference)
	return args.Error(0)
}

func (m *MockNotifier) SendModification(
	ctx context.Context, email string, reference string, snapshot ports.OrderSnapshot,
) error {
	args := m.Called(ctx, email, reference, snapshot)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDetails(t *testing.T) order.Details {
	t.Helper()
	site, err := order.NewSite(
		"Cardiff Exchange",
		"12 Queen Street",
		"CF10 1AA",
		"bob@example.com",
		"",
		"02920 000000",
		"Bob Site",
	)
	require.NoError(t, err)

	return order.Details{
		CustomerID:        1,
		RouterID:          2,
		InsideConnections: "ETHERNET",
		Vlans:             order.VlanUnspecified,
		Site:              site,
		Quantity:          2,
		PriorityLevel:     "STANDARD",
	}
}

func storedOrder(t *testing.T, id uint64, status tracking.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		id,
		kernel.NewReferenceNumber(),
		testDetails(t),
		time.Now().Add(-time.Hour),
		status,
	)
	require.NoError(t, err)
	return o
}

func storedTracking(t *testing.T, o *order.Order, status tracking.Status) *tracking.Tracking {
	t.Helper()
	canModify, canCancel := status.Permissions()
	record, err := tracking.RestoreTracking(
		o.ID(),
		o.ID(),
		o.Reference(),
		status,
		canModify,
		canCancel,
		time.Now().Add(-time.Hour),
		time.Now().Add(-time.Hour),
	)
	require.NoError(t, err)
	return record
}
