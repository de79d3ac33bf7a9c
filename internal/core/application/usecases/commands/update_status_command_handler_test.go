package commands_test

import (
	"errors"
	"testing"

	"routerorders/internal/core/application/usecases/commands"
	"routerorders/internal/core/domain/model/kernel"
	"routerorders/internal/core/domain/model/order"
	"routerorders/internal/core/domain/model/tracking"
	"routerorders/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateStatusCommandHandler_Handle_ByReference(t *testing.T) {
	ctx := t.Context()
	source := storedOrder(t, 7, tracking.Pending)
	record := storedTracking(t, source, tracking.Pending)
	cmd, _ := commands.NewUpdateStatusByReferenceCommand(source.Reference(), tracking.Confirmed)

	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	syncNotifier := new(MockNotifier)
	asyncNotifier := new(MockNotifier)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("GetByReference", mock.Anything, source.Reference()).Return(record, nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Update", mock.Anything, record).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, uint64(7)).Return(source, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, source).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		syncNotifier.On("SendStatusUpdate",
			mock.Anything, "bob@example.com", source.Reference().String(), "CONFIRMED",
		).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateStatusCommandHandler(factory, syncNotifier, asyncNotifier, testLogger())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, tracking.Confirmed, updated.Status())
	require.False(t, updated.CanModify())
	require.False(t, updated.CanCancel())
	require.Equal(t, tracking.Confirmed, source.Status())
	orderRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
	syncNotifier.AssertExpectations(t)
	asyncNotifier.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateStatusCommandHandler_Handle_ByOrderID(t *testing.T) {
	ctx := t.Context()
	source := storedOrder(t, 7, tracking.Confirmed)
	record := storedTracking(t, source, tracking.Confirmed)
	cmd, _ := commands.NewUpdateStatusByOrderIDCommand(7, tracking.InProduction)

	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	syncNotifier := new(MockNotifier)
	asyncNotifier := new(MockNotifier)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("GetByOrderID", mock.Anything, uint64(7)).Return(record, nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Update", mock.Anything, record).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, uint64(7)).Return(source, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, source).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		asyncNotifier.On("SendStatusUpdate",
			mock.Anything, "bob@example.com", source.Reference().String(), "IN_PRODUCTION",
		).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateStatusCommandHandler(factory, syncNotifier, asyncNotifier, testLogger())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, tracking.InProduction, updated.Status())
	require.Equal(t, tracking.InProduction, source.Status())
	syncNotifier.AssertExpectations(t)
	asyncNotifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateStatusCommandHandler_Handle_TrackingNotFound(t *testing.T) {
	ctx := t.Context()
	ref := kernel.NewReferenceNumber()
	cmd, _ := commands.NewUpdateStatusByReferenceCommand(ref, tracking.Delivered)

	trackingRepo := new(MockTrackingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("GetByReference", mock.Anything, ref).
			Return(nil, errs.NewObjectNotFoundError("reference", ref.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateStatusCommandHandler(factory, new(MockNotifier), new(MockNotifier), testLogger())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestUpdateStatusCommandHandler_Handle_NotifierFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	source := storedOrder(t, 7, tracking.Pending)
	record := storedTracking(t, source, tracking.Pending)
	cmd, _ := commands.NewUpdateStatusByReferenceCommand(source.Reference(), tracking.Confirmed)

	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("GetByReference", mock.Anything, source.Reference()).Return(record, nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Update", mock.Anything, record).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, uint64(7)).Return(source, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, source).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("SendStatusUpdate",
			mock.Anything, "bob@example.com", source.Reference().String(), "CONFIRMED",
		).Return(errors.New("smtp: connection refused")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateStatusCommandHandler(factory, notifier, new(MockNotifier), testLogger())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, tracking.Confirmed, updated.Status())
	require.Equal(t, tracking.Confirmed, source.Status())
	uow.AssertExpectations(t)
}

// A transition back to Pending restores both customer permissions, and any
// forward transition revokes them. The handler applies the mapping, never the
// stored flags.
func TestUpdateStatusCommandHandler_Handle_PermissionsFollowStatus(t *testing.T) {
	ctx := t.Context()
	source := storedOrder(t, 7, tracking.Confirmed)
	record := storedTracking(t, source, tracking.Confirmed)
	cmd, _ := commands.NewUpdateStatusByReferenceCommand(source.Reference(), tracking.Pending)

	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)

	var persisted *order.Order
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("GetByReference", mock.Anything, source.Reference()).Return(record, nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Update", mock.Anything, record).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, uint64(7)).Return(source, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				persisted = args.Get(1).(*order.Order)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("SendStatusUpdate", mock.Anything, mock.Anything, mock.Anything, "PENDING").
			Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateStatusCommandHandler(factory, notifier, new(MockNotifier), testLogger())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, updated.CanModify())
	require.True(t, updated.CanCancel())
	require.Equal(t, tracking.Pending, persisted.Status())
	uow.AssertExpectations(t)
}
