package commands_test

import (
	"errors"
	"testing"

	"routerorders/internal/core/application/usecases/commands"
	"routerorders/internal/core/domain/model/tracking"
	"routerorders/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_PendingOrder(t *testing.T) {
	ctx := t.Context()
	source := storedOrder(t, 7, tracking.Pending)
	record := storedTracking(t, source, tracking.Pending)
	cmd, _ := commands.NewCancelOrderCommand(source.Reference())

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
		notifier.On("SendCancellation",
			mock.Anything, "bob@example.com", source.Reference().String(),
		).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, notifier, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, tracking.Cancelled, record.Status())
	require.False(t, record.CanModify())
	require.False(t, record.CanCancel())
	require.Equal(t, tracking.Cancelled, source.Status())
	orderRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ConfirmedOrderFails(t *testing.T) {
	ctx := t.Context()
	source := storedOrder(t, 7, tracking.Confirmed)
	record := storedTracking(t, source, tracking.Confirmed)
	cmd, _ := commands.NewCancelOrderCommand(source.Reference())

	trackingRepo := new(MockTrackingRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("GetByReference", mock.Anything, source.Reference()).Return(record, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, notifier, testLogger())
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	require.Equal(t, tracking.Confirmed, record.Status())
	trackingRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AlreadyCancelledFails(t *testing.T) {
	ctx := t.Context()
	source := storedOrder(t, 7, tracking.Cancelled)
	record := storedTracking(t, source, tracking.Cancelled)
	cmd, _ := commands.NewCancelOrderCommand(source.Reference())

	trackingRepo := new(MockTrackingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("GetByReference", mock.Anything, source.Reference()).Return(record, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, new(MockNotifier), testLogger())
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_NotifierFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	source := storedOrder(t, 7, tracking.Pending)
	record := storedTracking(t, source, tracking.Pending)
	cmd, _ := commands.NewCancelOrderCommand(source.Reference())

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
		notifier.On("SendCancellation", mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("smtp: connection refused")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, notifier, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}
