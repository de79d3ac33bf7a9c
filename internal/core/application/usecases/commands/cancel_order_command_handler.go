package commands

import (
	"context"
	"log/slog"
	"time"

	"routerorders/internal/core/domain/model/tracking"
	"routerorders/internal/core/ports"
)

// CancelOrderCommandHandler handles customer-driven cancellations.
// Cancellation is permitted only while the tracking record's canCancel flag
// is set, i.e. while the order is still Pending. The transition lands in the
// terminal Cancelled status with both customer permissions revoked, and the
// order's status mirror follows in the same transaction.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "cancel-order-handler"),
	}
}

// Handle processes the cancellation command.
// Fails with an ObjectNotFoundError if no tracking record matches the
// reference, and with an InvalidStateError if the order has already moved
// past Pending. Cancelling an already-cancelled order fails the same way.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	record, err := uow.TrackingRepository().GetByReference(ctx, cmd.Reference())
	if err != nil {
		return err
	}

	if err = record.Cancel(time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.TrackingRepository().Update(ctx, record); err != nil {
		return err
	}

	tracked, err := uow.OrderRepository().Get(ctx, record.OrderID())
	if err != nil {
		return err
	}

	if err = tracked.MirrorStatus(tracking.Cancelled); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, tracked); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.SendCancellation(
		ctx,
		tracked.Site().PrimaryEmail(),
		record.Reference().String(),
	); err != nil {
		h.logger.Warn("cancellation notice failed",
			"reference", record.Reference().String(), "error", err)
	}

	return nil
}
