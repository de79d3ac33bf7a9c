package commands

import (
	"context"
	"log/slog"

	"routerorders/internal/core/ports"
)

// ModifyOrderCommandHandler handles customer-driven quantity modifications.
// Modification is permitted only while the tracking record's canModify flag
// is set, i.e. while the order is still Pending. The status itself does not
// change; only the order's quantity does.
type ModifyOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewModifyOrderCommandHandler creates a handler for order modification.
func NewModifyOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) ModifyOrderCommandHandler {
	return ModifyOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "modify-order-handler"),
	}
}

// Handle processes the modification command.
// Fails with an ObjectNotFoundError if no tracking record matches the
// reference, and with an InvalidStateError if the order has already moved
// past Pending. On success the site primary contact receives a modification
// notice with the updated order summary.
func (h *ModifyOrderCommandHandler) Handle(ctx context.Context, cmd ModifyOrderCommand) error {
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

	if err = record.EnsureModifiable(); err != nil {
		return err
	}

	tracked, err := uow.OrderRepository().Get(ctx, record.OrderID())
	if err != nil {
		return err
	}

	if err = tracked.ChangeQuantity(cmd.Quantity()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, tracked); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.SendModification(
		ctx,
		tracked.Site().PrimaryEmail(),
		record.Reference().String(),
		ports.SnapshotOf(tracked),
	); err != nil {
		h.logger.Warn("modification notice failed",
			"reference", record.Reference().String(), "error", err)
	}

	return nil
}
