package commands

import (
	"context"
	"log/slog"
	"time"

	"routerorders/internal/core/domain/model/tracking"
	"routerorders/internal/core/ports"
)

// UpdateStatusCommandHandler applies administrator-driven status transitions.
// One handler serves both addressing modes: it resolves the tracking record
// by whichever key the command carries, applies the transition, and mirrors
// the new status onto the order inside the same transaction.
//
// The notification path depends on the addressing mode: reference-keyed
// updates notify through the synchronous gateway, order-id-keyed updates go
// through the asynchronous dispatcher. Either way a failing notice is logged
// and swallowed after commit.
type UpdateStatusCommandHandler struct {
	uowFactory    UoWFactory
	notifier      ports.Notifier
	asyncNotifier ports.Notifier
	logger        *slog.Logger
}

// NewUpdateStatusCommandHandler creates a handler for status transitions.
func NewUpdateStatusCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	asyncNotifier ports.Notifier,
	logger *slog.Logger,
) UpdateStatusCommandHandler {
	return UpdateStatusCommandHandler{
		uowFactory:    uowFactory,
		notifier:      notifier,
		asyncNotifier: asyncNotifier,
		logger:        logger.With("component", "update-status-handler"),
	}
}

// Handle processes the status transition command.
// Fails with an ObjectNotFoundError if no tracking record matches the key.
// Any valid target status is accepted; permissions are recomputed from the
// new status, and the order's status mirror is updated in the same
// transaction so the two records can never disagree.
func (h *UpdateStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateStatusCommand,
) (*tracking.Tracking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	record, err := h.resolve(ctx, uow, cmd)
	if err != nil {
		return nil, err
	}

	if err = record.ChangeStatus(cmd.NewStatus(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = uow.TrackingRepository().Update(ctx, record); err != nil {
		return nil, err
	}

	tracked, err := uow.OrderRepository().Get(ctx, record.OrderID())
	if err != nil {
		return nil, err
	}

	if err = tracked.MirrorStatus(cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, tracked); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	notifier := h.notifier
	if cmd.ByOrderID() {
		notifier = h.asyncNotifier
	}
	if err = notifier.SendStatusUpdate(
		ctx,
		tracked.Site().PrimaryEmail(),
		record.Reference().String(),
		cmd.NewStatus().String(),
	); err != nil {
		h.logger.Warn("status update notice failed",
			"reference", record.Reference().String(),
			"status", cmd.NewStatus().String(), "error", err)
	}

	return record, nil
}

func (h *UpdateStatusCommandHandler) resolve(
	ctx context.Context,
	uow UoW,
	cmd UpdateStatusCommand,
) (*tracking.Tracking, error) {
	if cmd.ByOrderID() {
		return uow.TrackingRepository().GetByOrderID(ctx, cmd.OrderID())
	}
	return uow.TrackingRepository().GetByReference(ctx, cmd.Reference())
}
