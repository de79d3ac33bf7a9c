package commands

import (
	"context"
	"log/slog"
	"time"

	"routerorders/internal/core/domain/model/tracking"
	"routerorders/internal/core/ports"
)

// CreateTrackingCommandHandler handles tracking activation for placed orders.
// Looks up the order, derives the tracking record from it (same reference
// number, Pending status, both customer permissions granted), and sends the
// order confirmation notice once the record is committed.
type CreateTrackingCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCreateTrackingCommandHandler creates a handler for tracking activation.
// The notifier is called after commit; its failures are logged and swallowed.
func NewCreateTrackingCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateTrackingCommandHandler {
	return CreateTrackingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "create-tracking-handler"),
	}
}

// Handle processes the tracking activation command.
// Fails with an ObjectNotFoundError if the order does not exist, and with the
// store's uniqueness error if the order is already tracked. On success the
// site primary contact receives a confirmation notice; a failing notice never
// fails the operation.
func (h *CreateTrackingCommandHandler) Handle(
	ctx context.Context,
	cmd CreateTrackingCommand,
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

	tracked, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	record, err := tracking.NewTracking(tracked.ID(), tracked.Reference(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.TrackingRepository().Add(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.notifier.SendOrderConfirmation(
		ctx,
		tracked.Site().PrimaryEmail(),
		tracked.Reference().String(),
		ports.SnapshotOf(tracked),
	); err != nil {
		h.logger.Warn("order confirmation notice failed",
			"reference", tracked.Reference().String(), "error", err)
	}

	return record, nil
}
