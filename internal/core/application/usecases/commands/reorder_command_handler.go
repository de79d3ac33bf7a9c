package commands

import (
	"context"
	"time"

	"routerorders/internal/core/domain/model/order"
	"routerorders/internal/pkg/errs"
)

// ReorderCommandHandler handles order duplication.
// Verifies that the requester owns the source order, then places a fresh
// order copying every descriptive field, with a new reference number, the
// Pending status, the current time as the placed-at timestamp, and the
// requester as the site primary contact.
//
// The duplicate's tracking record is not created here; the periodic backfill
// sweep picks up untracked orders and activates tracking for them.
type ReorderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReorderCommandHandler creates a handler for order duplication.
func NewReorderCommandHandler(uowFactory OrderUoWFactory) ReorderCommandHandler {
	return ReorderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reorder command.
// Fails with an ObjectNotFoundError if the source order does not exist, and
// with an UnauthorizedError if the requester is not the source order's site
// primary contact.
func (h *ReorderCommandHandler) Handle(ctx context.Context, cmd ReorderCommand) (*order.Order, error) {
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

	source, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !source.OwnedBy(cmd.RequesterEmail()) {
		return nil, errs.NewUnauthorizedError("reorder", cmd.RequesterEmail())
	}

	duplicate, err := source.Reorder(cmd.RequesterEmail(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, duplicate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return duplicate, nil
}
