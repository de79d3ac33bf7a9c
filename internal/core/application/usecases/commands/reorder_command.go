package commands

import (
	"errors"

	"routerorders/internal/pkg/errs"
	"routerorders/internal/pkg/guard"
)

var (
	ErrReorderCommandIsNotConstructed = errors.New(
		"ReorderCommand must be created via NewReorderCommand constructor",
	)
)

// ReorderCommand represents a customer request to duplicate a previous order.
// The requester must be the order's owner, i.e. the site primary contact.
type ReorderCommand struct { //nolint:recvcheck //using for validation
	orderID        uint64
	requesterEmail string

	guard guard.ConstructorGuard
}

// NewReorderCommand creates a reorder command for the given source order and
// requester identity.
func NewReorderCommand(orderID uint64, requesterEmail string) (ReorderCommand, error) {
	reorderCommand := ReorderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reorderCommand.setOrderID(orderID),
		reorderCommand.setRequesterEmail(requesterEmail),
	); err != nil {
		return ReorderCommand{}, err
	}

	return reorderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReorderCommandIsNotConstructed if validation fails.
func (c ReorderCommand) Validate() error {
	return c.guard.Validate(ErrReorderCommandIsNotConstructed)
}

// OrderID returns the identity of the order to duplicate.
func (c ReorderCommand) OrderID() uint64 {
	return c.orderID
}

// RequesterEmail returns the identity of the requesting customer.
func (c ReorderCommand) RequesterEmail() string {
	return c.requesterEmail
}

func (c *ReorderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *ReorderCommand) setRequesterEmail(requesterEmail string) error {
	if requesterEmail == "" {
		return errs.NewValueIsRequiredError("requesterEmail")
	}

	c.requesterEmail = requesterEmail
	return nil
}
