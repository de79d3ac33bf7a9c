package commands

import (
	"errors"

	"routerorders/internal/pkg/errs"
	"routerorders/internal/pkg/guard"
)

var (
	ErrCreateTrackingCommandIsNotConstructed = errors.New(
		"CreateTrackingCommand must be created via NewCreateTrackingCommand constructor",
	)
)

// CreateTrackingCommand represents a request to activate lifecycle tracking
// for a placed order. Exactly one tracking record may exist per order; a
// repeated request fails on the store's uniqueness constraint.
type CreateTrackingCommand struct { //nolint:recvcheck //using for validation
	orderID uint64

	guard guard.ConstructorGuard
}

// NewCreateTrackingCommand creates a command to activate tracking for the
// given order. Returns an error if the order identity is missing.
func NewCreateTrackingCommand(orderID uint64) (CreateTrackingCommand, error) {
	trackingCommand := CreateTrackingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := trackingCommand.setOrderID(orderID); err != nil {
		return CreateTrackingCommand{}, err
	}

	return trackingCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateTrackingCommandIsNotConstructed if validation fails.
func (c CreateTrackingCommand) Validate() error {
	return c.guard.Validate(ErrCreateTrackingCommandIsNotConstructed)
}

// OrderID returns the identity of the order to start tracking.
func (c CreateTrackingCommand) OrderID() uint64 {
	return c.orderID
}

func (c *CreateTrackingCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}
