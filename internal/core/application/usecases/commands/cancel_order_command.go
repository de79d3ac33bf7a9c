package commands

import (
	"errors"

	"routerorders/internal/core/domain/model/kernel"
	"routerorders/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents a customer request to cancel an order,
// addressed by the public reference number.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	reference kernel.ReferenceNumber

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a cancellation command for the given
// reference number.
func NewCancelOrderCommand(reference kernel.ReferenceNumber) (CancelOrderCommand, error) {
	cancelCommand := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setReference(reference); err != nil {
		return CancelOrderCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderCommandIsNotConstructed if validation fails.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// Reference returns the public reference number of the order to cancel.
func (c CancelOrderCommand) Reference() kernel.ReferenceNumber {
	return c.reference
}

func (c *CancelOrderCommand) setReference(reference kernel.ReferenceNumber) error {
	if err := reference.Validate(); err != nil {
		return err
	}

	c.reference = reference
	return nil
}
