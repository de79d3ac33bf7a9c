package commands

import (
	"errors"

	"routerorders/internal/core/domain/model/kernel"
	"routerorders/internal/pkg/errs"
	"routerorders/internal/pkg/guard"
)

var (
	ErrModifyOrderCommandIsNotConstructed = errors.New(
		"ModifyOrderCommand must be created via NewModifyOrderCommand constructor",
	)
)

// ModifyOrderCommand represents a customer request to change the router
// quantity of an order, addressed by the public reference number. Quantity is
// the only descriptive field open to post-creation modification.
type ModifyOrderCommand struct { //nolint:recvcheck //using for validation
	reference kernel.ReferenceNumber
	quantity  int

	guard guard.ConstructorGuard
}

// NewModifyOrderCommand creates a modification command for the given
// reference number and target quantity. The quantity must be at least 1.
func NewModifyOrderCommand(reference kernel.ReferenceNumber, quantity int) (ModifyOrderCommand, error) {
	modifyCommand := ModifyOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		modifyCommand.setReference(reference),
		modifyCommand.setQuantity(quantity),
	); err != nil {
		return ModifyOrderCommand{}, err
	}

	return modifyCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrModifyOrderCommandIsNotConstructed if validation fails.
func (c ModifyOrderCommand) Validate() error {
	return c.guard.Validate(ErrModifyOrderCommandIsNotConstructed)
}

// Reference returns the public reference number of the order to modify.
func (c ModifyOrderCommand) Reference() kernel.ReferenceNumber {
	return c.reference
}

// Quantity returns the new router count to apply.
func (c ModifyOrderCommand) Quantity() int {
	return c.quantity
}

func (c *ModifyOrderCommand) setReference(reference kernel.ReferenceNumber) error {
	if err := reference.Validate(); err != nil {
		return err
	}

	c.reference = reference
	return nil
}

func (c *ModifyOrderCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, int(^uint(0)>>1))
	}

	c.quantity = quantity
	return nil
}
