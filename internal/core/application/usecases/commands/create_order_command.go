package commands

import (
	"errors"

	"routerorders/internal/core/domain/model/order"
	"routerorders/internal/pkg/errs"
	"routerorders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new router order.
// Encapsulates the full descriptive bundle: hardware selection, connection
// layout, VLAN configuration and the delivery site contact.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(details)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed", placed.Reference())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	details order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new router order.
// Validates that the customer and router identities are present and that the
// site bundle and VLAN configuration are valid. Returns an error if any
// validation fails.
func NewCreateOrderCommand(details order.Details) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderCommand.setDetails(details); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Details returns the descriptive bundle of the order to place.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c *CreateOrderCommand) setDetails(details order.Details) error {
	if details.CustomerID == 0 {
		return errs.NewValueIsRequiredError("customerId")
	}
	if details.RouterID == 0 {
		return errs.NewValueIsRequiredError("routerId")
	}
	if err := errors.Join(details.Vlans.Validate(), details.Site.Validate()); err != nil {
		return err
	}

	c.details = details
	return nil
}
