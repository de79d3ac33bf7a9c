package commands

import (
	"errors"

	"routerorders/internal/core/domain/model/kernel"
	"routerorders/internal/core/domain/model/tracking"
	"routerorders/internal/pkg/errs"
	"routerorders/internal/pkg/guard"
)

var (
	ErrUpdateStatusCommandIsNotConstructed = errors.New(
		"UpdateStatusCommand must be created via NewUpdateStatusByReferenceCommand " +
			"or NewUpdateStatusByOrderIDCommand constructor",
	)
)

// UpdateStatusCommand represents an administrator-driven status transition.
// The tracking record can be addressed by either of its two keys: the public
// reference number or the internal order identity. Both forms converge on the
// same handler; only the notification path differs.
type UpdateStatusCommand struct { //nolint:recvcheck //using for validation
	reference kernel.ReferenceNumber
	orderID   uint64
	byOrderID bool
	newStatus tracking.Status

	guard guard.ConstructorGuard
}

// NewUpdateStatusByReferenceCommand creates a status transition addressed by
// the public reference number.
func NewUpdateStatusByReferenceCommand(
	reference kernel.ReferenceNumber,
	newStatus tracking.Status,
) (UpdateStatusCommand, error) {
	statusCommand := UpdateStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setReference(reference),
		statusCommand.setNewStatus(newStatus),
	); err != nil {
		return UpdateStatusCommand{}, err
	}

	return statusCommand, nil
}

// NewUpdateStatusByOrderIDCommand creates a status transition addressed by
// the internal order identity.
func NewUpdateStatusByOrderIDCommand(
	orderID uint64,
	newStatus tracking.Status,
) (UpdateStatusCommand, error) {
	statusCommand := UpdateStatusCommand{
		byOrderID: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setNewStatus(newStatus),
	); err != nil {
		return UpdateStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through a constructor.
// Returns ErrUpdateStatusCommandIsNotConstructed if validation fails.
func (c UpdateStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusCommandIsNotConstructed)
}

// ByOrderID reports whether the record is addressed by order identity rather
// than by reference number.
func (c UpdateStatusCommand) ByOrderID() bool {
	return c.byOrderID
}

// Reference returns the public reference number key. Valid only when
// ByOrderID is false.
func (c UpdateStatusCommand) Reference() kernel.ReferenceNumber {
	return c.reference
}

// OrderID returns the internal order identity key. Valid only when ByOrderID
// is true.
func (c UpdateStatusCommand) OrderID() uint64 {
	return c.orderID
}

// NewStatus returns the status to transition to.
func (c UpdateStatusCommand) NewStatus() tracking.Status {
	return c.newStatus
}

func (c *UpdateStatusCommand) setReference(reference kernel.ReferenceNumber) error {
	if err := reference.Validate(); err != nil {
		return err
	}

	c.reference = reference
	return nil
}

func (c *UpdateStatusCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateStatusCommand) setNewStatus(newStatus tracking.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
