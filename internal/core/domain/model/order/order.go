package order

import (
	"errors"
	"fmt"
	"time"

	"routerorders/internal/core/domain/model/kernel"
	"routerorders/internal/core/domain/model/tracking"
	"routerorders/internal/pkg/errs"
)

// maxAdditionalInformationLen bounds the free-text field.
const maxAdditionalInformationLen = 500

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Details carries the descriptive attributes of a router order: who it is
// for, which hardware, how it is connected, and where it ships. It is the
// input to NewOrder and is validated there.
type Details struct {
	CustomerID                  uint64
	RouterID                    uint64
	PresetID                    *uint64
	PrimaryOutsideConnections   string
	SecondaryOutsideConnections string
	InsideConnections           string
	Vlans                       VlanType
	DHCP                        bool
	Site                        Site
	Quantity                    int
	PriorityLevel               string
	AdditionalInformation       string
}

// Order is the aggregate root for a router provisioning request.
//
// Order maintains these invariants:
//   - The reference number is assigned exactly once, at creation, and never
//     changes, even across a reorder
//   - Quantity is at least 1 (a zero quantity defaults to 1 at creation)
//   - The placed-at timestamp is set once and is immutable
//   - The status field only mirrors the tracking record's status and is
//     written solely by the lifecycle manager
type Order struct {
	id        uint64
	reference kernel.ReferenceNumber
	details   Details
	placedAt  time.Time
	status    tracking.Status

	isConstructed bool
}

// NewOrder creates a new order with a freshly generated reference number and
// the initial Pending status mirror. The store-assigned identity is recorded
// later via AssignID.
//
// A zero Quantity defaults to 1; a negative Quantity is rejected. The site
// bundle and VLAN configuration must be valid.
func NewOrder(details Details, placedAt time.Time) (*Order, error) {
	o := &Order{
		reference:     kernel.NewReferenceNumber(),
		placedAt:      placedAt,
		status:        tracking.Pending,
		isConstructed: true,
	}

	if err := o.setDetails(details); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its stored
// reference number, identity, timestamp and status mirror.
func RestoreOrder(
	id uint64,
	reference kernel.ReferenceNumber,
	details Details,
	placedAt time.Time,
	status tracking.Status,
) (*Order, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if err := errors.Join(reference.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		reference:     reference,
		placedAt:      placedAt,
		status:        status,
		isConstructed: true,
	}

	if err := o.setDetails(details); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identities.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the store-assigned identity, or 0 before the order is persisted.
func (o *Order) ID() uint64 {
	return o.id
}

// AssignID records the store-assigned identity. The identity is assigned
// exactly once; reassignment fails.
func (o *Order) AssignID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("order %d already has an identity", o.id))
	}
	o.id = id
	return nil
}

// Reference returns the immutable public reference number.
func (o *Order) Reference() kernel.ReferenceNumber {
	return o.reference
}

// Details returns the descriptive attributes of the order.
func (o *Order) Details() Details {
	return o.details
}

// Site returns the delivery site contact bundle.
func (o *Order) Site() Site {
	return o.details.Site
}

// Quantity returns the number of routers requested.
func (o *Order) Quantity() int {
	return o.details.Quantity
}

// PlacedAt returns the immutable creation timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Status returns the mirrored lifecycle status.
func (o *Order) Status() tracking.Status {
	return o.status
}

// MirrorStatus updates the denormalized status mirror. Only the lifecycle
// manager calls this, inside the same transaction that persists the tracking
// record's status change.
func (o *Order) MirrorStatus(status tracking.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// ChangeQuantity applies a customer modification to the requested router
// count. It is the only descriptive field open to post-creation modification.
func (o *Order) ChangeQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, int(^uint(0)>>1))
	}
	o.details.Quantity = quantity
	return nil
}

// OwnedBy reports whether the given identity is the order's owner, i.e. the
// site primary contact email. The comparison is exact.
func (o *Order) OwnedBy(email string) bool {
	return email != "" && o.details.Site.PrimaryEmail() == email
}

// Reorder constructs a new order copying every descriptive field from this
// one, with a new reference number, status reset to Pending, the placed-at
// timestamp reset to now, and the primary contact reset to the requester.
// The caller must have verified ownership beforehand.
func (o *Order) Reorder(requesterEmail string, now time.Time) (*Order, error) {
	site, err := o.details.Site.WithPrimaryEmail(requesterEmail)
	if err != nil {
		return nil, err
	}

	details := o.details
	details.Site = site
	return NewOrder(details, now)
}

func (o *Order) setDetails(details Details) error {
	if details.CustomerID == 0 {
		return errs.NewValueIsRequiredError("customerId")
	}
	if details.RouterID == 0 {
		return errs.NewValueIsRequiredError("routerId")
	}
	if err := details.Vlans.Validate(); err != nil {
		return err
	}
	if err := details.Site.Validate(); err != nil {
		return err
	}
	if details.Quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", details.Quantity, 1, int(^uint(0)>>1))
	}
	if details.Quantity == 0 {
		details.Quantity = 1
	}
	if len(details.AdditionalInformation) > maxAdditionalInformationLen {
		return errs.NewValueIsOutOfRangeError(
			"additionalInformation",
			len(details.AdditionalInformation), 0, maxAdditionalInformationLen,
		)
	}

	o.details = details
	return nil
}
