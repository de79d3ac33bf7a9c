package tracking

import (
	"errors"
	"fmt"
	"time"

	"routerorders/internal/core/domain/model/kernel"
	"routerorders/internal/pkg/errs"
)

var (
	// ErrTrackingIsNotConstructed is returned when a Tracking instance was not
	// created through NewTracking or RestoreTracking.
	ErrTrackingIsNotConstructed = errors.New("Tracking must be created via NewTracking or RestoreTracking")

	// ErrOrderIDIsRequired is returned when a tracking record is constructed
	// without a backing order identity.
	ErrOrderIDIsRequired = errs.NewValueIsRequiredError("orderID")
)

// Tracking is the aggregate root for the status/permission shadow of one
// order. Exactly one tracking record exists per order (the store enforces
// order-id uniqueness), and the record is the single authority for the
// order's current status.
//
// Tracking maintains these invariants:
//   - The reference number is copied from the order at creation and is immutable
//   - (canModify, canCancel) always equal Status.Permissions() of the current status
//   - updatedAt is refreshed on every mutation
//   - Can only be created through NewTracking or RestoreTracking
type Tracking struct {
	id        uint64
	orderID   uint64
	reference kernel.ReferenceNumber
	status    Status
	canModify bool
	canCancel bool
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewTracking creates the tracking record for a freshly placed order. The
// record starts in Pending with both customer permissions granted. The id is
// assigned later by the store via AssignID.
func NewTracking(orderID uint64, reference kernel.ReferenceNumber, now time.Time) (*Tracking, error) {
	if orderID == 0 {
		return nil, ErrOrderIDIsRequired
	}
	if err := reference.Validate(); err != nil {
		return nil, err
	}

	canModify, canCancel := Pending.Permissions()
	return &Tracking{
		orderID:       orderID,
		reference:     reference,
		status:        Pending,
		canModify:     canModify,
		canCancel:     canCancel,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreTracking reconstructs a tracking record from persistence. It also
// re-checks the permission invariant: stored flags that disagree with the
// status-to-permission mapping indicate a corrupted row and fail restoration.
func RestoreTracking(
	id uint64,
	orderID uint64,
	reference kernel.ReferenceNumber,
	status Status,
	canModify bool,
	canCancel bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Tracking, error) {
	if orderID == 0 {
		return nil, ErrOrderIDIsRequired
	}
	if err := errors.Join(reference.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	wantModify, wantCancel := status.Permissions()
	if canModify != wantModify || canCancel != wantCancel {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"permissions",
			fmt.Errorf("stored flags (canModify=%t, canCancel=%t) disagree with status %s",
				canModify, canCancel, status),
		)
	}

	return &Tracking{
		id:            id,
		orderID:       orderID,
		reference:     reference,
		status:        status,
		canModify:     canModify,
		canCancel:     canCancel,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Tracking instance was properly constructed.
func (t *Tracking) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTrackingIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identity, or 0 before the record is persisted.
func (t *Tracking) ID() uint64 {
	return t.id
}

// AssignID records the store-assigned identity. The identity is assigned
// exactly once; reassignment fails.
func (t *Tracking) AssignID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	if t.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("tracking %d already has an identity", t.id))
	}
	t.id = id
	return nil
}

// OrderID returns the identity of the order this record shadows.
func (t *Tracking) OrderID() uint64 {
	return t.orderID
}

// Reference returns the immutable public reference number.
func (t *Tracking) Reference() kernel.ReferenceNumber {
	return t.reference
}

// Status returns the current lifecycle status.
func (t *Tracking) Status() Status {
	return t.status
}

// CanModify reports whether the customer may currently modify the order.
func (t *Tracking) CanModify() bool {
	return t.canModify
}

// CanCancel reports whether the customer may currently cancel the order.
func (t *Tracking) CanCancel() bool {
	return t.canCancel
}

// CreatedAt returns the creation timestamp of the record.
func (t *Tracking) CreatedAt() time.Time {
	return t.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (t *Tracking) UpdatedAt() time.Time {
	return t.updatedAt
}

// ChangeStatus sets the status to newStatus and recomputes both permission
// flags from the mapping. Any valid status is accepted unconditionally: the
// fulfillment pipeline is administrator-driven and the manager does not
// restrict which stage follows which.
func (t *Tracking) ChangeStatus(newStatus Status, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	t.status = newStatus
	t.canModify, t.canCancel = newStatus.Permissions()
	t.updatedAt = now
	return nil
}

// Cancel performs the customer-driven cancellation transition. It succeeds
// only while canCancel is true, i.e. in Pending; afterwards the order is in
// the terminal Cancelled status with both permissions revoked.
func (t *Tracking) Cancel(now time.Time) error {
	if !t.canCancel {
		return errs.NewInvalidStateErrorWithCause(
			"cancel",
			"order cannot be cancelled at this stage",
			fmt.Errorf("status is %s", t.status),
		)
	}

	return t.ChangeStatus(Cancelled, now)
}

// EnsureModifiable returns an InvalidStateError unless the customer may
// currently modify the order.
func (t *Tracking) EnsureModifiable() error {
	if !t.canModify {
		return errs.NewInvalidStateErrorWithCause(
			"modify",
			"order cannot be modified at this stage",
			fmt.Errorf("status is %s", t.status),
		)
	}
	return nil
}
