package tracking

import (
	"fmt"

	"routerorders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order as seen through its
// tracking record. It is a closed enumeration: strings from external callers
// are parsed with ParseStatus, and unrecognized values are rejected instead of
// being stored with stale permissions.
//
// Lifecycle:
//
//	PENDING ──> CONFIRMED ──> IN_PRODUCTION ──> QUALITY_CHECK
//	   │                                             │
//	   └──> CANCELLED (terminal)                     v
//	        READY_FOR_SHIPPING ──> IN_TRANSIT ──> DELIVERED (terminal)
//
// Transitions between the fulfillment stages are administrator-driven and not
// restricted to the arrows above; only the permission flags derived from the
// current status gate customer actions. PENDING is the single status in which
// the customer may still modify or cancel the order.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every placed order. The customer may
	// still modify or cancel the order.
	Pending

	// Confirmed indicates the order entered the fulfillment pipeline.
	// Customer-initiated changes are locked from here on.
	Confirmed

	// InProduction indicates the routers are being produced.
	InProduction

	// QualityCheck indicates the produced routers are being verified.
	QualityCheck

	// ReadyForShipping indicates the order awaits carrier pickup.
	ReadyForShipping

	// InTransit indicates the order is on its way to the site.
	InTransit

	// Delivered indicates the order reached the site. Terminal.
	Delivered

	// Cancelled indicates the customer cancelled the order while it was
	// still pending. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their canonical string
// representations, including Unknown for display purposes.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "UNKNOWN",
		Pending:          "PENDING",
		Confirmed:        "CONFIRMED",
		InProduction:     "IN_PRODUCTION",
		QualityCheck:     "QUALITY_CHECK",
		ReadyForShipping: "READY_FOR_SHIPPING",
		InTransit:        "IN_TRANSIT",
		Delivered:        "DELIVERED",
		Cancelled:        "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:          "PENDING",
		Confirmed:        "CONFIRMED",
		InProduction:     "IN_PRODUCTION",
		QualityCheck:     "QUALITY_CHECK",
		ReadyForShipping: "READY_FOR_SHIPPING",
		InTransit:        "IN_TRANSIT",
		Delivered:        "DELIVERED",
		Cancelled:        "CANCELLED",
	}
}

// ParseStatus converts an external status string to its Status value. The
// match is exact: unrecognized or differently cased strings fail with a
// value-is-invalid error rather than silently passing through.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized order status", s),
	)
}

// Validate checks if the Status value is a member of the closed enumeration.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical upper-snake name of the status, or "UNKNOWN"
// for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Permissions returns the customer permission pair (canModify, canCancel)
// derived from the status. Only PENDING leaves the order open to
// customer-initiated modification or cancellation; every status past
// confirmation models fulfillment work already underway and locks both.
func (s Status) Permissions() (canModify bool, canCancel bool) {
	return s == Pending, s == Pending
}

// IsTerminal reports whether no further transition is exposed from the status.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Delivered
}
