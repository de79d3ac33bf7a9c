package ports

import (
	"context"

	"routerorders/internal/core/domain/model/order"
)

// OrderSnapshot is the human-readable order summary included in confirmation
// and modification notices.
type OrderSnapshot struct {
	RouterID     uint64
	Quantity     int
	SiteName     string
	SiteAddress  string
	SitePostcode string
}

// SnapshotOf builds the notification snapshot for an order.
func SnapshotOf(o *order.Order) OrderSnapshot {
	return OrderSnapshot{
		RouterID:     o.Details().RouterID,
		Quantity:     o.Quantity(),
		SiteName:     o.Site().Name(),
		SiteAddress:  o.Site().Address(),
		SitePostcode: o.Site().Postcode(),
	}
}

// Notifier is the outbound notification gateway. Every call is one-way and
// best-effort: the lifecycle manager logs and swallows any returned error, so
// a failing gateway can never fail or roll back a state change. There is no
// retry; delivery is at-most-attempted-once.
//
// Implementations must be safe for concurrent use. An asynchronous
// implementation may return nil immediately after enqueueing.
type Notifier interface {
	// SendOrderConfirmation notifies the site primary contact that the order
	// was placed and tracking is active.
	SendOrderConfirmation(ctx context.Context, email string, reference string, snapshot OrderSnapshot) error

	// SendStatusUpdate notifies the site primary contact of a status change.
	SendStatusUpdate(ctx context.Context, email string, reference string, status string) error

	// SendCancellation confirms a customer-driven cancellation.
	SendCancellation(ctx context.Context, email string, reference string) error

	// SendModification confirms an order modification with the updated snapshot.
	SendModification(ctx context.Context, email string, reference string, snapshot OrderSnapshot) error
}
