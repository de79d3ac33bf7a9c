package ports

import (
	"context"

	"routerorders/internal/core/domain/model/kernel"
	"routerorders/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for tracking records.
// The backing store enforces uniqueness of both the reference number and the
// order id, which is what makes a duplicate createTracking call fail rather
// than produce a second shadow record for the same order.
type TrackingRepository interface {
	// Add persists a new tracking record and records the store-assigned
	// identity on the aggregate via AssignID.
	Add(ctx context.Context, aggregate *tracking.Tracking) error

	// Update persists changes to an existing tracking record.
	Update(ctx context.Context, aggregate *tracking.Tracking) error

	// GetByReference retrieves a tracking record by its public reference
	// number. The lookup is case-sensitive and exact.
	GetByReference(ctx context.Context, reference kernel.ReferenceNumber) (*tracking.Tracking, error)

	// GetByOrderID retrieves the tracking record shadowing the given order.
	GetByOrderID(ctx context.Context, orderID uint64) (*tracking.Tracking, error)
}
