package ports

import (
	"context"

	"routerorders/internal/core/domain/model/order"
	"routerorders/internal/core/domain/model/tracking"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and records the store-assigned identity on the
	// aggregate via AssignID.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identity.
	Get(ctx context.Context, id uint64) (*order.Order, error)

	// GetAllByEmail retrieves the order history for a site primary contact.
	GetAllByEmail(ctx context.Context, email string) ([]*order.Order, error)

	// GetAllByStatus retrieves all orders whose mirrored status matches.
	GetAllByStatus(ctx context.Context, status tracking.Status) ([]*order.Order, error)
}
