// Package commands contains the lifecycle operations that modify order state.
// Implements the Command pattern for write operations: every command is a
// validated value object, and every handler runs its persistence work inside
// a unit of work so the order and its tracking record change as one
// transaction. Outbound notifications happen after commit and are best-effort
// by contract: their failure is logged and swallowed, never surfaced.
package commands

import (
	"context"

	"routerorders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TrackingRepoFactory provides access to the tracking repository within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// OrderUoW manages transactions for order-only operations, such as order
	// creation and reorder, which never touch a tracking record.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions spanning both the order and its tracking
	// record. Used by every operation that must keep the mirrored status and
	// the tracking status consistent.
	UoW interface {
		TxManager
		OrderRepoFactory
		TrackingRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
