package queries

import (
	"errors"

	"routerorders/internal/pkg/guard"
)

var (
	ErrGetUntrackedOrdersQueryIsNotConstructed = errors.New(
		"GetUntrackedOrdersQuery must be created via NewGetUntrackedOrdersQuery constructor",
	)
)

// GetUntrackedOrdersQuery retrieves orders that have no tracking record yet.
// Reorders create the order row first and leave tracking activation to the
// periodic backfill sweep; this query is what the sweep runs on.
type GetUntrackedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUntrackedOrdersQuery creates a query for the untracked order listing.
// This is a parameterless query.
func NewGetUntrackedOrdersQuery() GetUntrackedOrdersQuery {
	return GetUntrackedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUntrackedOrdersQueryIsNotConstructed if validation fails.
func (q GetUntrackedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUntrackedOrdersQueryIsNotConstructed)
}

// GetUntrackedOrdersQueryResponse represents one order awaiting tracking
// activation.
type GetUntrackedOrdersQueryResponse struct {
	ID        uint64
	Reference string
}
