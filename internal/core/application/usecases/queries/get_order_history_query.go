package queries

import (
	"errors"
	"time"

	"routerorders/internal/pkg/errs"
	"routerorders/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

// GetOrderHistoryQuery retrieves the order history for one customer identity,
// i.e. every order whose site primary contact matches the email.
type GetOrderHistoryQuery struct {
	email string

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a history query for the given email.
func NewGetOrderHistoryQuery(email string) (GetOrderHistoryQuery, error) {
	if email == "" {
		return GetOrderHistoryQuery{}, errs.NewValueIsRequiredError("email")
	}

	return GetOrderHistoryQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderHistoryQueryIsNotConstructed if validation fails.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// Email returns the customer identity whose history is requested.
func (q GetOrderHistoryQuery) Email() string {
	return q.email
}

// GetOrderHistoryQueryResponse represents one order in the history listing.
type GetOrderHistoryQueryResponse struct {
	ID        uint64
	Reference string
	Status    string
	PlacedAt  time.Time
	RouterID  uint64
	Quantity  int
	SiteName  string
}
