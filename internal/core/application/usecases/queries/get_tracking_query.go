// Package queries contains the read side of the service. Queries bypass the
// aggregates and read projections straight from the database, returning plain
// response structs shaped for the HTTP layer.
package queries

import (
	"errors"
	"time"

	"routerorders/internal/core/domain/model/kernel"
	"routerorders/internal/pkg/guard"
)

var (
	ErrGetTrackingQueryIsNotConstructed = errors.New(
		"GetTrackingQuery must be created via NewGetTrackingQuery constructor",
	)
)

// GetTrackingQuery retrieves the public tracking view for one order,
// addressed by its reference number. This is the customer-facing lookup that
// sits behind the rate-limited tracking endpoint.
type GetTrackingQuery struct {
	reference kernel.ReferenceNumber

	guard guard.ConstructorGuard
}

// NewGetTrackingQuery creates a tracking lookup for the given reference
// number.
func NewGetTrackingQuery(reference kernel.ReferenceNumber) (GetTrackingQuery, error) {
	if err := reference.Validate(); err != nil {
		return GetTrackingQuery{}, err
	}

	return GetTrackingQuery{
		reference: reference,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTrackingQueryIsNotConstructed if validation fails.
func (q GetTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingQueryIsNotConstructed)
}

// Reference returns the reference number to look up.
func (q GetTrackingQuery) Reference() kernel.ReferenceNumber {
	return q.reference
}

// GetTrackingQueryResponse is the customer-facing tracking view: the current
// status with both permission flags, plus a short summary of the order the
// record shadows.
type GetTrackingQueryResponse struct {
	OrderID      uint64
	Reference    string
	Status       string
	CanModify    bool
	CanCancel    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	RouterID     uint64
	Quantity     int
	SitePostcode string
}
