package queries

import (
	"context"
	"database/sql"
	"errors"

	"routerorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetTrackingQueryHandler reads the tracking projection for one reference
// number, joining the tracking record with its order for the summary fields.
type GetTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingQueryHandler creates a handler for tracking lookups.
func NewGetTrackingQueryHandler(db *gorm.DB) GetTrackingQueryHandler {
	return GetTrackingQueryHandler{db: db}
}

// Handle executes the tracking lookup.
// Returns an ObjectNotFoundError if no tracking record matches the reference.
func (h GetTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingQuery,
) (GetTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTrackingQueryResponse{}, err
	}

	var resp GetTrackingQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			t.router_order_id,
			t.reference_number,
			t.status,
			t.can_modify,
			t.can_cancel,
			t.created_at,
			t.updated_at,
			o.router_id,
			o.quantity,
			o.site_postcode
		FROM order_trackings t
		JOIN router_orders o ON o.id = t.router_order_id
		WHERE t.reference_number = ?
	`, query.Reference().String()).Row()

	err := row.Scan(
		&resp.OrderID,
		&resp.Reference,
		&resp.Status,
		&resp.CanModify,
		&resp.CanCancel,
		&resp.CreatedAt,
		&resp.UpdatedAt,
		&resp.RouterID,
		&resp.Quantity,
		&resp.SitePostcode,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetTrackingQueryResponse{},
				errs.NewObjectNotFoundError("tracking", query.Reference().String())
		}
		return GetTrackingQueryResponse{}, err
	}

	return resp, nil
}
