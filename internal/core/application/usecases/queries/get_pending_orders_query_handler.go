package queries

import (
	"context"

	"routerorders/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler reads the pending order work queue from the
// database, oldest order first so administrators confirm in arrival order.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for pending order
// queries.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders in the Pending status.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference_number,
			placed_at,
			router_id,
			quantity,
			site_name,
			site_postcode
		FROM router_orders
		WHERE status = ?
		ORDER BY placed_at, id
	`, tracking.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingOrdersQueryResponse
		err = rows.Scan(
			&resp.ID,
			&resp.Reference,
			&resp.PlacedAt,
			&resp.RouterID,
			&resp.Quantity,
			&resp.SiteName,
			&resp.SitePostcode,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
