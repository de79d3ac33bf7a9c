package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUntrackedOrdersQueryHandler finds orders without a tracking record.
// Results are sorted by order id so the backfill sweep processes the oldest
// gap first.
type GetUntrackedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUntrackedOrdersQueryHandler creates a handler for untracked order
// queries.
func NewGetUntrackedOrdersQueryHandler(db *gorm.DB) GetUntrackedOrdersQueryHandler {
	return GetUntrackedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders lacking a tracking record.
func (h GetUntrackedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUntrackedOrdersQuery,
) ([]GetUntrackedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUntrackedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.reference_number
		FROM router_orders o
		LEFT JOIN order_trackings t ON t.router_order_id = o.id
		WHERE t.id IS NULL
		ORDER BY o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUntrackedOrdersQueryResponse
		if err = rows.Scan(&resp.ID, &resp.Reference); err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
