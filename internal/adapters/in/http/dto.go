// Package http provides the inbound HTTP adapter: an echo server exposing
// the order placement, listing, reorder and tracking endpoints.
package http

import (
	"time"

	"routerorders/internal/core/domain/model/order"
)

// Error is the uniform error body for all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SiteRequest carries the delivery site contact bundle of an order request.
type SiteRequest struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	Postcode       string `json:"postcode"`
	PrimaryEmail   string `json:"primaryEmail"`
	SecondaryEmail string `json:"secondaryEmail"`
	PhoneNumber    string `json:"phoneNumber"`
	ContactName    string `json:"contactName"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	CustomerID                  uint64      `json:"customerId"`
	RouterID                    uint64      `json:"routerId"`
	PresetID                    *uint64     `json:"presetId"`
	PrimaryOutsideConnections   string      `json:"primaryOutsideConnections"`
	SecondaryOutsideConnections string      `json:"secondaryOutsideConnections"`
	InsideConnections           string      `json:"insideConnections"`
	Vlans                       string      `json:"vlans"`
	DHCP                        bool        `json:"dhcp"`
	Site                        SiteRequest `json:"site"`
	Quantity                    int         `json:"quantity"`
	PriorityLevel               string      `json:"priorityLevel"`
	AdditionalInformation       string      `json:"additionalInformation"`
}

// OrderResponse is the representation of a placed order.
type OrderResponse struct {
	ID        uint64    `json:"id"`
	Reference string    `json:"reference"`
	Status    string    `json:"status"`
	PlacedAt  time.Time `json:"placedAt"`
	RouterID  uint64    `json:"routerId"`
	Quantity  int       `json:"quantity"`
	SiteName  string    `json:"siteName"`
}

func orderResponseOf(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID(),
		Reference: o.Reference().String(),
		Status:    o.Status().String(),
		PlacedAt:  o.PlacedAt(),
		RouterID:  o.Details().RouterID,
		Quantity:  o.Quantity(),
		SiteName:  o.Site().Name(),
	}
}

// TrackingResponse is the representation of a tracking record.
type TrackingResponse struct {
	OrderID   uint64    `json:"orderId"`
	Reference string    `json:"reference"`
	Status    string    `json:"status"`
	CanModify bool      `json:"canModify"`
	CanCancel bool      `json:"canCancel"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TrackingViewResponse is the customer-facing tracking lookup, extending the
// tracking record with a short order summary.
type TrackingViewResponse struct {
	TrackingResponse
	RouterID     uint64 `json:"routerId"`
	Quantity     int    `json:"quantity"`
	SitePostcode string `json:"sitePostcode"`
}

// CreateTrackingRequest is the body of POST /api/order-tracking/create.
type CreateTrackingRequest struct {
	OrderID uint64 `json:"orderId"`
}

// UpdateStatusRequest is the body of the two status transition endpoints.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ModifyOrderRequest is the body of PUT /api/order-tracking/:reference/modify.
type ModifyOrderRequest struct {
	Quantity int `json:"quantity"`
}

// ReorderRequest is the body of POST /api/orders/:orderId/reorder.
type ReorderRequest struct {
	Email string `json:"email"`
}
