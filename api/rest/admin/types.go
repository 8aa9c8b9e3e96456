package admin

import (
	"codeberg.org/atelier/server/api/rest/pagination"
	"codeberg.org/atelier/server/internal/monitor"
	"codeberg.org/atelier/server/shop/orders"
	"codeberg.org/atelier/server/shop/products"
)

// ProductsListResponse wraps the full (published and draft) catalog
type ProductsListResponse struct {
	Products   []products.Product `json:"products"`
	Pagination pagination.Meta    `json:"pagination"`
}

// OrdersListResponse wraps a page of orders
type OrdersListResponse struct {
	Orders     []orders.Order  `json:"orders"`
	Pagination pagination.Meta `json:"pagination"`
}

// UpdateOrderStatusRequest moves an order through its lifecycle
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ErrorEventsResponse returns recent monitoring records
type ErrorEventsResponse struct {
	Events []monitor.Event `json:"events"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
