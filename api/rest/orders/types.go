package orders

import (
	"time"

	"codeberg.org/atelier/server/shop/orders"
)

// StatusResponse is the redacted order view shown to anonymous callers
// following a receipt link. Full details require the matching account.
type StatusResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ListResponse wraps the caller's own orders.
type ListResponse struct {
	Orders []orders.Order `json:"orders"`
}
