package cart

// CreateRequest optionally picks the cart currency. An empty body or an
// empty currency falls back to usd.
type CreateRequest struct {
	Currency string `json:"currency"`
}

// AddItemRequest adds a product line to a cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateItemRequest sets a product line's quantity. Zero removes the line.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}
