package carts

import "time"

// Item is one product line in a cart. Price is captured at add time so the
// cart total is stable even if the catalog price changes mid-session.
type Item struct {
	ProductID  string `json:"product_id"`
	Title      string `json:"title"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

// Cart is an ephemeral, Redis-backed shopping cart document.
type Cart struct {
	ID        string    `json:"id"`
	Currency  string    `json:"currency"`
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Subtotal sums line price x quantity across the cart.
func (c *Cart) Subtotal() int64 {
	var total int64

	for _, item := range c.Items {
		total += item.PriceCents * int64(item.Quantity)
	}

	return total
}

// merges a line into the cart: an existing product line gains quantity,
// a new product appends
func (c *Cart) addItem(item Item) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}

	c.Items = append(c.Items, item)
}

// sets a line's quantity; zero removes the line. Reports whether the
// product was present.
func (c *Cart) setQuantity(productID string, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}

		if quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		} else {
			c.Items[i].Quantity = quantity
		}

		return true
	}

	return false
}
