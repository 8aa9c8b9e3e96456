package checkout

import "codeberg.org/atelier/server/shop/orders"

// CheckoutRequest starts a checkout: it turns a cart plus a chosen
// shipping rate into a pending order and a payment intent.
type CheckoutRequest struct {
	CartID         string         `json:"cart_id"`
	Email          string         `json:"email"`
	Currency       string         `json:"currency"`
	Address        orders.Address `json:"address"`
	ShippingRateID string         `json:"shipping_rate_id"`
	ShippingCents  int64          `json:"shipping_cents"`
}

// CheckoutResponse carries what the storefront needs to collect payment.
type CheckoutResponse struct {
	Order        *orders.Order `json:"order"`
	ClientSecret string        `json:"client_secret"`
}

// ConfirmRequest finalizes an order after the payment intent succeeded.
type ConfirmRequest struct {
	PaymentIntentID string `json:"payment_intent_id"`
	CartID          string `json:"cart_id"`
}
