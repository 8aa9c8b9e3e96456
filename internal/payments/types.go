package payments

// Intent is the subset of the payment provider's PaymentIntent object the
// storefront cares about.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// CreateIntentParams holds the inputs for creating a payment intent.
type CreateIntentParams struct {
	AmountCents  int64
	Currency     string
	ReceiptEmail string
	OrderID      string
	Description  string
}

// Config holds credentials and tuning for the Stripe client.
type Config struct {
	APIKey string
}
