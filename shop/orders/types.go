package orders

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

// order lifecycle states
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCanceled  = "canceled"
)

var validStatuses = map[string]bool{
	StatusPending:   true,
	StatusPaid:      true,
	StatusShipped:   true,
	StatusDelivered: true,
	StatusCanceled:  true,
}

// IsValidStatus reports whether s is a known order status.
func IsValidStatus(s string) bool {
	return validStatuses[s]
}

// statusPreconditions lists the current statuses each target status may be
// reached from. The lifecycle only moves forward; canceling is possible
// until shipment. pending is the initial state and never a target.
var statusPreconditions = map[string][]string{
	StatusPaid:      {StatusPending},
	StatusShipped:   {StatusPaid},
	StatusDelivered: {StatusShipped},
	StatusCanceled:  {StatusPending, StatusPaid},
}

// CanTransition reports whether an order in status from may move to to.
func CanTransition(from, to string) bool {
	for _, prev := range statusPreconditions[to] {
		if prev == from {
			return true
		}
	}

	return false
}

type Order struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Items           LineItems `json:"items"`
	Address         Address   `json:"address"`
	SubtotalCents   int64     `json:"subtotal_cents"`
	ShippingCents   int64     `json:"shipping_cents"`
	TotalCents      int64     `json:"total_cents"`
	Currency        string    `json:"currency"`
	PaymentIntentID string    `json:"payment_intent_id,omitempty"`
	ShippingRateID  string    `json:"shipping_rate_id,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type LineItem struct {
	ProductID  string `json:"product_id"`
	Title      string `json:"title"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

type LineItems []LineItem

func (li LineItems) Value() (driver.Value, error) {
	if len(li) == 0 {
		return "[]", nil
	}

	bytes, err := json.Marshal(li)
	if err != nil {
		return nil, err
	}

	return string(bytes), nil
}

func (li *LineItems) Scan(value any) error {
	if value == nil {
		*li = LineItems{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		if s, isString := value.(string); isString {
			bytes = []byte(s)
		} else {
			return fmt.Errorf("cannot scan %T into LineItems", value)
		}
	}

	return json.Unmarshal(bytes, li)
}

// Address is the shipping destination stored with the order.
type Address struct {
	Name    string `json:"name"`
	Street1 string `json:"street1"`
	Street2 string `json:"street2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

func (a Address) Value() (driver.Value, error) {
	bytes, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}

	return string(bytes), nil
}

func (a *Address) Scan(value any) error {
	if value == nil {
		*a = Address{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		if s, isString := value.(string); isString {
			bytes = []byte(s)
		} else {
			return fmt.Errorf("cannot scan %T into Address", value)
		}
	}

	return json.Unmarshal(bytes, a)
}

type CreateOrderRequest struct {
	Email           string
	Items           LineItems
	Address         Address
	SubtotalCents   int64
	ShippingCents   int64
	Currency        string
	PaymentIntentID string
	ShippingRateID  string
}
