package carts

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyCart = "cart:%s"

	// carts idle for two weeks expire on their own
	cartTTL = 14 * 24 * time.Hour
)

// Store keeps cart documents in Redis. Carts are ephemeral session state:
// a missing cart reads back as an empty cart rather than an error.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Create allocates a new empty cart.
func (s *Store) Create(ctx context.Context, currency string) (*Cart, error) {
	cart := &Cart{
		ID:        newCartID(),
		Currency:  currency,
		Items:     []Item{},
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// Get loads a cart by id. Unknown ids return an empty cart with that id.
func (s *Store) Get(ctx context.Context, cartID string) (*Cart, error) {
	data, err := s.client.Get(ctx, fmt.Sprintf(keyCart, cartID)).Bytes()

	if errors.Is(err, redis.Nil) {
		return &Cart{ID: cartID, Items: []Item{}, UpdatedAt: time.Now().UTC()}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get cart from redis: %w", err)
	}

	var cart Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}

	if cart.Items == nil {
		cart.Items = []Item{}
	}

	return &cart, nil
}

// AddItem merges a line into the cart and saves it.
func (s *Store) AddItem(ctx context.Context, cartID string, item Item) (*Cart, error) {
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart.addItem(item)

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// UpdateItem sets a line's quantity; zero removes it. Reports whether the
// product was in the cart.
func (s *Store) UpdateItem(ctx context.Context, cartID, productID string, quantity int) (*Cart, bool, error) {
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, false, err
	}

	found := cart.setQuantity(productID, quantity)
	if !found {
		return cart, false, nil
	}

	if err := s.save(ctx, cart); err != nil {
		return nil, false, err
	}

	return cart, true, nil
}

// RemoveItem drops a product line from the cart.
func (s *Store) RemoveItem(ctx context.Context, cartID, productID string) (*Cart, bool, error) {
	return s.UpdateItem(ctx, cartID, productID, 0)
}

// Clear deletes the cart document.
func (s *Store) Clear(ctx context.Context, cartID string) error {
	if err := s.client.Del(ctx, fmt.Sprintf(keyCart, cartID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

// writes the cart back and refreshes its TTL
func (s *Store) save(ctx context.Context, cart *Cart) error {
	cart.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	if err := s.client.Set(ctx, fmt.Sprintf(keyCart, cart.ID), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart to redis: %w", err)
	}

	return nil
}

func newCartID() string {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("cart_%d", time.Now().UnixNano())
	}

	return "cart_" + hex.EncodeToString(buf)
}
