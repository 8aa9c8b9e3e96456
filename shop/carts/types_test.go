package carts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_Subtotal(t *testing.T) {
	cart := &Cart{Items: []Item{
		{ProductID: "p1", PriceCents: 12500, Quantity: 1},
		{ProductID: "p2", PriceCents: 4200, Quantity: 3},
	}}

	assert.Equal(t, int64(25100), cart.Subtotal())
}

func TestCart_SubtotalEmpty(t *testing.T) {
	cart := &Cart{}

	assert.Zero(t, cart.Subtotal())
}

func TestCart_AddItemMergesExistingLine(t *testing.T) {
	cart := &Cart{}

	cart.addItem(Item{ProductID: "p1", Title: "Untitled No. 4", PriceCents: 12500, Quantity: 1})
	cart.addItem(Item{ProductID: "p2", Title: "Harbor Study", PriceCents: 4200, Quantity: 1})
	cart.addItem(Item{ProductID: "p1", Title: "Untitled No. 4", PriceCents: 12500, Quantity: 2})

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 1, cart.Items[1].Quantity)
}

func TestCart_SetQuantity(t *testing.T) {
	cart := &Cart{Items: []Item{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 2},
	}}

	found := cart.setQuantity("p2", 5)

	assert.True(t, found)
	assert.Equal(t, 5, cart.Items[1].Quantity)
}

func TestCart_SetQuantityZeroRemovesLine(t *testing.T) {
	cart := &Cart{Items: []Item{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 2},
	}}

	found := cart.setQuantity("p1", 0)

	assert.True(t, found)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
}

func TestCart_SetQuantityUnknownProduct(t *testing.T) {
	cart := &Cart{Items: []Item{{ProductID: "p1", Quantity: 1}}}

	assert.False(t, cart.setQuantity("p9", 3))
	assert.Len(t, cart.Items, 1)
}

func TestNewCartID(t *testing.T) {
	id := newCartID()

	assert.True(t, strings.HasPrefix(id, "cart_"))
	assert.NotEqual(t, id, newCartID())
}
