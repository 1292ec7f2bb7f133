package cart_test

import (
	"context"
	"testing"

	"velora_back_end/internal/cart"
	"velora_back_end/internal/models"
	"velora_back_end/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id models.ProductID, name string, price float64) models.Product {
	return models.Product{ID: id, Name: name, Price: price, Image: "https://cdn.example.com/" + string(id) + ".jpg"}
}

func newCart(t *testing.T) (*store.MemoryStore, *cart.Manager) {
	t.Helper()
	ms := store.NewMemoryStore()
	return ms, cart.NewManager(ms, ms, "")
}

func TestAddAggregatesByProductID(t *testing.T) {
	ctx := context.Background()
	_, cm := newCart(t)

	p1 := product("1", "Robe d'été", 29.5)
	p2 := product("2", "Veste en cuir", 89.99)

	_, err := cm.Add(ctx, p1)
	require.NoError(t, err)
	_, err = cm.Add(ctx, p2)
	require.NoError(t, err)
	_, err = cm.Add(ctx, p1)
	require.NoError(t, err)

	items := cm.Items(ctx)
	require.Len(t, items, 2)

	// Une seule ligne par produit, quantité = nombre d'ajouts,
	// ordre d'insertion préservé
	assert.Equal(t, models.ProductID("1"), items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, models.ProductID("2"), items[1].ID)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestAddNotifiesOncePerCall(t *testing.T) {
	ctx := context.Background()
	ms, cm := newCart(t)

	_, err := cm.Add(ctx, product("1", "Robe d'été", 29.5))
	require.NoError(t, err)
	assert.Len(t, ms.Published, 1)

	_, err = cm.Add(ctx, product("1", "Robe d'été", 29.5))
	require.NoError(t, err)
	assert.Len(t, ms.Published, 2)
}

func TestSubtotal(t *testing.T) {
	ctx := context.Background()
	_, cm := newCart(t)

	_, err := cm.Add(ctx, product("1", "Robe d'été", 10.00))
	require.NoError(t, err)
	_, err = cm.Add(ctx, product("1", "Robe d'été", 10.00))
	require.NoError(t, err)
	_, err = cm.Add(ctx, product("2", "Ceinture", 5.50))
	require.NoError(t, err)

	assert.Equal(t, 25.50, cm.Subtotal(ctx))
	assert.Equal(t, 0.0, cm.Shipping(ctx))
	assert.Equal(t, 0.0, cm.Tax(ctx))
	assert.Equal(t, 25.50, cm.Total(ctx))
}

func TestSetQuantityStoredAsGiven(t *testing.T) {
	ctx := context.Background()
	_, cm := newCart(t)

	_, err := cm.Add(ctx, product("1", "Robe d'été", 29.5))
	require.NoError(t, err)

	// Aucune borne côté store : le clampage appartient à l'appelant
	items, err := cm.SetQuantity(ctx, "1", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, items[0].Quantity)

	items, err = cm.SetQuantity(ctx, "1", -3)
	require.NoError(t, err)
	assert.Equal(t, -3, items[0].Quantity)
}

func TestSetQuantityUnknownProductIsNoOp(t *testing.T) {
	ctx := context.Background()
	_, cm := newCart(t)

	_, err := cm.Add(ctx, product("1", "Robe d'été", 29.5))
	require.NoError(t, err)

	items, err := cm.SetQuantity(ctx, "99", 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	_, cm := newCart(t)

	_, err := cm.Add(ctx, product("1", "Robe d'été", 29.5))
	require.NoError(t, err)
	_, err = cm.Add(ctx, product("2", "Veste en cuir", 89.99))
	require.NoError(t, err)

	items, err := cm.Remove(ctx, "1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.ProductID("2"), items[0].ID)
}

func TestClearDeletesKey(t *testing.T) {
	ctx := context.Background()
	ms, cm := newCart(t)

	_, err := cm.Add(ctx, product("1", "Robe d'été", 29.5))
	require.NoError(t, err)

	require.NoError(t, cm.Clear(ctx))

	_, err = ms.Get(ctx, store.KeyCart)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, cm.Items(ctx))
}

func TestOwnerIsolatesCarts(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()

	guest := cart.NewManager(ms, nil, "")
	alice := cart.NewManager(ms, nil, "alice")

	_, err := guest.Add(ctx, product("1", "Robe d'été", 29.5))
	require.NoError(t, err)

	assert.Empty(t, alice.Items(ctx))
	assert.Len(t, guest.Items(ctx), 1)
}
