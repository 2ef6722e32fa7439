package storage

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"tableside/order-svc/internal/domain"

	"github.com/stretchr/testify/assert"
)

func newTestAdapter() (*Adapter, *MemoryStore, *MemoryStore) {
	durable := NewMemoryStore()
	side := NewMemoryStore()
	adapter := NewAdapter(durable, side).
		WithMirror(KeyOrders, KeyOrderHistory, UnpaidOrdersFilter)
	return adapter, durable, side
}

func TestAdapter_roundTrip(t *testing.T) {
	adapter, _, _ := newTestAdapter()
	ctx := context.Background()

	written := domain.Cart{
		{ID: "item-a", Name: "Item A", Price: 100, Quantity: 2},
		{ID: "item-b", Name: "Item B", Price: 50, Quantity: 1},
	}
	adapter.Write(ctx, Scoped(KeyCart, "dev-1"), written)

	// Fresh session: a second adapter over the same backends.
	var restored domain.Cart
	ok := adapter.Read(ctx, Scoped(KeyCart, "dev-1"), &restored)
	assert.True(t, ok)
	assert.Equal(t, written, restored)
}

func TestAdapter_missingStatusDefaultsToPending(t *testing.T) {
	adapter, durable, _ := newTestAdapter()
	ctx := context.Background()

	// Legacy record persisted without a status field.
	durable.Write(ctx, KeyOrders, []byte(`[{"id":"ORD-1","total":250,"is_paid":false}]`))

	var ledger []domain.Order
	ok := adapter.Read(ctx, KeyOrders, &ledger)
	assert.True(t, ok)
	for i := range ledger {
		ledger[i].Normalize()
	}
	assert.Equal(t, domain.StatusPending, ledger[0].Status)
}

func TestAdapter_malformedDataTreatedAsAbsent(t *testing.T) {
	adapter, durable, _ := newTestAdapter()
	ctx := context.Background()

	durable.Write(ctx, Scoped(KeyCart, "dev-1"), []byte(`{not json`))

	var c domain.Cart
	ok := adapter.Read(ctx, Scoped(KeyCart, "dev-1"), &c)
	assert.False(t, ok)
	assert.Empty(t, c)
}

func TestAdapter_readOrSeedUsesDefault(t *testing.T) {
	adapter, durable, _ := newTestAdapter()
	ctx := context.Background()

	flags := domain.PanelState{1: {CartOpen: true}}
	adapter.ReadOrSeed(ctx, Scoped(KeyCartOpen, "dev-1"), &flags)

	// Default untouched and now seeded into the durable store.
	assert.True(t, flags[1].CartOpen)
	raw, err := durable.Read(ctx, Scoped(KeyCartOpen, "dev-1"))
	assert.NoError(t, err)
	assert.Contains(t, string(raw), "cart_open")
}

func TestAdapter_mirrorKeepsUnpaidOnly(t *testing.T) {
	adapter, _, side := newTestAdapter()
	ctx := context.Background()

	ledger := []domain.Order{
		{ID: "ORD-1", Total: 250, IsPaid: true, Status: domain.StatusCompleted, Date: time.Now()},
		{ID: "ORD-2", Total: 140, IsPaid: false, Status: domain.StatusPending, Date: time.Now()},
	}
	adapter.Write(ctx, KeyOrders, ledger)

	raw, err := side.Read(ctx, KeyOrderHistory)
	assert.NoError(t, err)

	var mirrored []domain.Order
	assert.NoError(t, json.Unmarshal(raw, &mirrored))
	assert.Len(t, mirrored, 1)
	assert.Equal(t, "ORD-2", mirrored[0].ID)
}

func TestAdapter_mirrorDroppedOnceAllPaid(t *testing.T) {
	adapter, _, side := newTestAdapter()
	ctx := context.Background()

	adapter.Write(ctx, KeyOrders, []domain.Order{
		{ID: "ORD-1", IsPaid: false, Status: domain.StatusPending},
	})
	_, err := side.Read(ctx, KeyOrderHistory)
	assert.NoError(t, err)

	adapter.Write(ctx, KeyOrders, []domain.Order{
		{ID: "ORD-1", IsPaid: true, Status: domain.StatusCompleted},
	})
	_, err = side.Read(ctx, KeyOrderHistory)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdapter_readFallsBackToSideChannel(t *testing.T) {
	adapter, durable, _ := newTestAdapter()
	ctx := context.Background()

	ledger := []domain.Order{
		{ID: "ORD-2", Total: 140, IsPaid: false, Status: domain.StatusPending},
	}
	adapter.Write(ctx, KeyOrders, ledger)

	// Durable store wiped; history survives in the side channel.
	durable.Delete(ctx, KeyOrders)

	var restored []domain.Order
	ok := adapter.Read(ctx, KeyOrders, &restored)
	assert.True(t, ok)
	assert.Len(t, restored, 1)
	assert.Equal(t, "ORD-2", restored[0].ID)
}

func TestAdapter_nonMirroredKeyHasNoFallback(t *testing.T) {
	adapter, durable, side := newTestAdapter()
	ctx := context.Background()

	side.Write(ctx, Scoped(KeyCart, "dev-1"), []byte(`[]`))
	durable.Delete(ctx, Scoped(KeyCart, "dev-1"))

	var c domain.Cart
	assert.False(t, adapter.Read(ctx, Scoped(KeyCart, "dev-1"), &c))
}
