package store

import (
	"context"
	"testing"
	"time"

	"storefront-backend/internal/domains/cart/model"
	"storefront-backend/pkg/kv"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() (*Store, *kv.MemoryStore) {
	db := kv.NewMemoryStore()
	return New(db, nil, 0), db
}

func addRequest(productID, sellerID string, qty int, price string) model.CartLine {
	return model.AddItemRequest{
		ProductID: productID,
		SellerID:  sellerID,
		Name:      productID,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(price),
	}.ToLine()
}

func TestLoad_MissingRecordIsEmptyCart(t *testing.T) {
	s, _ := newTestStore()

	lines, err := s.Load(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestAddItem_PersistsAndRestores(t *testing.T) {
	s, db := newTestStore()
	ctx := context.Background()

	_, err := s.AddItem(ctx, "owner-1", addRequest("p1", "s1", 2, "100"))
	require.NoError(t, err)

	// Re-create the store over the same backing kv to prove the state
	// round-trips through serialization.
	restored := New(db, nil, 0)
	lines, err := restored.Load(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.True(t, model.TotalPrice(lines).Equal(decimal.RequireFromString("200")),
		"totals are rederived from restored lines")
}

func TestAddItem_MergesSameIdentity(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	_, err := s.AddItem(ctx, "owner-1", addRequest("p1", "s1", 2, "100"))
	require.NoError(t, err)
	lines, err := s.AddItem(ctx, "owner-1", addRequest("p1", "s1", 3, "100"))
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAddItem_RejectsNonPositiveQuantity(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	_, err := s.AddItem(ctx, "owner-1", addRequest("p1", "s1", 0, "100"))
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)

	_, err = s.AddItem(ctx, "owner-1", addRequest("p1", "s1", -2, "100"))
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)

	lines, err := s.Load(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, lines, "rejected adds must not mutate the cart")
}

func TestUpdateQuantity_ZeroBehavesAsRemove(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	added, err := s.AddItem(ctx, "owner-1", addRequest("p1", "s1", 4, "100"))
	require.NoError(t, err)

	lines, err := s.UpdateQuantity(ctx, "owner-1", added[0].LineID, 0)
	require.NoError(t, err)
	assert.Empty(t, lines)

	lines, err = s.Load(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, lines, "removal must be persisted")
}

func TestRemoveLine_AbsentIsNoOp(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	_, err := s.AddItem(ctx, "owner-1", addRequest("p1", "s1", 1, "100"))
	require.NoError(t, err)

	lines, err := s.RemoveLine(ctx, "owner-1", "no-such-line")
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestClear_EmptiesPersistedCart(t *testing.T) {
	s, db := newTestStore()
	ctx := context.Background()

	_, err := s.AddItem(ctx, "owner-1", addRequest("p1", "s1", 1, "100"))
	require.NoError(t, err)
	require.NoError(t, s.Clear(ctx, "owner-1"))

	lines, err := New(db, nil, 0).Load(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestOwnersAreIsolated(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	_, err := s.AddItem(ctx, "owner-1", addRequest("p1", "s1", 1, "100"))
	require.NoError(t, err)

	lines, err := s.Load(ctx, "owner-2")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCache_InvalidatedOnMutation(t *testing.T) {
	db := kv.NewMemoryStore()
	cacheStore := kv.NewMemoryStore()
	s := New(db, cacheStore, time.Minute)
	ctx := context.Background()

	_, err := s.AddItem(ctx, "owner-1", addRequest("p1", "s1", 2, "100"))
	require.NoError(t, err)

	// First load fills the cache.
	_, err = s.Load(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 1, cacheStore.Len())

	// A mutation must invalidate it so the next read sees the write.
	added, err := s.AddItem(ctx, "owner-1", addRequest("p2", "s1", 1, "50"))
	require.NoError(t, err)
	assert.Equal(t, 0, cacheStore.Len())

	lines, err := s.Load(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, lines, len(added))
}
