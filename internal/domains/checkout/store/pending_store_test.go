package store

import (
	"context"
	"testing"
	"time"

	"storefront-backend/internal/domains/checkout/model"
	"storefront-backend/pkg/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingStore_RoundTrip(t *testing.T) {
	s := NewPendingStore(kv.NewMemoryStore(), 24*time.Hour)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &model.PendingCheckout{
		Owner:          "owner-1",
		TransactionRef: "txn-1",
		State:          model.StateRedirected,
		CreatedAt:      time.Now(),
	}))

	p, err := s.Load(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "txn-1", p.TransactionRef)
	assert.Equal(t, model.StateRedirected, p.State)
}

func TestPendingStore_MissingIsErrNoPending(t *testing.T) {
	s := NewPendingStore(kv.NewMemoryStore(), 24*time.Hour)

	_, err := s.Load(context.Background(), "owner-1")
	assert.ErrorIs(t, err, model.ErrNoPending)
}

func TestPendingStore_StaleRecordExpiresAndIsDeleted(t *testing.T) {
	db := kv.NewMemoryStore()
	s := NewPendingStore(db, time.Hour)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &model.PendingCheckout{
		Owner:     "owner-1",
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}))

	_, err := s.Load(ctx, "owner-1")
	assert.ErrorIs(t, err, model.ErrPendingExpired)
	assert.Equal(t, 0, db.Len(), "expired record is reclaimed on read")
}

func TestPendingStore_FreshInitiateSupersedes(t *testing.T) {
	s := NewPendingStore(kv.NewMemoryStore(), 24*time.Hour)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &model.PendingCheckout{
		Owner: "owner-1", TransactionRef: "txn-1", CreatedAt: time.Now(),
	}))
	require.NoError(t, s.Save(ctx, &model.PendingCheckout{
		Owner: "owner-1", TransactionRef: "txn-2", CreatedAt: time.Now(),
	}))

	p, err := s.Load(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "txn-2", p.TransactionRef)
}

func TestPendingStore_DeleteIsIdempotent(t *testing.T) {
	s := NewPendingStore(kv.NewMemoryStore(), 24*time.Hour)
	ctx := context.Background()

	assert.NoError(t, s.Delete(ctx, "owner-1"))

	require.NoError(t, s.Save(ctx, &model.PendingCheckout{Owner: "owner-1", CreatedAt: time.Now()}))
	require.NoError(t, s.Delete(ctx, "owner-1"))

	_, err := s.Load(ctx, "owner-1")
	assert.ErrorIs(t, err, model.ErrNoPending)
}
