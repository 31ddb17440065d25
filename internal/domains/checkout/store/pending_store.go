package store

import (
	"context"
	"fmt"
	"time"

	"storefront-backend/internal/domains/checkout/model"
	"storefront-backend/pkg/kv"
)

// PendingKeyPrefix scopes pending-checkout records in the kv store.
// The worker's sweep job deletes stale records under this prefix.
const PendingKeyPrefix = "checkout:pending:"

// PendingStore persists the one-shot PendingCheckout snapshot per owner.
// Records live in a shorter-lived scope than cart lines: anything older
// than maxAge is treated as abandoned and ignored on read.
type PendingStore struct {
	db     kv.Store
	maxAge time.Duration
}

func NewPendingStore(db kv.Store, maxAge time.Duration) *PendingStore {
	return &PendingStore{db: db, maxAge: maxAge}
}

func pendingKey(owner string) string {
	return PendingKeyPrefix + owner
}

// Save writes the snapshot, replacing any previous pending checkout for
// the owner. A fresh initiate always supersedes an older one.
func (s *PendingStore) Save(ctx context.Context, p *model.PendingCheckout) error {
	if err := s.db.Set(ctx, pendingKey(p.Owner), p, 0); err != nil {
		return fmt.Errorf("save pending checkout for %s: %w", p.Owner, err)
	}
	return nil
}

// Load returns the owner's pending checkout. Missing records yield
// ErrNoPending; stale ones yield ErrPendingExpired and are deleted.
func (s *PendingStore) Load(ctx context.Context, owner string) (*model.PendingCheckout, error) {
	var p model.PendingCheckout
	found, err := s.db.Get(ctx, pendingKey(owner), &p)
	if err != nil {
		return nil, fmt.Errorf("load pending checkout for %s: %w", owner, err)
	}
	if !found {
		return nil, model.ErrNoPending
	}

	if p.Expired(s.maxAge) {
		_ = s.db.Delete(ctx, pendingKey(owner))
		return nil, model.ErrPendingExpired
	}

	return &p, nil
}

// Delete discards the owner's pending checkout. Missing is a no-op.
func (s *PendingStore) Delete(ctx context.Context, owner string) error {
	if err := s.db.Delete(ctx, pendingKey(owner)); err != nil {
		return fmt.Errorf("delete pending checkout for %s: %w", owner, err)
	}
	return nil
}
