package store

import (
	"context"
	"fmt"
	"time"

	"storefront-backend/internal/domains/cart/model"
	"storefront-backend/pkg/kv"
	"storefront-backend/pkg/logger"
)

const linesKeyPrefix = "cart:lines:"

// Store is the single source of truth for what a shopper intends to buy.
// Lines (and only lines) are persisted per owner on every mutation;
// totals are derived on read, never stored, so they cannot drift.
//
// db is the durable blob store (Postgres); cache is an optional
// best-effort read cache (Redis) invalidated on every mutation. Cache
// failures degrade to the durable store and are logged, never surfaced.
type Store struct {
	db       kv.Store
	cache    kv.Store
	cacheTTL time.Duration
}

func New(db kv.Store, cache kv.Store, cacheTTL time.Duration) *Store {
	return &Store{db: db, cache: cache, cacheTTL: cacheTTL}
}

func linesKey(owner string) string {
	return linesKeyPrefix + owner
}

// Load restores the owner's lines. A missing record is an empty cart.
func (s *Store) Load(ctx context.Context, owner string) ([]model.CartLine, error) {
	key := linesKey(owner)
	var lines []model.CartLine

	if s.cache != nil {
		found, err := s.cache.Get(ctx, key, &lines)
		if err != nil {
			logger.Warn("cart cache read failed", map[string]interface{}{
				"owner": owner, "error": err.Error(),
			})
		} else if found {
			return lines, nil
		}
	}

	found, err := s.db.Get(ctx, key, &lines)
	if err != nil {
		return nil, fmt.Errorf("load cart for %s: %w", owner, err)
	}
	if !found {
		return []model.CartLine{}, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, lines, s.cacheTTL); err != nil {
			logger.Warn("cart cache fill failed", map[string]interface{}{
				"owner": owner, "error": err.Error(),
			})
		}
	}

	return lines, nil
}

// save persists lines and invalidates the read cache. Called on every
// mutation so a reload always observes the latest write.
func (s *Store) save(ctx context.Context, owner string, lines []model.CartLine) error {
	key := linesKey(owner)
	if err := s.db.Set(ctx, key, lines, 0); err != nil {
		return fmt.Errorf("save cart for %s: %w", owner, err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, key); err != nil {
			logger.Warn("cart cache invalidation failed", map[string]interface{}{
				"owner": owner, "error": err.Error(),
			})
		}
	}
	return nil
}

// AddItem merges a candidate line into the cart (additive quantity,
// last-write-wins price/meta). Quantity < 1 is rejected.
func (s *Store) AddItem(ctx context.Context, owner string, candidate model.CartLine) ([]model.CartLine, error) {
	if candidate.Quantity < 1 {
		return nil, model.ErrInvalidQuantity
	}

	lines, err := s.Load(ctx, owner)
	if err != nil {
		return nil, err
	}

	lines = model.MergeLine(lines, candidate)
	if err := s.save(ctx, owner, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// UpdateQuantity sets a line's quantity exactly; <= 0 removes the line.
func (s *Store) UpdateQuantity(ctx context.Context, owner, lineID string, quantity int) ([]model.CartLine, error) {
	lines, err := s.Load(ctx, owner)
	if err != nil {
		return nil, err
	}

	lines, err = model.SetQuantity(lines, lineID, quantity)
	if err != nil {
		return nil, err
	}

	if err := s.save(ctx, owner, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// RemoveLine deletes a line; removing an absent line is a no-op.
func (s *Store) RemoveLine(ctx context.Context, owner, lineID string) ([]model.CartLine, error) {
	lines, err := s.Load(ctx, owner)
	if err != nil {
		return nil, err
	}

	lines = model.RemoveLine(lines, lineID)
	if err := s.save(ctx, owner, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Clear empties the cart. The only callers are the explicit clear
// action and post-confirmation order creation.
func (s *Store) Clear(ctx context.Context, owner string) error {
	return s.save(ctx, owner, []model.CartLine{})
}
