package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// KVStore is the Postgres-backed implementation of kv.Store.
// One row per key; value is a JSONB blob. TTL is not enforced here
// (durable records never expire on their own); bounded-age records are
// reclaimed by DeleteStale from the worker.
type KVStore struct {
	db *PostgresDB
}

func NewKVStore(db *PostgresDB) *KVStore {
	return &KVStore{db: db}
}

func (s *KVStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	var raw []byte
	err := s.db.Pool.QueryRow(ctx,
		`SELECT value FROM kv_records WHERE key = $1`, key,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("kv get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("kv decode %s: %w", key, err)
	}
	return true, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv encode %s: %w", key, err)
	}

	_, err = s.db.Pool.Exec(ctx, `
		INSERT INTO kv_records (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, raw)
	if err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := s.db.Pool.Exec(ctx,
		`DELETE FROM kv_records WHERE key = ANY($1)`, keys)
	if err != nil {
		return fmt.Errorf("kv delete: %w", err)
	}
	return nil
}

func (s *KVStore) Ping(ctx context.Context) error {
	return s.db.HealthCheck(ctx)
}

// DeleteStale removes records under prefix not written for olderThan.
// Used by the worker to sweep abandoned pending checkouts.
func (s *KVStore) DeleteStale(ctx context.Context, prefix string, olderThan time.Duration) (int64, error) {
	tag, err := s.db.Pool.Exec(ctx,
		`DELETE FROM kv_records WHERE key LIKE $1 || '%' AND updated_at < now() - $2::interval`,
		prefix, fmt.Sprintf("%d seconds", int64(olderThan.Seconds())))
	if err != nil {
		return 0, fmt.Errorf("kv delete stale %s: %w", prefix, err)
	}
	return tag.RowsAffected(), nil
}
