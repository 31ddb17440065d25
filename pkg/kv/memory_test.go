package kv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, s.Set(ctx, "k1", record{Name: "a", Count: 3}, 0))

	var got record
	found, err := s.Get(ctx, "k1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, record{Name: "a", Count: 3}, got)
}

func TestMemoryStore_MissingKey(t *testing.T) {
	s := NewMemoryStore()

	var dest string
	found, err := s.Get(context.Background(), "absent", &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, dest)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "short", "v", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	var dest string
	found, err := s.Get(ctx, "short", &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_ZeroTTLNeverExpires(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "forever", "v", 0))
	time.Sleep(5 * time.Millisecond)

	var dest string
	found, err := s.Get(ctx, "forever", &dest)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", 1, 0))
	require.NoError(t, s.Set(ctx, "b", 2, 0))

	require.NoError(t, s.Delete(ctx, "a", "never-existed"))

	var dest int
	found, err := s.Get(ctx, "a", &dest)
	require.NoError(t, err)
	assert.False(t, found)

	found, err = s.Get(ctx, "b", &dest)
	require.NoError(t, err)
	assert.True(t, found)
}
