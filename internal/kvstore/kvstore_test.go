package kvstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"muchong-engine/internal/domain"
)

func TestMemoryRoundTrip(t *testing.T) {
	s := NewMemory(0)

	_, ok := s.Get("missing")
	assert.False(t, ok)

	require.NoError(t, s.Set("k", "v"))
	v, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	s.Delete("k")
	_, ok = s.Get("k")
	assert.False(t, ok)

	// deleting an absent key is a no-op
	s.Delete("k")
}

func TestMemoryQuotaEvictsAndRetriesOnce(t *testing.T) {
	s := NewMemory(10)
	require.NoError(t, s.Set("old", "0123456789")) // fills the budget

	// Over budget, but "old" is designated evictable: one retry succeeds.
	require.NoError(t, s.Set("new", "abcdefgh", "old"))

	_, ok := s.Get("old")
	assert.False(t, ok, "evictable key should be gone")
	v, ok := s.Get("new")
	require.True(t, ok)
	assert.Equal(t, "abcdefgh", v)
}

func TestMemoryQuotaErrorAfterFailedRetry(t *testing.T) {
	s := NewMemory(4)

	// Nothing evictable frees enough space; the error must surface.
	err := s.Set("big", "too large for the budget", "nothing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)

	_, ok := s.Get("big")
	assert.False(t, ok)
}

func TestSQLiteRoundTrip(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"), 0)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set("theme", "dark"))
	require.NoError(t, s.Set("theme", "light")) // upsert replaces

	v, ok := s.Get("theme")
	require.True(t, ok)
	assert.Equal(t, "light", v)

	s.Delete("theme")
	_, ok = s.Get("theme")
	assert.False(t, ok)
}

func TestSQLiteBudget(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"), 8)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set("a", "12345678"))

	err = s.Set("b", "12345678")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)

	// With "a" evictable the retry goes through.
	require.NoError(t, s.Set("b", "12345678", "a"))
	_, ok := s.Get("a")
	assert.False(t, ok)
}
