package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevokedTokens(t *testing.T) {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	store := NewRevokedTokens()
	store.now = func() time.Time { return now }

	store.Revoke("a", now.Add(time.Hour))
	store.Revoke("b", now.Add(time.Minute))
	store.Revoke("", now.Add(time.Hour))

	assert.True(t, store.IsRevoked("a"))
	assert.True(t, store.IsRevoked("b"))
	assert.False(t, store.IsRevoked("c"))
	assert.Equal(t, 2, store.Len())

	now = now.Add(2 * time.Minute)
	assert.False(t, store.IsRevoked("b"))
	assert.Equal(t, 1, store.Len())

	store.Revoke("c", now.Add(time.Hour))
	store.mu.RLock()
	_, stillThere := store.data["b"]
	store.mu.RUnlock()
	assert.False(t, stillThere, "expired entries are swept on write")
}
