package cache

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseCache_SetGet(t *testing.T) {
	t.Parallel()

	c := New(16, time.Minute)
	userID := uuid.New()

	_, hit := c.Get(userID)
	assert.False(t, hit)

	c.Set(userID, []byte(`{"reviews":[]}`))

	body, hit := c.Get(userID)
	require.True(t, hit)
	assert.Equal(t, []byte(`{"reviews":[]}`), body)
}

func TestResponseCache_Invalidate(t *testing.T) {
	t.Parallel()

	c := New(16, time.Minute)
	userID := uuid.New()
	other := uuid.New()

	c.Set(userID, []byte("a"))
	c.Set(other, []byte("b"))

	c.Invalidate(userID)

	_, hit := c.Get(userID)
	assert.False(t, hit, "invalidated entry must be gone")

	body, hit := c.Get(other)
	require.True(t, hit, "other users' entries must survive")
	assert.Equal(t, []byte("b"), body)
}

func TestResponseCache_TTLExpiry(t *testing.T) {
	t.Parallel()

	c := New(16, 20*time.Millisecond)
	userID := uuid.New()

	c.Set(userID, []byte("fresh"))
	_, hit := c.Get(userID)
	require.True(t, hit)

	time.Sleep(50 * time.Millisecond)

	_, hit = c.Get(userID)
	assert.False(t, hit, "entry must expire after ttl")
}

func TestResponseCache_EvictsOldest(t *testing.T) {
	t.Parallel()

	c := New(2, time.Minute)
	a, b, d := uuid.New(), uuid.New(), uuid.New()

	c.Set(a, []byte("a"))
	c.Set(b, []byte("b"))
	c.Set(d, []byte("d"))

	_, hit := c.Get(a)
	assert.False(t, hit, "oldest entry must be evicted at capacity")
	_, hit = c.Get(d)
	assert.True(t, hit)
}
