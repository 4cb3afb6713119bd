// Package cache provides the per-user cache for due-review responses.
//
// The review list is read far more often than it changes (a user polls it
// while studying), so GET /api/reviews serves the encoded response from an
// in-process LRU with a TTL, and a successful review update evicts the
// user's entry so the next fetch reflects the new state.
package cache

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ResponseCache stores one encoded /api/reviews response body per user.
type ResponseCache struct {
	lru *expirable.LRU[uuid.UUID, []byte]
}

// New creates a ResponseCache holding up to size entries, each expiring
// after ttl.
func New(size int, ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		lru: expirable.NewLRU[uuid.UUID, []byte](size, nil, ttl),
	}
}

// Get returns the cached response body for the user, if present and fresh.
func (c *ResponseCache) Get(userID uuid.UUID) ([]byte, bool) {
	return c.lru.Get(userID)
}

// Set stores the response body for the user.
func (c *ResponseCache) Set(userID uuid.UUID, body []byte) {
	c.lru.Add(userID, body)
}

// Invalidate drops the user's cached response. Called after every
// successful review update.
func (c *ResponseCache) Invalidate(userID uuid.UUID) {
	c.lru.Remove(userID)
}
