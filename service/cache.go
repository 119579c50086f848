package service

import (
	"sync"
	"time"
)

type cacheEntry struct {
	artifact  []byte
	createdAt time.Time
}

// ArtifactCache is an in-memory TTL cache mapping request fingerprints to
// produced artifacts. Expiry is passive: an entry past its TTL behaves as
// absent on Get but stays stored until Sweep or Clear removes it. The map
// grows with distinct fingerprints; correctness does not depend on a bound.
type ArtifactCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewArtifactCache creates a cache whose entries expire after ttl.
func NewArtifactCache(ttl time.Duration) *ArtifactCache {
	return &ArtifactCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the artifact for fingerprint if present and not expired.
func (c *ArtifactCache) Get(fingerprint string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[fingerprint]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.createdAt) > c.ttl {
		return nil, false
	}
	return entry.artifact, true
}

// Put stores artifact under fingerprint, unconditionally replacing any
// earlier entry and restarting its TTL.
func (c *ArtifactCache) Put(fingerprint string, artifact []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[fingerprint] = cacheEntry{
		artifact:  artifact,
		createdAt: c.now(),
	}
}

// Len returns the number of physically stored entries, expired or not.
func (c *ArtifactCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Sweep removes expired entries and returns how many were evicted.
func (c *ArtifactCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for fingerprint, entry := range c.entries {
		if c.now().Sub(entry.createdAt) > c.ttl {
			delete(c.entries, fingerprint)
			removed++
		}
	}
	return removed
}

// Caches bundles the two independent artifact caches: generated letter text
// and rendered documents. The document TTL is at least the letter TTL since
// documents are keyed partly on letter content.
type Caches struct {
	Letters   *ArtifactCache
	Documents *ArtifactCache
}

// NewCaches creates both caches with their respective TTLs.
func NewCaches(letterTTL, documentTTL time.Duration) *Caches {
	return &Caches{
		Letters:   NewArtifactCache(letterTTL),
		Documents: NewArtifactCache(documentTTL),
	}
}

// Clear empties both caches. Both write locks are held for the duration so
// the reset is atomic with respect to concurrent Get/Put; generations
// already past their cache check are unaffected.
func (c *Caches) Clear() {
	c.Letters.mu.Lock()
	c.Documents.mu.Lock()
	c.Letters.entries = make(map[string]cacheEntry)
	c.Documents.entries = make(map[string]cacheEntry)
	c.Documents.mu.Unlock()
	c.Letters.mu.Unlock()
}

// Sweep evicts expired entries from both caches.
func (c *Caches) Sweep() int {
	return c.Letters.Sweep() + c.Documents.Sweep()
}
