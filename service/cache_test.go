package service

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func newTestCache(ttl time.Duration, now *time.Time) *ArtifactCache {
	c := NewArtifactCache(ttl)
	c.now = func() time.Time { return *now }
	return c
}

func TestCacheGetWithinTTL(t *testing.T) {
	now := time.Now()
	cache := newTestCache(5*time.Minute, &now)

	cache.Put("fp", []byte("letter"))

	got, ok := cache.Get("fp")
	if !ok {
		t.Fatal("Expected cache hit immediately after Put")
	}
	if string(got) != "letter" {
		t.Errorf("Expected letter, got %s", got)
	}

	// Still fresh at exactly the TTL boundary
	now = now.Add(5 * time.Minute)
	if _, ok := cache.Get("fp"); !ok {
		t.Error("Expected cache hit at TTL boundary")
	}
}

func TestCacheExpiry(t *testing.T) {
	now := time.Now()
	cache := newTestCache(5*time.Minute, &now)

	cache.Put("fp", []byte("letter"))

	now = now.Add(5*time.Minute + time.Second)
	if _, ok := cache.Get("fp"); ok {
		t.Error("Expected expired entry to behave as absent")
	}

	// Expired entries stay physically stored until swept
	if cache.Len() != 1 {
		t.Errorf("Expected 1 stored entry, got %d", cache.Len())
	}
}

func TestCachePutOverwritesAndRestartsTTL(t *testing.T) {
	now := time.Now()
	cache := newTestCache(5*time.Minute, &now)

	cache.Put("fp", []byte("old"))

	now = now.Add(4 * time.Minute)
	cache.Put("fp", []byte("new"))

	// Past the first entry's expiry, but within the second's
	now = now.Add(2 * time.Minute)
	got, ok := cache.Get("fp")
	if !ok {
		t.Fatal("Expected hit, Put should restart the TTL")
	}
	if string(got) != "new" {
		t.Errorf("Expected new, got %s", got)
	}
}

func TestCacheMiss(t *testing.T) {
	cache := NewArtifactCache(time.Minute)
	if _, ok := cache.Get("never-stored"); ok {
		t.Error("Expected miss for unknown fingerprint")
	}
}

func TestCacheSweep(t *testing.T) {
	now := time.Now()
	cache := newTestCache(5*time.Minute, &now)

	cache.Put("old", []byte("a"))
	now = now.Add(6 * time.Minute)
	cache.Put("fresh", []byte("b"))

	removed := cache.Sweep()
	if removed != 1 {
		t.Errorf("Expected 1 evicted entry, got %d", removed)
	}
	if cache.Len() != 1 {
		t.Errorf("Expected 1 remaining entry, got %d", cache.Len())
	}
	if _, ok := cache.Get("fresh"); !ok {
		t.Error("Expected fresh entry to survive the sweep")
	}
}

func TestCachesClearIdempotent(t *testing.T) {
	caches := NewCaches(5*time.Minute, 15*time.Minute)
	caches.Letters.Put("l", []byte("letter"))
	caches.Documents.Put("d", []byte("pdf"))

	caches.Clear()
	caches.Clear()

	if caches.Letters.Len() != 0 || caches.Documents.Len() != 0 {
		t.Error("Expected both caches empty after clear")
	}
	if _, ok := caches.Letters.Get("l"); ok {
		t.Error("Expected miss after clear")
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	caches := NewCaches(time.Minute, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("fp-%d", n%5)
			caches.Letters.Put(key, []byte("x"))
			caches.Letters.Get(key)
			if n%7 == 0 {
				caches.Clear()
			}
		}(i)
	}
	wg.Wait()
}
