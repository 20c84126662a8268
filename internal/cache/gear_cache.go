package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/officeappout/out-run-app-sub011/internal/domain"
	"github.com/officeappout/out-run-app-sub011/internal/repository"

	"github.com/coocood/freecache"
)

const (
	gearCacheSizeBytes = 1 * 1024 * 1024 // gear catalog is tiny, 1 MB is plenty
	gearCacheKey       = "gear::all"

	// DefaultGearTTL bounds how stale gear definitions may get before the
	// next read goes back to the catalog.
	DefaultGearTTL = 1 * time.Hour
)

// GearCache is an explicitly owned, TTL'd cache of gear definitions.
// It is constructed once at service start and passed by handle into the
// components that need it; there is no ambient process-global state.
// Concurrent misses may each read the catalog once, which is benign since
// all populate with the same result.
type GearCache struct {
	repo  repository.GearRepository
	cache *freecache.Cache
	ttl   time.Duration
}

// NewGearCache creates a gear-definition cache over the given repository.
// A non-positive ttl falls back to DefaultGearTTL.
func NewGearCache(repo repository.GearRepository, ttl time.Duration) *GearCache {
	if ttl <= 0 {
		ttl = DefaultGearTTL
	}
	return &GearCache{
		repo:  repo,
		cache: freecache.NewCache(gearCacheSizeBytes),
		ttl:   ttl,
	}
}

// Definitions returns all gear definitions, serving from cache when fresh.
func (c *GearCache) Definitions(ctx context.Context) ([]domain.Gear, error) {
	if cached, err := c.cache.Get([]byte(gearCacheKey)); err == nil {
		var gear []domain.Gear
		if err = json.Unmarshal(cached, &gear); err == nil {
			return gear, nil
		}
		log.Printf("WARN: failed to unmarshal cached gear definitions: %v", err)
	}

	gear, err := c.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(gear)
	if err != nil {
		// Serve the read result anyway; only the cache write is lost.
		log.Printf("WARN: failed to marshal gear definitions for cache: %v", err)
		return gear, nil
	}
	if err = c.cache.Set([]byte(gearCacheKey), encoded, int(c.ttl.Seconds())); err != nil {
		log.Printf("WARN: failed to cache gear definitions: %v", err)
	}

	return gear, nil
}

// NameIndex returns gear display names keyed by gear id, for enriching
// plan responses. Built from Definitions, so it shares the same TTL.
func (c *GearCache) NameIndex(ctx context.Context) (map[string]domain.LocalizedText, error) {
	gear, err := c.Definitions(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]domain.LocalizedText, len(gear))
	for _, g := range gear {
		index[g.GearID] = g.Name
	}
	return index, nil
}

// Invalidate drops the cached definitions. Called by the admin catalog
// flow after gear content changes.
func (c *GearCache) Invalidate() {
	c.cache.Del([]byte(gearCacheKey))
}
