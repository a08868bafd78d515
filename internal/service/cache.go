package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/joblydev/jobly-api/internal/core"
)

// searchCache is a read-through cache for search results, namespaced by an
// entity version counter. Writes bump the counter instead of enumerating
// keys, so stale entries simply age out under their TTL.
//
// A nil CacheRepository disables caching; all methods degrade to no-ops, and
// cache errors never fail the request.
type searchCache struct {
	cache  core.CacheRepository
	ttl    time.Duration
	entity string
	logger *slog.Logger
}

func newSearchCache(cache core.CacheRepository, ttl time.Duration, entity string, logger *slog.Logger) *searchCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &searchCache{cache: cache, ttl: ttl, entity: entity, logger: logger}
}

func (c *searchCache) versionKey() string {
	return "cache:" + c.entity + ":version"
}

func (c *searchCache) key(ctx context.Context, suffix string) string {
	version := int64(0)
	if raw, err := c.cache.Get(ctx, c.versionKey()); err == nil && raw != nil {
		if v, parseErr := strconv.ParseInt(string(raw), 10, 64); parseErr == nil {
			version = v
		}
	}
	return fmt.Sprintf("cache:%s:v%d:%s", c.entity, version, suffix)
}

// lookup fills dest from the cache. Returns false on miss, disabled cache,
// or any cache failure.
func (c *searchCache) lookup(ctx context.Context, suffix string, dest any) bool {
	if c.cache == nil {
		return false
	}
	raw, err := c.cache.Get(ctx, c.key(ctx, suffix))
	if err != nil {
		c.logger.DebugContext(ctx, "cache lookup failed", "entity", c.entity, "err", err)
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.DebugContext(ctx, "cache entry unreadable", "entity", c.entity, "err", err)
		return false
	}
	return true
}

// store writes a search result best-effort.
func (c *searchCache) store(ctx context.Context, suffix string, value any) {
	if c.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, c.key(ctx, suffix), raw, c.ttl); err != nil {
		c.logger.DebugContext(ctx, "cache store failed", "entity", c.entity, "err", err)
	}
}

// bump invalidates the namespace after a write.
func (c *searchCache) bump(ctx context.Context) {
	if c.cache == nil {
		return
	}
	if _, err := c.cache.Incr(ctx, c.versionKey()); err != nil {
		c.logger.DebugContext(ctx, "cache version bump failed", "entity", c.entity, "err", err)
	}
}
