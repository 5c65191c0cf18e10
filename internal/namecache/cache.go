// Package namecache maps user identifiers to their current display names with
// minimal redundant lookups. Activities store a denormalized snapshot of the
// owner's name; this cache keeps rendered names fresh without a fan-out update
// on every profile edit.
package namecache

import (
	"context"
	"sync"
	"time"

	"student-hub-backend/internal/logger"
)

// DefaultTTL bounds how stale a resolved name can be after a user renames
// themselves without requiring active invalidation.
const DefaultTTL = 5 * time.Minute

// Lookup fetches current display names for a batch of user identifiers.
// Identifiers with no profile must be absent from the result, not an error.
type Lookup interface {
	GetDisplayNames(ctx context.Context, ids []string) (map[string]string, error)
}

type entry struct {
	name      string
	expiresAt time.Time
}

// Cache is a TTL-bounded display-name cache. It is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	lookup  Lookup
	ttl     time.Duration
	now     func() time.Time
	log     *logger.Logger
}

// Option configures a Cache
type Option func(*Cache)

// WithTTL overrides the default entry lifetime
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock overrides the time source, for tests
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New creates a display-name cache backed by the given lookup
func New(lookup Lookup, opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		lookup:  lookup,
		ttl:     DefaultTTL,
		now:     time.Now,
		log:     logger.New().WithField("component", "namecache"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FallbackName returns the deterministic label used when an identifier cannot
// be resolved. Rendering must never block on name resolution, so callers get
// this instead of an error.
func FallbackName(userID string) string {
	suffix := userID
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	return "User " + suffix
}

// ResolveOne returns the current display name for a user identifier. Cached
// unexpired entries are returned without a lookup. On lookup failure or an
// absent profile the deterministic fallback is returned, never an error.
func (c *Cache) ResolveOne(ctx context.Context, userID string) string {
	if name, ok := c.get(userID); ok {
		return name
	}

	names, err := c.lookup.GetDisplayNames(ctx, []string{userID})
	if err != nil {
		c.log.WithField("user_id", userID).Warnf("display name lookup failed: %v", err)
		return FallbackName(userID)
	}

	name, ok := names[userID]
	if !ok || name == "" {
		return FallbackName(userID)
	}

	c.put(userID, name)
	return name
}

// ResolveMany resolves a batch of identifiers with a single lookup for the
// uncached subset. Every requested identifier has an entry in the result;
// unresolvable ones carry the deterministic fallback. Fallbacks are not
// cached so a later successful lookup can supersede them.
func (c *Cache) ResolveMany(ctx context.Context, userIDs []string) map[string]string {
	resolved := make(map[string]string, len(userIDs))

	var uncached []string
	for _, id := range userIDs {
		if _, seen := resolved[id]; seen {
			continue
		}
		if name, ok := c.get(id); ok {
			resolved[id] = name
		} else {
			resolved[id] = "" // placeholder, deduplicates the fetch list
			uncached = append(uncached, id)
		}
	}

	if len(uncached) > 0 {
		names, err := c.lookup.GetDisplayNames(ctx, uncached)
		if err != nil {
			c.log.Warnf("batch display name lookup failed: %v", err)
			names = nil
		}
		for _, id := range uncached {
			if name, ok := names[id]; ok && name != "" {
				c.put(id, name)
				resolved[id] = name
			} else {
				resolved[id] = FallbackName(id)
			}
		}
	}

	return resolved
}

// Invalidate removes a single entry, for use immediately after a user updates
// their display name.
func (c *Cache) Invalidate(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
}

// Clear removes all entries
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

func (c *Cache) get(userID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[userID]
	if !ok || c.now().After(e.expiresAt) {
		return "", false
	}
	return e.name, true
}

func (c *Cache) put(userID, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID] = entry{name: name, expiresAt: c.now().Add(c.ttl)}
}
