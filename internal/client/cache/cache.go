package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/blogfolio/internal/client/models"
	"github.com/dmitrijs2005/blogfolio/internal/logging"
)

const (
	DefaultKey = "postsCache"
	DefaultTTL = 10 * time.Minute
)

type Cache struct {
	mu    sync.RWMutex
	entry *models.CacheEntry

	store Store
	key   string
	ttl   time.Duration
	now   func() time.Time
	log   logging.Logger
}

type Option func(*Cache)

func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

func WithKey(key string) Option {
	return func(c *Cache) { c.key = key }
}

func WithLogger(log logging.Logger) Option {
	return func(c *Cache) { c.log = log }
}

// New builds the cache and loads a previously persisted entry from store.
// An unreadable or corrupt record is logged and discarded.
func New(ctx context.Context, store Store, opts ...Option) *Cache {
	c := &Cache{
		store: store,
		key:   DefaultKey,
		ttl:   DefaultTTL,
		now:   time.Now,
		log:   logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.load(ctx)
	return c
}

func (c *Cache) load(ctx context.Context) {
	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		c.log.Warn(ctx, "cache not loaded", "key", c.key, "error", err)
		return
	}
	if raw == nil {
		return
	}

	var e models.CacheEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		c.log.Warn(ctx, "discarding corrupt cache record", "key", c.key, "error", err)
		if err := c.store.Delete(ctx, c.key); err != nil {
			c.log.Warn(ctx, "corrupt cache record not removed", "key", c.key, "error", err)
		}
		return
	}
	c.entry = &e
}

// Get returns a copy of the cached posts while the entry is fresh. An
// expired entry is purged from memory and from the store.
func (c *Cache) Get(ctx context.Context) ([]models.Post, bool) {
	c.mu.RLock()
	e := c.entry
	c.mu.RUnlock()

	if e == nil {
		return nil, false
	}
	if !e.Expired(c.now()) {
		return models.ClonePosts(e.Posts), true
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// re-check: a concurrent Set may have replaced the entry
	if c.entry == nil {
		return nil, false
	}
	if !c.entry.Expired(c.now()) {
		return models.ClonePosts(c.entry.Posts), true
	}
	c.entry = nil
	if err := c.store.Delete(ctx, c.key); err != nil {
		c.log.Warn(ctx, "expired cache record not removed", "key", c.key, "error", err)
	}
	return nil, false
}

// GetBySlug looks a post up in the fresh cached collection.
func (c *Cache) GetBySlug(ctx context.Context, slug string) (models.Post, bool) {
	posts, ok := c.Get(ctx)
	if !ok {
		return models.Post{}, false
	}
	for _, p := range posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.Post{}, false
}

// Set replaces the entry and restarts its TTL. When persisting fails the
// in-memory entry is kept and the error returned.
func (c *Cache) Set(ctx context.Context, posts []models.Post) error {
	e := models.NewCacheEntry(posts, c.now(), c.ttl)
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode cache record: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = e
	if err := c.store.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("persist cache record: %w", err)
	}
	return nil
}

// Clear drops the entry from memory and from the store.
func (c *Cache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = nil
	if err := c.store.Delete(ctx, c.key); err != nil {
		return fmt.Errorf("clear cache record: %w", err)
	}
	return nil
}
