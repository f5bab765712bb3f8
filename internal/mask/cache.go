package mask

import (
	"io"
	"log/slog"
	"math"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache maps formats to compiled masks so a format is compiled once, not
// on every keystroke. Lookups share a read lock; concurrent misses for the
// same key are collapsed into a single compilation. Failed compilations
// are not cached.
type Cache struct {
	mu     sync.RWMutex
	masks  map[string]*Mask
	group  singleflight.Group
	logger *slog.Logger
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithLogger sets the logger used to report compilations.
func WithLogger(logger *slog.Logger) CacheOption {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCache creates an empty cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		masks:  make(map[string]*Mask),
		logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	shared     *Cache
	sharedOnce sync.Once
)

// Shared returns a process-wide cache for callers that do not manage their own.
func Shared() *Cache {
	sharedOnce.Do(func() {
		shared = NewCache()
	})
	return shared
}

// GetOrCreate returns the mask for format and notations, compiling it on first use.
func (c *Cache) GetOrCreate(format string, notations ...Notation) (*Mask, error) {
	key := cacheKey(format, notations)

	c.mu.RLock()
	m, ok := c.masks[key]
	c.mu.RUnlock()
	if ok {
		return m, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		c.mu.RLock()
		m, ok := c.masks[key]
		c.mu.RUnlock()
		if ok {
			return m, nil
		}

		m, err := New(format, notations...)
		if err != nil {
			c.logger.Debug("mask compilation failed", "format", format, "error", err)
			return nil, err
		}

		c.mu.Lock()
		c.masks[key] = m
		c.mu.Unlock()

		c.logger.Debug("mask compiled", "format", format, "sanitized", m.Sanitized(), "states", len(m.States()))
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Mask), nil
}

// Len returns the number of cached masks.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.masks)
}

// Purge drops every cached mask.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.masks = make(map[string]*Mask)
}

func cacheKey(format string, notations []Notation) string {
	if len(notations) == 0 {
		return format
	}
	return format + "\x00" + notationKey(notations)
}
