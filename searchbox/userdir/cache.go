package userdir

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/nonibytes/searchbox/internal/logging"
)

// DefaultTTL is how long a space's user list is reused.
const DefaultTTL = 5 * time.Minute

type entry struct {
	users   []User
	expires time.Time
}

// Cache keeps user lists per space for a TTL. Concurrent misses for the
// same space share one directory call.
type Cache struct {
	dir    Directory
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger

	group singleflight.Group

	mu      sync.Mutex
	entries map[string]entry
}

// CacheOptions configure a Cache.
type CacheOptions struct {
	TTL    time.Duration
	Now    func() time.Time
	Logger *slog.Logger
}

// NewCache wraps dir.
func NewCache(dir Directory, opts CacheOptions) *Cache {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Cache{
		dir:     dir,
		ttl:     opts.TTL,
		now:     opts.Now,
		logger:  logging.Default(opts.Logger).With("component", "user-cache"),
		entries: make(map[string]entry),
	}
}

// ListUsers returns the cached user list for space, loading it on a miss.
func (c *Cache) ListUsers(ctx context.Context, space string) ([]User, error) {
	c.mu.Lock()
	e, ok := c.entries[space]
	c.mu.Unlock()
	if ok && c.now().Before(e.expires) {
		return e.users, nil
	}

	// The shared load outlives any single caller; each caller only stops
	// waiting when its own context ends.
	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(space, func() (any, error) {
		users, err := c.dir.ListUsers(loadCtx, space)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[space] = entry{users: users, expires: c.now().Add(c.ttl)}
		c.mu.Unlock()
		c.logger.Debug("loaded users", "space", space, "count", len(users))
		return users, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]User), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Invalidate drops the cached list for space.
func (c *Cache) Invalidate(space string) {
	c.mu.Lock()
	delete(c.entries, space)
	c.mu.Unlock()
}
