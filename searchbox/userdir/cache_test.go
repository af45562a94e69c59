package userdir

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheReusesWithinTTL(t *testing.T) {
	var calls atomic.Int32
	dir := DirectoryFunc(func(_ context.Context, space string) ([]User, error) {
		calls.Add(1)
		return []User{{ID: "u1", Name: space}}, nil
	})

	now := time.Unix(1700000000, 0)
	c := NewCache(dir, CacheOptions{TTL: time.Minute, Now: func() time.Time { return now }})
	ctx := context.Background()

	users, err := c.ListUsers(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []User{{ID: "u1", Name: "a"}}, users)

	_, err = c.ListUsers(ctx, "a")
	require.NoError(t, err)
	assert.EqualValues(t, 1, calls.Load())

	_, err = c.ListUsers(ctx, "b")
	require.NoError(t, err)
	assert.EqualValues(t, 2, calls.Load())

	now = now.Add(2 * time.Minute)
	_, err = c.ListUsers(ctx, "a")
	require.NoError(t, err)
	assert.EqualValues(t, 3, calls.Load())

	c.Invalidate("a")
	_, err = c.ListUsers(ctx, "a")
	require.NoError(t, err)
	assert.EqualValues(t, 4, calls.Load())
}

func TestCacheDoesNotKeepErrors(t *testing.T) {
	fail := true
	dir := DirectoryFunc(func(context.Context, string) ([]User, error) {
		if fail {
			return nil, errors.New("down")
		}
		return []User{{ID: "u1"}}, nil
	})
	c := NewCache(dir, CacheOptions{})

	_, err := c.ListUsers(context.Background(), "s")
	require.Error(t, err)

	fail = false
	users, err := c.ListUsers(context.Background(), "s")
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestCacheSharesConcurrentLoads(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	dir := DirectoryFunc(func(context.Context, string) ([]User, error) {
		calls.Add(1)
		<-release
		return []User{{ID: "u1"}}, nil
	})
	c := NewCache(dir, CacheOptions{})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			users, err := c.ListUsers(context.Background(), "s")
			assert.NoError(t, err)
			assert.Len(t, users, 1)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
}

func TestCacheCancelledCallerDoesNotFailOthers(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	dir := DirectoryFunc(func(ctx context.Context, _ string) ([]User, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []User{{ID: "u1"}}, nil
	})
	c := NewCache(dir, CacheOptions{})

	stale, cancel := context.WithCancel(context.Background())
	staleErr := make(chan error, 1)
	go func() {
		_, err := c.ListUsers(stale, "s")
		staleErr <- err
	}()
	<-started

	type result struct {
		users []User
		err   error
	}
	live := make(chan result, 1)
	go func() {
		users, err := c.ListUsers(context.Background(), "s")
		live <- result{users, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-staleErr, context.Canceled)

	close(release)
	got := <-live
	require.NoError(t, got.err)
	assert.Equal(t, []User{{ID: "u1"}}, got.users)
	assert.EqualValues(t, 1, calls.Load())

	users, err := c.ListUsers(context.Background(), "s")
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.EqualValues(t, 1, calls.Load(), "the shared load still fills the cache")
}

func TestStatic(t *testing.T) {
	s := Static{"a": {{ID: "1", Name: "A"}}}
	users, err := s.ListUsers(context.Background(), "a")
	require.NoError(t, err)
	assert.Len(t, users, 1)

	users, err = s.ListUsers(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, users)
}
