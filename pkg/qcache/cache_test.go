package qcache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/clubsphere/backend/pkg/qcache"
	"github.com/stretchr/testify/require"
)

func TestKeyString(t *testing.T) {
	require.Equal(t, "clubs", qcache.NewKey("clubs").String())
	require.Equal(t, "clubEvents/abc", qcache.NewKey("clubEvents", "abc").String())
	require.Equal(t, "x/a/b", qcache.NewKey("x", "a", "b").String())
}

func TestFetchOncePerKey(t *testing.T) {
	ctx := context.Background()
	cache := qcache.NewMemoryCache()
	key := qcache.NewKey("clubEvents", "club1")

	var calls int32
	release := make(chan struct{})
	started := make(chan struct{}, 16)

	fetch := func(ctx context.Context) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		started <- struct{}{}
		<-release
		return []string{"event1"}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := qcache.Fetch(ctx, cache, key, fetch)
			require.NoError(t, err)
			require.Equal(t, []string{"event1"}, got)
		}()
	}

	// Wait until at least one fetch is in flight, then let it finish.
	<-started
	close(release)
	wg.Wait()

	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestInvalidateForcesRefetch(t *testing.T) {
	ctx := context.Background()
	cache := qcache.NewMemoryCache()
	key := qcache.NewKey("club", "club1")

	calls := 0
	fetch := func(ctx context.Context) (string, error) {
		calls++
		return "v", nil
	}

	_, err := qcache.Fetch(ctx, cache, key, fetch)
	require.NoError(t, err)
	_, err = qcache.Fetch(ctx, cache, key, fetch)
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	cache.Invalidate(ctx, key)
	_, err = qcache.Fetch(ctx, cache, key, fetch)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestInvalidateTag(t *testing.T) {
	ctx := context.Background()
	cache := qcache.NewMemoryCache()

	calls := map[string]int{}
	fetch := func(name string) qcache.FetchFunc {
		return func(ctx context.Context) (any, error) {
			calls[name]++
			return name, nil
		}
	}

	_, err := cache.GetOrFetch(ctx, qcache.NewKey("clubEvents", "c1"), fetch("a"))
	require.NoError(t, err)
	_, err = cache.GetOrFetch(ctx, qcache.NewKey("clubEvents", "c2"), fetch("b"))
	require.NoError(t, err)
	_, err = cache.GetOrFetch(ctx, qcache.NewKey("clubEventsArchive", "c1"), fetch("c"))
	require.NoError(t, err)

	cache.InvalidateTag(ctx, "clubEvents")

	_, err = cache.GetOrFetch(ctx, qcache.NewKey("clubEvents", "c1"), fetch("a"))
	require.NoError(t, err)
	_, err = cache.GetOrFetch(ctx, qcache.NewKey("clubEvents", "c2"), fetch("b"))
	require.NoError(t, err)
	_, err = cache.GetOrFetch(ctx, qcache.NewKey("clubEventsArchive", "c1"), fetch("c"))
	require.NoError(t, err)

	require.Equal(t, 2, calls["a"])
	require.Equal(t, 2, calls["b"])

	// An unrelated tag sharing a prefix must survive.
	require.Equal(t, 1, calls["c"])
}

func TestFailedFetchIsNotCached(t *testing.T) {
	ctx := context.Background()
	cache := qcache.NewMemoryCache()
	key := qcache.NewKey("clubs")

	calls := 0
	_, err := qcache.Fetch(ctx, cache, key, func(ctx context.Context) (string, error) {
		calls++
		return "", errors.New("gateway unavailable")
	})
	require.Error(t, err)

	got, err := qcache.Fetch(ctx, cache, key, func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	require.Equal(t, "ok", got)
	require.Equal(t, 2, calls)
}

func TestInvalidateDuringFetch(t *testing.T) {
	ctx := context.Background()
	cache := qcache.NewMemoryCache()
	key := qcache.NewKey("club", "club1")

	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan string)

	go func() {
		got, err := qcache.Fetch(ctx, cache, key, func(ctx context.Context) (string, error) {
			atomic.AddInt32(&calls, 1)
			close(started)
			<-release
			return "stale", nil
		})
		require.NoError(t, err)
		done <- got
	}()

	// Invalidate while the fetch is still holding its old read.
	<-started
	cache.Invalidate(ctx, key)
	close(release)

	// The reader that started before the invalidation still gets the
	// value it fetched.
	require.Equal(t, "stale", <-done)

	// But the value must not have been cached; the next read refetches.
	got, err := qcache.Fetch(ctx, cache, key, func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "fresh", nil
	})
	require.NoError(t, err)
	require.Equal(t, "fresh", got)
	require.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestInvalidateTagDuringFetch(t *testing.T) {
	ctx := context.Background()
	cache := qcache.NewMemoryCache()
	key := qcache.NewKey("clubEvents", "club1")

	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		_, err := qcache.Fetch(ctx, cache, key, func(ctx context.Context) (string, error) {
			atomic.AddInt32(&calls, 1)
			close(started)
			<-release
			return "stale", nil
		})
		require.NoError(t, err)
		close(done)
	}()

	<-started
	cache.InvalidateTag(ctx, "clubEvents")
	close(release)
	<-done

	got, err := qcache.Fetch(ctx, cache, key, func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "fresh", nil
	})
	require.NoError(t, err)
	require.Equal(t, "fresh", got)
	require.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
