package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/localnerve/planning-portal/internal/store"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLocker(t *testing.T) (*store.RedisLocker, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	locker := store.NewRedisLocker(client, time.Second, nil)
	locker.Retry = 5 * time.Millisecond
	return locker, mr
}

func eachLocker(t *testing.T, fn func(t *testing.T, l store.Locker)) {
	t.Run("local", func(t *testing.T) { fn(t, store.NewLocalLocker()) })
	t.Run("redis", func(t *testing.T) {
		l, _ := newRedisLocker(t)
		fn(t, l)
	})
}

func TestLockerMutualExclusion(t *testing.T) {
	eachLocker(t, func(t *testing.T, l store.Locker) {
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			holders int
			maxSeen int
		)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock, err := l.Lock(context.Background(), "job:j1")
				if !assert.NoError(t, err) {
					return
				}
				mu.Lock()
				holders++
				if holders > maxSeen {
					maxSeen = holders
				}
				mu.Unlock()

				time.Sleep(2 * time.Millisecond)

				mu.Lock()
				holders--
				mu.Unlock()
				unlock()
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, maxSeen)
	})
}

func TestLockerHonoursContext(t *testing.T) {
	eachLocker(t, func(t *testing.T, l store.Locker) {
		unlock, err := l.Lock(context.Background(), "tickets:work-tickets")
		require.NoError(t, err)
		defer unlock()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err = l.Lock(ctx, "tickets:work-tickets")
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		other, err := l.Lock(context.Background(), "tickets:consultant-tickets")
		require.NoError(t, err, "different keys do not contend")
		other()
	})
}

func TestRedisLockerReleaseOnlyOwnToken(t *testing.T) {
	l, mr := newRedisLocker(t)
	unlock, err := l.Lock(context.Background(), "metadata")
	require.NoError(t, err)

	// Simulate lease expiry and takeover by another holder.
	mr.FastForward(2 * time.Second)
	require.NoError(t, mr.Set(l.Prefix+"metadata", "someone-else"))

	unlock()
	got, err := mr.Get(l.Prefix + "metadata")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}
