package ratelimit

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T) (*RedisRateLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisRateLimiter(client, "loyalty"), mr
}

func TestAllow_WithinLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	limit := Rate{Requests: 5, Window: time.Minute}

	allowed, info := limiter.Allow("ip:10.0.0.1", limit)
	assert.True(t, allowed)
	assert.Equal(t, 5, info.Limit)
	assert.Equal(t, 5, info.Remaining)
}

func TestAllow_ExhaustsLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	limit := Rate{Requests: 3, Window: time.Minute}

	denied := false
	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("ip:10.0.0.2", limit)
		if !allowed {
			denied = true
			break
		}
	}
	assert.True(t, denied)
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	limit := Rate{Requests: 1, Window: time.Minute}

	for i := 0; i < 5; i++ {
		limiter.Allow("ip:10.0.0.3", limit)
	}

	allowed, _ := limiter.Allow("ip:10.0.0.4", limit)
	assert.True(t, allowed)
}

func TestAllow_WindowSlides(t *testing.T) {
	limiter, mr := newTestLimiter(t)
	limit := Rate{Requests: 2, Window: time.Minute}

	for i := 0; i < 5; i++ {
		limiter.Allow("ip:10.0.0.5", limit)
	}
	allowed, _ := limiter.Allow("ip:10.0.0.5", limit)
	require.False(t, allowed)

	// Old entries fall out of the window once time passes.
	mr.FastForward(2 * time.Minute)

	allowed, _ = limiter.Allow("ip:10.0.0.5", limit)
	assert.True(t, allowed)
}

func TestReset(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	limit := Rate{Requests: 1, Window: time.Minute}

	for i := 0; i < 5; i++ {
		limiter.Allow("ip:10.0.0.6", limit)
	}
	allowed, _ := limiter.Allow("ip:10.0.0.6", limit)
	require.False(t, allowed)

	require.NoError(t, limiter.Reset("ip:10.0.0.6"))

	allowed, _ = limiter.Allow("ip:10.0.0.6", limit)
	assert.True(t, allowed)
}
