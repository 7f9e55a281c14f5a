package cache

import (
	"context"
	"shipment-routing-service/internal/domain"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisPlanCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisPlanCache(client, ttl), mr
}

func TestRedisPlanCachePutGet(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t, time.Hour)

	route := &domain.Route{
		VehicleID: 3,
		Start:     domain.HubLocation,
		Stops: []domain.RouteStop{
			{ItemID: 9, Location: 19, LegDistance: 3.4},
			{ItemID: 2, Location: 4, LegDistance: 1.1},
		},
		TotalDistance: 4.5,
	}

	_, hit, err := c.Get(ctx, "route:3")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Put(ctx, "route:3", route))

	got, hit, err := c.Get(ctx, "route:3")
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, route, got)
}

func TestRedisPlanCacheExpires(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t, time.Minute)

	require.NoError(t, c.Put(ctx, "k", &domain.Route{VehicleID: 1, Stops: []domain.RouteStop{}}))
	mr.FastForward(2 * time.Minute)

	_, hit, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisPlanCacheCorruptEntry(t *testing.T) {
	c, mr := newTestCache(t, 0)
	require.NoError(t, mr.Set(keyPrefix+"bad", "not json"))

	_, _, err := c.Get(context.Background(), "bad")
	assert.Error(t, err)
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	_ = client.Close()

	_, err = NewRedisClient(context.Background(), "://nope")
	assert.Error(t, err)
}
