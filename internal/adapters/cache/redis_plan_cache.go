package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"shipment-routing-service/internal/domain"
	"shipment-routing-service/internal/platform/obs"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "shipment-routing:"

type cachedStop struct {
	ItemID      int     `json:"item_id"`
	Location    int     `json:"location"`
	LegDistance float64 `json:"leg_distance"`
}

type cachedRoute struct {
	VehicleID     int          `json:"vehicle_id"`
	Start         int          `json:"start"`
	Stops         []cachedStop `json:"stops"`
	TotalDistance float64      `json:"total_distance"`
}

// RedisPlanCache is a Redis-backed cache of planned routes.
// Keys are expected to identify the planning inputs (see services.Dispatcher).
type RedisPlanCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisPlanCache(client *redis.Client, ttl time.Duration) *RedisPlanCache {
	return &RedisPlanCache{Client: client, TTL: ttl}
}

// NewRedisClient connects to the Redis server at url (redis://host:port/db).
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis client: parse url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis client: ping: %w", err)
	}
	return client, nil
}

// Fetch a cached route.
func (c *RedisPlanCache) Get(ctx context.Context, key string) (_ *domain.Route, _ bool, err error) {
	defer obs.Time(ctx, "plan.cache.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("plan cache: client is nil")
	}

	b, err := c.Client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache: %w", err)
	}

	var cr cachedRoute
	if err := json.Unmarshal(b, &cr); err != nil {
		return nil, false, fmt.Errorf("get plan cache: decode %q: %w", key, err)
	}

	route := &domain.Route{
		VehicleID:     cr.VehicleID,
		Start:         cr.Start,
		Stops:         make([]domain.RouteStop, 0, len(cr.Stops)),
		TotalDistance: cr.TotalDistance,
	}
	for _, s := range cr.Stops {
		route.Stops = append(route.Stops, domain.RouteStop{ItemID: s.ItemID, Location: s.Location, LegDistance: s.LegDistance})
	}

	return route, true, nil
}

// Store a route under key with the configured TTL (0 keeps it forever).
func (c *RedisPlanCache) Put(ctx context.Context, key string, route *domain.Route) error {
	if c.Client == nil {
		return errors.New("plan cache: client is nil")
	}
	if route == nil {
		return errors.New("put plan cache: route is nil")
	}

	cr := cachedRoute{
		VehicleID:     route.VehicleID,
		Start:         route.Start,
		Stops:         make([]cachedStop, 0, len(route.Stops)),
		TotalDistance: route.TotalDistance,
	}
	for _, s := range route.Stops {
		cr.Stops = append(cr.Stops, cachedStop{ItemID: s.ItemID, Location: s.Location, LegDistance: s.LegDistance})
	}

	b, err := json.Marshal(cr)
	if err != nil {
		return fmt.Errorf("put plan cache: encode: %w", err)
	}

	if err := c.Client.Set(ctx, keyPrefix+key, b, c.TTL).Err(); err != nil {
		return fmt.Errorf("put plan cache: %w", err)
	}
	return nil
}
