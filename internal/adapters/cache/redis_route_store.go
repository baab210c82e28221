package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"route-metrics-service/internal/domain"
	"route-metrics-service/internal/platform/obs"
	"route-metrics-service/internal/ports"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const routeKeyPrefix = "route:"

// RedisRouteStore keeps computed routes in Redis as JSON with a TTL.
type RedisRouteStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRouteStore(client *redis.Client, ttl time.Duration) *RedisRouteStore {
	return &RedisRouteStore{client: client, ttl: ttl}
}

func (s *RedisRouteStore) Put(ctx context.Context, route *domain.RouteMetrics) (err error) {
	defer obs.Time(ctx, "route.cache.Put")(&err)

	if s.client == nil {
		return errors.New("route cache: redis client is nil")
	}
	if route == nil || strings.TrimSpace(route.RouteID) == "" {
		return errors.New("put route cache: route id must not be empty")
	}

	payload, err := json.Marshal(toRecord(route))
	if err != nil {
		return fmt.Errorf("put route cache: marshal %q: %w", route.RouteID, err)
	}

	if err := s.client.Set(ctx, routeKeyPrefix+route.RouteID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("put route cache: set %q: %w", route.RouteID, err)
	}
	return nil
}

func (s *RedisRouteStore) Get(ctx context.Context, routeID string) (_ *domain.RouteMetrics, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.client == nil {
		return nil, errors.New("route cache: redis client is nil")
	}

	payload, err := s.client.Get(ctx, routeKeyPrefix+routeID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrRouteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get route cache: get %q: %w", routeID, err)
	}

	var rec routeRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("get route cache: decode %q: %w", routeID, err)
	}
	return rec.toDomain(), nil
}
