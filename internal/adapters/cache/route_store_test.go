package cache

import (
	"context"
	"route-metrics-service/internal/domain"
	"route-metrics-service/internal/ports"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRoute(id string) *domain.RouteMetrics {
	a := domain.Coordinates{Lon: 75.9064, Lat: 10.9847}
	b := domain.Coordinates{Lon: 75.908, Lat: 10.986}
	return &domain.RouteMetrics{
		RouteID:           id,
		VehicleClass:      domain.VehicleAmbulance,
		Waypoints:         []domain.Coordinates{a, b},
		TotalDistance:     226.7,
		TotalDuration:     27.2,
		FuelEfficiency:    0.02,
		SafetyScore:       95,
		EmergencyPriority: true,
		OptimizationFactors: domain.OptimizationFactors{
			TrafficAvoidance:     0.8,
			DistanceOptimization: 0.97,
			TimeOptimization:     0.98,
			SafetyOptimization:   1,
		},
		Segments: []domain.RouteSegment{{
			From:            a,
			To:              b,
			Distance:        226.7,
			Duration:        27.2,
			RoadType:        domain.RoadLocal,
			TrafficLevel:    0.2,
			SafetyScore:     100,
			EmergencyAccess: true,
		}},
	}
}

func TestRedisRouteStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisRouteStore(client, time.Minute)
	ctx := context.Background()

	route := sampleRoute("r-1")
	require.NoError(t, store.Put(ctx, route))

	got, err := store.Get(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, route, got)

	ttl := mr.TTL(routeKeyPrefix + "r-1")
	assert.Equal(t, time.Minute, ttl)

	mr.FastForward(2 * time.Minute)
	_, err = store.Get(ctx, "r-1")
	require.ErrorIs(t, err, ports.ErrRouteNotFound)

	require.Error(t, store.Put(ctx, sampleRoute("")))
}

func TestRedisRouteStoreCorruptEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, mr.Set(routeKeyPrefix+"bad", "not json"))

	_, err := NewRedisRouteStore(client, time.Minute).Get(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrRouteNotFound)
}

func TestMemoryRouteStore(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	store := NewMemoryRouteStore(time.Minute, func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, sampleRoute("r-1")))

	got, err := store.Get(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "r-1", got.RouteID)

	_, err = store.Get(ctx, "r-2")
	require.ErrorIs(t, err, ports.ErrRouteNotFound)

	now = now.Add(time.Minute)
	_, err = store.Get(ctx, "r-1")
	require.ErrorIs(t, err, ports.ErrRouteNotFound)

	require.NoError(t, store.Put(ctx, sampleRoute("r-2")))
	assert.Len(t, store.entries, 1)

	require.Error(t, store.Put(ctx, nil))
}

func TestMemoryRouteStoreCopiesRoutes(t *testing.T) {
	store := NewMemoryRouteStore(time.Hour, nil)
	ctx := context.Background()

	route := sampleRoute("r-1")
	require.NoError(t, store.Put(ctx, route))

	route.SafetyScore = 0
	route.Waypoints[0].Lon = 0
	route.Segments[0].RoadType = domain.RoadPrimary

	got, err := store.Get(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, sampleRoute("r-1"), got)

	got.Waypoints[1].Lat = 0
	got.Segments[0].SafetyScore = 0

	again, err := store.Get(ctx, "r-1")
	require.NoError(t, err)
	assert.NotSame(t, got, again)
	assert.Equal(t, sampleRoute("r-1"), again)
}
