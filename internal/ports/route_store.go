package ports

import (
	"context"
	"errors"
	"route-metrics-service/internal/domain"
)

// ErrRouteNotFound is returned by RouteStore.Get for unknown or expired ids.
var ErrRouteNotFound = errors.New("route not found")

// Contract for short-lived storage of computed routes, keyed by route id.
// Entries expire; this is a read-back cache, not durable storage.
type RouteStore interface {
	Put(ctx context.Context, route *domain.RouteMetrics) error
	Get(ctx context.Context, routeID string) (*domain.RouteMetrics, error)
}
