package cache

import (
	"context"
	"errors"
	"route-metrics-service/internal/domain"
	"route-metrics-service/internal/ports"
	"strings"
	"sync"
	"time"
)

type memoryEntry struct {
	route     *domain.RouteMetrics
	expiresAt time.Time
}

// MemoryRouteStore is an in-process RouteStore used when Redis is not configured.
// Expired entries are dropped lazily on read and on write. Routes are copied
// in and out so callers never share a stored value.
type MemoryRouteStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryRouteStore creates a store; now may be nil to use time.Now.
func NewMemoryRouteStore(ttl time.Duration, now func() time.Time) *MemoryRouteStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryRouteStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     now,
	}
}

func (s *MemoryRouteStore) Put(_ context.Context, route *domain.RouteMetrics) error {
	if route == nil || strings.TrimSpace(route.RouteID) == "" {
		return errors.New("put route cache: route id must not be empty")
	}

	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
		}
	}
	s.entries[route.RouteID] = memoryEntry{route: cloneRoute(route), expiresAt: now.Add(s.ttl)}
	return nil
}

func (s *MemoryRouteStore) Get(_ context.Context, routeID string) (*domain.RouteMetrics, error) {
	s.mu.RLock()
	e, ok := s.entries[routeID]
	s.mu.RUnlock()

	if !ok || !s.now().Before(e.expiresAt) {
		return nil, ports.ErrRouteNotFound
	}
	return cloneRoute(e.route), nil
}

func cloneRoute(m *domain.RouteMetrics) *domain.RouteMetrics {
	out := *m
	out.Waypoints = append([]domain.Coordinates(nil), m.Waypoints...)
	out.Segments = append([]domain.RouteSegment(nil), m.Segments...)
	return &out
}
