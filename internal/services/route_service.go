package services

import (
	"context"
	"errors"
	"fmt"
	"route-metrics-service/internal/domain"
	"route-metrics-service/internal/platform/obs"
	"route-metrics-service/internal/ports"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrConstraintViolated marks a computed route that exceeds caller limits.
var ErrConstraintViolated = errors.New("route violates constraints")

// Caller limits checked after the route is computed. Zero means unset.
type RouteConstraints struct {
	MaxDistance float64
	MaxDuration float64
}

type OptimizeRouteRequest struct {
	// Optional; a new id is generated when empty.
	RouteID     string
	Waypoints   []domain.Coordinates
	VehicleType string
	Constraints RouteConstraints
	Traffic     *domain.TrafficContext
}

type RouteServiceOptions struct {
	// Optional operating region; nil disables the check.
	Bounds *domain.Bounds
	// Maximum concurrent computations in OptimizeBatch.
	BatchConcurrency int
	// Clock for event timestamps; defaults to time.Now.
	Now func() time.Time
}

// RouteService is the caller layer around RouteMetricsEngine: it applies
// caller-side policy (bounds, constraints), assigns ids, caches results
// and announces them.
type RouteService struct {
	engine    *RouteMetricsEngine
	store     ports.RouteStore
	publisher ports.RouteEventPublisher
	logger    *zap.Logger

	bounds *domain.Bounds
	limit  int
	now    func() time.Time

	locks *routeLocks
}

func NewRouteService(
	engine *RouteMetricsEngine,
	store ports.RouteStore,
	publisher ports.RouteEventPublisher,
	logger *zap.Logger,
	opts RouteServiceOptions,
) *RouteService {
	limit := opts.BatchConcurrency
	if limit <= 0 {
		limit = 5
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &RouteService{
		engine:    engine,
		store:     store,
		publisher: publisher,
		logger:    logger,
		bounds:    opts.Bounds,
		limit:     limit,
		now:       now,
		locks:     newRouteLocks(),
	}
}

// Optimize computes metrics for one request.
//
// Requests carrying the same caller-supplied route id run one at a time;
// each one computes and returns the metrics for its own input.
func (s *RouteService) Optimize(ctx context.Context, req OptimizeRouteRequest) (_ *domain.RouteMetrics, err error) {
	defer obs.Time(ctx, "routes.Optimize")(&err)

	id := strings.TrimSpace(req.RouteID)
	if id == "" {
		return s.optimize(ctx, uuid.NewString(), req)
	}

	release, err := s.locks.acquire(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("optimize route %s: %w", id, err)
	}
	defer release()

	return s.optimize(ctx, id, req)
}

func (s *RouteService) optimize(ctx context.Context, id string, req OptimizeRouteRequest) (*domain.RouteMetrics, error) {
	class := domain.VehicleClass(strings.ToLower(strings.TrimSpace(req.VehicleType)))
	if !class.IsValid() {
		s.logger.Debug("unknown vehicle class, using defaults",
			zap.String("vehicle_type", req.VehicleType),
		)
	}

	if err := domain.ValidateWaypoints(req.Waypoints); err != nil {
		return nil, fmt.Errorf("optimize route: %w", err)
	}

	if s.bounds != nil {
		if err := s.bounds.Check(req.Waypoints); err != nil {
			return nil, fmt.Errorf("optimize route: %w", err)
		}
	}

	metrics, err := s.engine.OptimizeRoute(req.Waypoints, class, req.Traffic)
	if err != nil {
		return nil, fmt.Errorf("optimize route: %w", err)
	}
	metrics.RouteID = id

	if err := checkConstraints(metrics, req.Constraints); err != nil {
		return nil, fmt.Errorf("optimize route %s: %w", id, err)
	}

	if s.store != nil {
		if err := s.store.Put(ctx, metrics); err != nil {
			s.logger.Warn("route store write failed", zap.String("route_id", id), zap.Error(err))
		}
	}

	if s.publisher != nil {
		evt := ports.RouteComputedEvent{
			RouteID:           id,
			VehicleType:       class.String(),
			TotalDistance:     metrics.TotalDistance,
			TotalDuration:     metrics.TotalDuration,
			TrafficDelay:      metrics.TrafficDelay,
			SafetyScore:       metrics.SafetyScore,
			EmergencyPriority: metrics.EmergencyPriority,
			ComputedAt:        s.now().UTC(),
		}
		if err := s.publisher.PublishRouteComputed(ctx, evt); err != nil {
			s.logger.Warn("route event publish failed", zap.String("route_id", id), zap.Error(err))
		}
	}

	return metrics, nil
}

func checkConstraints(m *domain.RouteMetrics, c RouteConstraints) error {
	if c.MaxDistance > 0 && m.TotalDistance > c.MaxDistance {
		return fmt.Errorf("%w: total_distance %.1fm exceeds max_distance %.1fm",
			ErrConstraintViolated, m.TotalDistance, c.MaxDistance)
	}
	if c.MaxDuration > 0 && m.TotalDuration > c.MaxDuration {
		return fmt.Errorf("%w: total_duration %.1fs exceeds max_duration %.1fs",
			ErrConstraintViolated, m.TotalDuration, c.MaxDuration)
	}
	return nil
}

// OptimizeBatch computes many routes with bounded concurrency.
// Results keep request order; the first failure cancels the remaining work.
func (s *RouteService) OptimizeBatch(ctx context.Context, reqs []OptimizeRouteRequest) (_ []*domain.RouteMetrics, err error) {
	defer obs.Time(ctx, "routes.OptimizeBatch")(&err)

	out := make([]*domain.RouteMetrics, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)

	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := s.Optimize(gctx, req)
			if err != nil {
				return fmt.Errorf("batch route #%d: %w", i+1, err)
			}
			out[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Get returns a previously computed route while it is still cached.
func (s *RouteService) Get(ctx context.Context, routeID string) (_ *domain.RouteMetrics, err error) {
	defer obs.Time(ctx, "routes.Get")(&err)

	if s.store == nil {
		return nil, ports.ErrRouteNotFound
	}

	m, err := s.store.Get(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("get route %q: %w", routeID, err)
	}
	return m, nil
}
