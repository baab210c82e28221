package services

import (
	"math"
	"route-metrics-service/internal/domain"
)

const (
	primaryRoadMinMeters   = 1000.0
	secondaryRoadMinMeters = 500.0
	hospitalRadiusMeters   = 500.0

	incidentRadiusMeters = 200.0
	incidentPenalty      = 20.0
	roadWorkRadiusMeters = 100.0
	roadWorkPenalty      = 10.0

	// Reference scales for the normalized optimization factors.
	distanceReferenceMeters  = 10000.0
	durationReferenceSeconds = 1800.0
)

// GenerateSegments decomposes the route into per-leg metrics.
func (e *RouteMetricsEngine) GenerateSegments(
	waypoints []domain.Coordinates,
	class domain.VehicleClass,
	traffic *domain.TrafficContext,
) ([]domain.RouteSegment, error) {
	if err := domain.ValidateWaypoints(waypoints); err != nil {
		return nil, err
	}
	return e.segments(waypoints, class, traffic), nil
}

func (e *RouteMetricsEngine) segments(
	waypoints []domain.Coordinates,
	class domain.VehicleClass,
	traffic *domain.TrafficContext,
) []domain.RouteSegment {
	out := make([]domain.RouteSegment, 0, len(waypoints)-1)

	for i := 1; i < len(waypoints); i++ {
		from, to := waypoints[i-1], waypoints[i]
		distance := haversine(from, to)
		roadType := e.classifyRoad(from, to, distance)

		level, ok := traffic.Congestion(from.Midpoint(to))
		if !ok {
			level = defaultSegmentTraffic
		}

		out = append(out, domain.RouteSegment{
			From:            from,
			To:              to,
			Distance:        distance,
			Duration:        e.EstimateBaseDuration(distance),
			RoadType:        roadType,
			TrafficLevel:    level,
			SafetyScore:     segmentSafety(from, traffic),
			EmergencyAccess: roadType == domain.RoadEmergency || roadType == domain.RoadPrimary || class.IsEmergency(),
		})
	}

	return out
}

func (e *RouteMetricsEngine) classifyRoad(from, to domain.Coordinates, distance float64) domain.RoadType {
	switch {
	case distance > primaryRoadMinMeters:
		return domain.RoadPrimary
	case distance > secondaryRoadMinMeters:
		return domain.RoadSecondary
	case e.nearHospital(from) || e.nearHospital(to):
		return domain.RoadEmergency
	default:
		return domain.RoadLocal
	}
}

func (e *RouteMetricsEngine) nearHospital(c domain.Coordinates) bool {
	return anyWithin(c, e.hospitals, hospitalRadiusMeters)
}

// segmentSafety scores a leg by hazards near its starting point.
func segmentSafety(start domain.Coordinates, traffic *domain.TrafficContext) float64 {
	score := 100.0
	if anyWithin(start, traffic.Incidents(), incidentRadiusMeters) {
		score -= incidentPenalty
	}
	if anyWithin(start, traffic.Works(), roadWorkRadiusMeters) {
		score -= roadWorkPenalty
	}
	return math.Max(0, score)
}

func anyWithin(c domain.Coordinates, points []domain.Coordinates, radius float64) bool {
	for _, p := range points {
		if haversine(c, p) <= radius {
			return true
		}
	}
	return false
}

// ComputeOptimizationFactors summarizes segments into four [0,1] scores.
// An empty segment list yields all-zero factors.
func (e *RouteMetricsEngine) ComputeOptimizationFactors(segments []domain.RouteSegment) domain.OptimizationFactors {
	return optimizationFactors(segments)
}

func optimizationFactors(segments []domain.RouteSegment) domain.OptimizationFactors {
	if len(segments) == 0 {
		return domain.OptimizationFactors{}
	}

	var traffic, distance, duration, safety float64
	for _, s := range segments {
		traffic += s.TrafficLevel
		distance += s.Distance
		duration += s.Duration
		safety += s.SafetyScore
	}
	n := float64(len(segments))

	return domain.OptimizationFactors{
		TrafficAvoidance:     clampUnit(1 - traffic/n),
		DistanceOptimization: clampUnit(1 - distance/distanceReferenceMeters),
		TimeOptimization:     clampUnit(1 - duration/durationReferenceSeconds),
		SafetyOptimization:   clampUnit(safety / n / 100),
	}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(1, math.Max(0, v))
}
