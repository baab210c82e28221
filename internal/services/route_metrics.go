package services

import (
	"math"
	"route-metrics-service/internal/domain"
)

const (
	earthRadiusMeters = 6371000.0

	// DefaultAverageSpeed stands in for a road-speed model (~30 km/h).
	DefaultAverageSpeed = 8.33

	// Full congestion (1.0) adds 50% to a leg's base travel time.
	congestionDelayFactor = 0.5

	// Defaults for per-segment lookups when the context has no entry.
	defaultSegmentTraffic = 0.2

	intermediateWaypointFuelFactor = 0.9
	emergencyFuelFactor            = 1.2
)

// EngineConfig holds the tunable parameters of a RouteMetricsEngine.
type EngineConfig struct {
	// Average travel speed in meters per second.
	AverageSpeed float64
	// Hospital landmarks used to classify "emergency" road segments.
	Hospitals []domain.Landmark
}

// RouteMetricsEngine computes distance, time, fuel, and safety metrics for
// waypoint sequences.
//
// The engine is a pure function of its configuration and inputs: it holds no
// mutable state and performs no I/O, so it is safe for concurrent use.
type RouteMetricsEngine struct {
	speed     float64
	hospitals []domain.Coordinates
}

func NewRouteMetricsEngine(cfg EngineConfig) *RouteMetricsEngine {
	speed := cfg.AverageSpeed
	if speed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		speed = DefaultAverageSpeed
	}

	hospitals := make([]domain.Coordinates, 0, len(cfg.Hospitals))
	for _, h := range cfg.Hospitals {
		hospitals = append(hospitals, h.Location)
	}

	return &RouteMetricsEngine{speed: speed, hospitals: hospitals}
}

// AverageSpeed returns the configured speed in meters per second.
func (e *RouteMetricsEngine) AverageSpeed() float64 { return e.speed }

// ComputeDistance returns the great-circle (Haversine) distance in meters.
// Malformed input propagates as NaN.
func (e *RouteMetricsEngine) ComputeDistance(a, b domain.Coordinates) float64 {
	return haversine(a, b)
}

func haversine(a, b domain.Coordinates) float64 {
	phi1 := a.Lat * math.Pi / 180
	phi2 := b.Lat * math.Pi / 180
	dPhi := (b.Lat - a.Lat) * math.Pi / 180
	dLambda := (b.Lon - a.Lon) * math.Pi / 180

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)

	h := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// ComputeTotalDistance sums leg distances across consecutive waypoints.
func (e *RouteMetricsEngine) ComputeTotalDistance(waypoints []domain.Coordinates) (float64, error) {
	if err := domain.ValidateWaypoints(waypoints); err != nil {
		return 0, err
	}
	return e.totalDistance(waypoints), nil
}

func (e *RouteMetricsEngine) totalDistance(waypoints []domain.Coordinates) float64 {
	total := 0.0
	for i := 1; i < len(waypoints); i++ {
		total += haversine(waypoints[i-1], waypoints[i])
	}
	return total
}

// EstimateBaseDuration converts meters to seconds at the average speed.
func (e *RouteMetricsEngine) EstimateBaseDuration(distanceMeters float64) float64 {
	return distanceMeters / e.speed
}

// ComputeTrafficDelay returns the extra seconds caused by congestion.
//
// Each waypoint after the first contributes its incoming leg's base time
// scaled by 0.5 x its congestion level. Without a context the delay is zero.
func (e *RouteMetricsEngine) ComputeTrafficDelay(
	waypoints []domain.Coordinates,
	traffic *domain.TrafficContext,
) (float64, error) {
	if err := domain.ValidateWaypoints(waypoints); err != nil {
		return 0, err
	}
	return e.trafficDelay(waypoints, traffic), nil
}

func (e *RouteMetricsEngine) trafficDelay(waypoints []domain.Coordinates, traffic *domain.TrafficContext) float64 {
	if traffic == nil {
		return 0
	}

	delay := 0.0
	for i := 1; i < len(waypoints); i++ {
		congestion, _ := traffic.Congestion(waypoints[i])
		base := e.EstimateBaseDuration(haversine(waypoints[i-1], waypoints[i]))
		delay += base*(1+congestionDelayFactor*congestion) - base
	}
	return delay
}

// ComputeFuelEfficiency estimates liters consumed over the route.
func (e *RouteMetricsEngine) ComputeFuelEfficiency(
	waypoints []domain.Coordinates,
	class domain.VehicleClass,
) (float64, error) {
	if err := domain.ValidateWaypoints(waypoints); err != nil {
		return 0, err
	}
	return e.fuel(waypoints, e.totalDistance(waypoints), class), nil
}

func (e *RouteMetricsEngine) fuel(waypoints []domain.Coordinates, distance float64, class domain.VehicleClass) float64 {
	liters := (distance / 1000) * (class.FuelRate() / 100)

	if len(waypoints) > 2 {
		liters *= intermediateWaypointFuelFactor
	}
	if class.IsEmergency() {
		liters *= emergencyFuelFactor
	}
	return liters
}

// ComputeSafetyScore returns a route-wide score in [0,100].
//
// Penalties for congested waypoints are summed independently per waypoint
// and the result is clamped only at the end.
func (e *RouteMetricsEngine) ComputeSafetyScore(
	waypoints []domain.Coordinates,
	traffic *domain.TrafficContext,
) (float64, error) {
	if err := domain.ValidateWaypoints(waypoints); err != nil {
		return 0, err
	}
	return routeSafety(waypoints, traffic), nil
}

func routeSafety(waypoints []domain.Coordinates, traffic *domain.TrafficContext) float64 {
	score := 100.0
	for _, w := range waypoints {
		congestion, _ := traffic.Congestion(w)
		switch {
		case congestion >= 0.7:
			score -= 10
		case congestion >= 0.4:
			score -= 5
		}
	}

	score -= 5 * float64(len(traffic.Incidents()))
	score -= 3 * float64(len(traffic.Works()))

	return math.Max(0, score)
}

// OptimizeRoute runs every metric over the waypoints and assembles the result.
// RouteID is left empty for the caller to assign.
func (e *RouteMetricsEngine) OptimizeRoute(
	waypoints []domain.Coordinates,
	class domain.VehicleClass,
	traffic *domain.TrafficContext,
) (*domain.RouteMetrics, error) {
	if err := domain.ValidateWaypoints(waypoints); err != nil {
		return nil, err
	}

	distance := e.totalDistance(waypoints)
	delay := e.trafficDelay(waypoints, traffic)
	segments := e.segments(waypoints, class, traffic)

	wps := make([]domain.Coordinates, len(waypoints))
	copy(wps, waypoints)

	return &domain.RouteMetrics{
		VehicleClass:        class,
		Waypoints:           wps,
		TotalDistance:       distance,
		TotalDuration:       e.EstimateBaseDuration(distance) + delay,
		TrafficDelay:        delay,
		FuelEfficiency:      e.fuel(waypoints, distance, class),
		SafetyScore:         routeSafety(waypoints, traffic),
		EmergencyPriority:   class.IsEmergency(),
		OptimizationFactors: optimizationFactors(segments),
		Segments:            segments,
	}, nil
}
