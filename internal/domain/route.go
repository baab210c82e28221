package domain

// RoadType is inferred per segment from its length and nearby landmarks.
type RoadType string

const (
	RoadPrimary   RoadType = "primary"
	RoadSecondary RoadType = "secondary"
	RoadEmergency RoadType = "emergency"
	RoadLocal     RoadType = "local"
)

// Represents the leg between two consecutive waypoints.
// Distance is in meters and Duration in seconds at the average speed.
type RouteSegment struct {
	From            Coordinates
	To              Coordinates
	Distance        float64
	Duration        float64
	RoadType        RoadType
	TrafficLevel    float64
	SafetyScore     float64
	EmergencyAccess bool
}

// Normalized [0,1] route quality scores; higher is better.
type OptimizationFactors struct {
	TrafficAvoidance     float64
	DistanceOptimization float64
	TimeOptimization     float64
	SafetyOptimization   float64
}

// Represents the computed metrics for a single waypoint sequence.
// It is derived data created fresh per computation and never mutated.
type RouteMetrics struct {
	RouteID             string
	VehicleClass        VehicleClass
	Waypoints           []Coordinates
	TotalDistance       float64
	TotalDuration       float64
	TrafficDelay        float64
	FuelEfficiency      float64
	SafetyScore         float64
	EmergencyPriority   bool
	OptimizationFactors OptimizationFactors
	Segments            []RouteSegment
}
