package dto

type ConstraintsRequest struct {
	MaxDistance float64 `json:"max_distance"`
	MaxDuration float64 `json:"max_duration"`
}

type TrafficDataRequest struct {
	CongestionLevels  map[string]float64 `json:"congestion_levels"`
	IncidentLocations [][]float64        `json:"incident_locations"`
	RoadWorks         [][]float64        `json:"road_works"`
}

type OptimizeRouteRequest struct {
	RouteID     string              `json:"route_id"`
	Waypoints   [][]float64         `json:"waypoints" binding:"required"`
	VehicleType string              `json:"vehicle_type" binding:"required"`
	Constraints *ConstraintsRequest `json:"constraints"`
	TrafficData *TrafficDataRequest `json:"traffic_data"`
}

type BatchOptimizeRequest struct {
	Routes []OptimizeRouteRequest `json:"routes" binding:"required,dive"`
}

type OptimizationFactorsResponse struct {
	TrafficAvoidance     float64 `json:"traffic_avoidance"`
	DistanceOptimization float64 `json:"distance_optimization"`
	TimeOptimization     float64 `json:"time_optimization"`
	SafetyOptimization   float64 `json:"safety_optimization"`
}

type RouteSegmentResponse struct {
	From            [2]float64 `json:"from"`
	To              [2]float64 `json:"to"`
	Distance        float64    `json:"distance"`
	Duration        float64    `json:"duration"`
	RoadType        string     `json:"road_type"`
	TrafficLevel    float64    `json:"traffic_level"`
	SafetyScore     float64    `json:"safety_score"`
	EmergencyAccess bool       `json:"emergency_access"`
}

type RouteResponse struct {
	RouteID             string                      `json:"route_id"`
	VehicleType         string                      `json:"vehicle_type"`
	Waypoints           [][2]float64                `json:"waypoints"`
	TotalDistance       float64                     `json:"total_distance"`
	TotalDuration       float64                     `json:"total_duration"`
	TrafficDelay        float64                     `json:"traffic_delay"`
	FuelEfficiency      float64                     `json:"fuel_efficiency"`
	SafetyScore         float64                     `json:"safety_score"`
	EmergencyPriority   bool                        `json:"emergency_priority"`
	OptimizationFactors OptimizationFactorsResponse `json:"optimization_factors"`
	Segments            []RouteSegmentResponse      `json:"segments"`
}

type BatchRouteResponse struct {
	Routes []RouteResponse `json:"routes"`
}
