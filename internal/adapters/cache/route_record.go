package cache

import "route-metrics-service/internal/domain"

// routeRecord is the serialized form of a RouteMetrics entry.
type routeRecord struct {
	RouteID           string               `json:"route_id"`
	VehicleClass      string               `json:"vehicle_class"`
	Waypoints         []domain.Coordinates `json:"waypoints"`
	TotalDistance     float64              `json:"total_distance"`
	TotalDuration     float64              `json:"total_duration"`
	TrafficDelay      float64              `json:"traffic_delay"`
	FuelEfficiency    float64              `json:"fuel_efficiency"`
	SafetyScore       float64              `json:"safety_score"`
	EmergencyPriority bool                 `json:"emergency_priority"`
	Factors           [4]float64           `json:"factors"`
	Segments          []segmentRecord      `json:"segments"`
}

type segmentRecord struct {
	From            domain.Coordinates `json:"from"`
	To              domain.Coordinates `json:"to"`
	Distance        float64            `json:"distance"`
	Duration        float64            `json:"duration"`
	RoadType        string             `json:"road_type"`
	TrafficLevel    float64            `json:"traffic_level"`
	SafetyScore     float64            `json:"safety_score"`
	EmergencyAccess bool               `json:"emergency_access"`
}

func toRecord(m *domain.RouteMetrics) routeRecord {
	f := m.OptimizationFactors
	r := routeRecord{
		RouteID:           m.RouteID,
		VehicleClass:      string(m.VehicleClass),
		Waypoints:         m.Waypoints,
		TotalDistance:     m.TotalDistance,
		TotalDuration:     m.TotalDuration,
		TrafficDelay:      m.TrafficDelay,
		FuelEfficiency:    m.FuelEfficiency,
		SafetyScore:       m.SafetyScore,
		EmergencyPriority: m.EmergencyPriority,
		Factors:           [4]float64{f.TrafficAvoidance, f.DistanceOptimization, f.TimeOptimization, f.SafetyOptimization},
		Segments:          make([]segmentRecord, 0, len(m.Segments)),
	}
	for _, s := range m.Segments {
		r.Segments = append(r.Segments, segmentRecord{
			From:            s.From,
			To:              s.To,
			Distance:        s.Distance,
			Duration:        s.Duration,
			RoadType:        string(s.RoadType),
			TrafficLevel:    s.TrafficLevel,
			SafetyScore:     s.SafetyScore,
			EmergencyAccess: s.EmergencyAccess,
		})
	}
	return r
}

func (r routeRecord) toDomain() *domain.RouteMetrics {
	m := &domain.RouteMetrics{
		RouteID:           r.RouteID,
		VehicleClass:      domain.VehicleClass(r.VehicleClass),
		Waypoints:         r.Waypoints,
		TotalDistance:     r.TotalDistance,
		TotalDuration:     r.TotalDuration,
		TrafficDelay:      r.TrafficDelay,
		FuelEfficiency:    r.FuelEfficiency,
		SafetyScore:       r.SafetyScore,
		EmergencyPriority: r.EmergencyPriority,
		OptimizationFactors: domain.OptimizationFactors{
			TrafficAvoidance:     r.Factors[0],
			DistanceOptimization: r.Factors[1],
			TimeOptimization:     r.Factors[2],
			SafetyOptimization:   r.Factors[3],
		},
		Segments: make([]domain.RouteSegment, 0, len(r.Segments)),
	}
	for _, s := range r.Segments {
		m.Segments = append(m.Segments, domain.RouteSegment{
			From:            s.From,
			To:              s.To,
			Distance:        s.Distance,
			Duration:        s.Duration,
			RoadType:        domain.RoadType(s.RoadType),
			TrafficLevel:    s.TrafficLevel,
			SafetyScore:     s.SafetyScore,
			EmergencyAccess: s.EmergencyAccess,
		})
	}
	return m
}
