package ports

import (
	"context"
	"time"
)

// Summary of a computed route announced to downstream consumers.
type RouteComputedEvent struct {
	RouteID           string    `json:"route_id"`
	VehicleType       string    `json:"vehicle_type"`
	TotalDistance     float64   `json:"total_distance"`
	TotalDuration     float64   `json:"total_duration"`
	TrafficDelay      float64   `json:"traffic_delay"`
	SafetyScore       float64   `json:"safety_score"`
	EmergencyPriority bool      `json:"emergency_priority"`
	ComputedAt        time.Time `json:"computed_at"`
}

// Contract for announcing computed routes.
type RouteEventPublisher interface {
	PublishRouteComputed(ctx context.Context, evt RouteComputedEvent) error
}
