package events

import (
	"context"
	"route-metrics-service/internal/ports"

	"go.uber.org/zap"
)

// LogRoutePublisher records route events in the log; used without Kafka.
type LogRoutePublisher struct {
	logger *zap.Logger
}

func NewLogRoutePublisher(logger *zap.Logger) *LogRoutePublisher {
	return &LogRoutePublisher{logger: logger}
}

func (p *LogRoutePublisher) PublishRouteComputed(_ context.Context, evt ports.RouteComputedEvent) error {
	p.logger.Info("route computed",
		zap.String("route_id", evt.RouteID),
		zap.String("vehicle_type", evt.VehicleType),
		zap.Float64("total_distance", evt.TotalDistance),
		zap.Float64("total_duration", evt.TotalDuration),
		zap.Float64("safety_score", evt.SafetyScore),
		zap.Bool("emergency_priority", evt.EmergencyPriority),
	)
	return nil
}
