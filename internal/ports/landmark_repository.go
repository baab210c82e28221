package ports

import (
	"context"
	"route-metrics-service/internal/domain"
)

// Port: a boundary for retrieving reference landmarks (e.g. hospitals).
type LandmarkRepository interface {
	// Retrieve all landmarks of the given kind.
	ListLandmarks(ctx context.Context, kind domain.LandmarkKind) ([]domain.Landmark, error)
}
