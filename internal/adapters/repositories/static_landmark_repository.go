package repositories

import (
	"context"
	"route-metrics-service/internal/domain"
)

// DefaultHospitals is used when no database is configured.
var DefaultHospitals = []domain.Landmark{
	{
		ID:       1,
		Name:     "District Hospital",
		Kind:     domain.LandmarkHospital,
		Location: domain.Coordinates{Lon: 75.9120, Lat: 10.9890},
	},
}

// In-memory LandmarkRepository over a fixed list.
type StaticLandmarkRepository struct {
	landmarks []domain.Landmark
}

func NewStaticLandmarkRepository(landmarks []domain.Landmark) *StaticLandmarkRepository {
	cp := make([]domain.Landmark, len(landmarks))
	copy(cp, landmarks)
	return &StaticLandmarkRepository{landmarks: cp}
}

func (s *StaticLandmarkRepository) ListLandmarks(_ context.Context, kind domain.LandmarkKind) ([]domain.Landmark, error) {
	out := make([]domain.Landmark, 0, len(s.landmarks))
	for _, l := range s.landmarks {
		if l.Kind == kind {
			out = append(out, l)
		}
	}
	return out, nil
}
