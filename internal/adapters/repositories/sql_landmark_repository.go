package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-metrics-service/internal/domain"
	"route-metrics-service/internal/platform/obs"
)

// Postgres-backed implementation of the LandmarkRepository port.
type SQLLandmarkRepository struct{ DB *sql.DB }

func NewSQLLandmarkRepository(db *sql.DB) *SQLLandmarkRepository {
	return &SQLLandmarkRepository{DB: db}
}

// Return all landmarks of a kind, ordered by id.
func (s *SQLLandmarkRepository) ListLandmarks(
	ctx context.Context,
	kind domain.LandmarkKind,
) (_ []domain.Landmark, err error) {
	defer obs.Time(ctx, "landmarks.ListLandmarks")(&err)

	if s.DB == nil {
		return nil, errors.New("sql landmark repository: DB is nil")
	}

	query := `
	SELECT landmark_id, name, kind, lon, lat
	FROM landmarks
	WHERE kind = $1
	ORDER BY landmark_id;
	`
	rows, err := s.DB.QueryContext(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list landmarks: query landmarks table: %w", err)
	}
	defer rows.Close()

	landmarks := make([]domain.Landmark, 0, 16)
	for rows.Next() {
		var (
			l        domain.Landmark
			k        string
			lon, lat float64
		)
		if err := rows.Scan(&l.ID, &l.Name, &k, &lon, &lat); err != nil {
			return nil, fmt.Errorf("list landmarks: scan row: %w", err)
		}
		l.Kind = domain.LandmarkKind(k)
		l.Location = domain.Coordinates{Lon: lon, Lat: lat}
		landmarks = append(landmarks, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list landmarks: row iteration: %w", err)
	}

	return landmarks, nil
}
