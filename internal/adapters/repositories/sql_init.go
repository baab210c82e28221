package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"route-metrics-service/internal/domain"
	"strings"
)

// Initialize the Postgres schema for reference data.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLandmarksQuery := `
	CREATE TABLE IF NOT EXISTS landmarks (
		landmark_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		lon DOUBLE PRECISION NOT NULL CHECK (lon BETWEEN -180 AND 180),
		lat DOUBLE PRECISION NOT NULL CHECK (lat BETWEEN -90 AND 90)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_landmarks_kind
	ON landmarks(kind);
	`

	statements := []string{
		createLandmarksQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type LandmarkSeed struct {
	LandmarkID int       `json:"landmark_id"`
	Name       string    `json:"name"`
	Kind       string    `json:"kind"`
	Location   []float64 `json:"location"`
}

// ParseLandmarkSeeds validates seed records and converts them to landmarks.
func ParseLandmarkSeeds(data []LandmarkSeed) ([]domain.Landmark, error) {
	out := make([]domain.Landmark, 0, len(data))
	for i, item := range data {
		if item.LandmarkID <= 0 {
			return nil, fmt.Errorf("seed landmarks: invalid landmark_id at index %d: %d", i+1, item.LandmarkID)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("seed landmarks: item at index %d: name cannot be empty", i+1)
		}

		kind := strings.ToLower(strings.TrimSpace(item.Kind))
		if kind == "" {
			kind = string(domain.LandmarkHospital)
		}

		if len(item.Location) != 2 {
			return nil, fmt.Errorf("seed landmarks: item at index %d: location must be [lon, lat]", i+1)
		}
		loc := domain.Coordinates{Lon: item.Location[0], Lat: item.Location[1]}
		if err := loc.Validate(); err != nil {
			return nil, fmt.Errorf("seed landmarks: item at index %d: %w", i+1, err)
		}

		out = append(out, domain.Landmark{
			ID:       item.LandmarkID,
			Name:     name,
			Kind:     domain.LandmarkKind(kind),
			Location: loc,
		})
	}

	return out, nil
}

// Populate the landmarks table from a JSON file.
func SeedLandmarksFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed landmarks: read %q: %w", jsonPath, err)
	}

	var data []LandmarkSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed landmarks: parse json: %w", err)
	}

	rows, err := ParseLandmarkSeeds(data)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed landmarks: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO landmarks (landmark_id, name, kind, lon, lat)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (landmark_id) DO UPDATE
	SET name = EXCLUDED.name,
		kind = EXCLUDED.kind,
		lon = EXCLUDED.lon,
		lat = EXCLUDED.lat;
	`)
	if err != nil {
		return fmt.Errorf("seed landmarks: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, l := range rows {
		if _, err := stmt.ExecContext(ctx, l.ID, l.Name, string(l.Kind), l.Location.Lon, l.Location.Lat); err != nil {
			return fmt.Errorf("seed landmarks: insert landmark_id=%d: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed landmarks: commit tx: %w", err)
	}

	return nil
}
