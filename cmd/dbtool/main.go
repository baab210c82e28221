package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"route-metrics-service/internal/adapters/repositories"
	"route-metrics-service/internal/config"
	"route-metrics-service/internal/platform/db"
	"route-metrics-service/internal/platform/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// dbtool initializes the landmarks schema and seeds it from JSON.
func main() {
	envErr := godotenv.Load()

	log, err := logger.New(config.Get("APP_ENV", "development"), "dbtool")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if envErr != nil {
		log.Info("no .env file found (using environment variables)")
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/landmarks.json")
	if err := initAndSeed(context.Background(), conn, seedPath, log); err != nil {
		log.Fatal("init and seed failed", zap.Error(err))
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, seedPath string, log *zap.Logger) error {
	log.Info("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Info("schema ready")

	log.Info("seeding landmarks", zap.String("path", seedPath))
	if err := repositories.SeedLandmarksFromJSON(ctx, conn, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Info("seeding complete")

	return nil
}
