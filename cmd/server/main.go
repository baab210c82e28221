package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"route-metrics-service/internal/adapters/cache"
	"route-metrics-service/internal/adapters/events"
	"route-metrics-service/internal/adapters/repositories"
	"route-metrics-service/internal/api"
	"route-metrics-service/internal/config"
	"route-metrics-service/internal/domain"
	"route-metrics-service/internal/platform/db"
	"route-metrics-service/internal/platform/logger"
	"route-metrics-service/internal/ports"
	"route-metrics-service/internal/services"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, Kafka) behind ports and starts the HTTP server.
func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv, "route-metrics")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	if envErr != nil {
		log.Info("no .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	landmarks, closeDB, err := newLandmarkRepository(cfg, log)
	if err != nil {
		log.Fatal("failed to open landmark repository", zap.Error(err))
	}
	defer closeDB()

	hospitals, err := landmarks.ListLandmarks(ctx, domain.LandmarkHospital)
	if err != nil {
		log.Fatal("failed to load hospital landmarks", zap.Error(err))
	}
	log.Info("hospital landmarks loaded", zap.Int("count", len(hospitals)))

	engine := services.NewRouteMetricsEngine(services.EngineConfig{
		AverageSpeed: cfg.AverageSpeed,
		Hospitals:    hospitals,
	})

	store, closeStore := newRouteStore(cfg, log)
	defer closeStore()

	publisher, closePublisher := newPublisher(cfg, log)
	defer closePublisher()

	svc := services.NewRouteService(engine, store, publisher, log, services.RouteServiceOptions{
		Bounds:           cfg.Bounds,
		BatchConcurrency: cfg.BatchConcurrency,
	})

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(svc, landmarks, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}
}

// Hospitals come from Postgres when DATABASE_URL is set, otherwise from built-in defaults.
func newLandmarkRepository(cfg *config.Config, log *zap.Logger) (ports.LandmarkRepository, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Info("DATABASE_URL not set, using built-in landmarks")
		return repositories.NewStaticLandmarkRepository(repositories.DefaultHospitals), func() {}, nil
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := conn.Close(); err != nil {
			log.Warn("close database", zap.Error(err))
		}
	}
	return repositories.NewSQLLandmarkRepository(conn), closeFn, nil
}

func newRouteStore(cfg *config.Config, log *zap.Logger) (ports.RouteStore, func()) {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, using in-memory route store")
		return cache.NewMemoryRouteStore(cfg.RouteTTL, nil), func() {}
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Warn("close redis", zap.Error(err))
		}
	}
	return cache.NewRedisRouteStore(client, cfg.RouteTTL), closeFn
}

func newPublisher(cfg *config.Config, log *zap.Logger) (ports.RouteEventPublisher, func()) {
	if len(cfg.KafkaBrokers) == 0 {
		return events.NewLogRoutePublisher(log), func() {}
	}

	p, err := events.NewKafkaRoutePublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		log.Warn("kafka publisher unavailable, logging events instead", zap.Error(err))
		return events.NewLogRoutePublisher(log), func() {}
	}
	closeFn := func() {
		if err := p.Close(); err != nil {
			log.Warn("close kafka writer", zap.Error(err))
		}
	}
	return p, closeFn
}
