package config

import (
	"fmt"
	"os"
	"route-metrics-service/internal/domain"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime settings, read from the environment.
type Config struct {
	Port             string
	AppEnv           string
	DatabaseURL      string
	RedisAddr        string
	RouteTTL         time.Duration
	KafkaBrokers     []string
	KafkaTopic       string
	AverageSpeed     float64
	Bounds           *domain.Bounds
	BatchConcurrency int
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads configuration from environment variables.
// Callers load a .env file beforehand when one exists.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        Get("PORT", "8080"),
		AppEnv:      Get("APP_ENV", "development"),
		DatabaseURL: Get("DATABASE_URL", ""),
		RedisAddr:   Get("REDIS_ADDR", ""),
		KafkaTopic:  Get("KAFKA_TOPIC", "route.events"),
	}

	ttl, err := time.ParseDuration(Get("ROUTE_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("load config: ROUTE_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("load config: ROUTE_TTL must be positive, got %s", ttl)
	}
	cfg.RouteTTL = ttl

	speed, err := strconv.ParseFloat(Get("AVERAGE_SPEED_MPS", "8.33"), 64)
	if err != nil {
		return nil, fmt.Errorf("load config: AVERAGE_SPEED_MPS: %w", err)
	}
	if speed <= 0 {
		return nil, fmt.Errorf("load config: AVERAGE_SPEED_MPS must be positive, got %v", speed)
	}
	cfg.AverageSpeed = speed

	conc, err := strconv.Atoi(Get("BATCH_CONCURRENCY", "5"))
	if err != nil {
		return nil, fmt.Errorf("load config: BATCH_CONCURRENCY: %w", err)
	}
	if conc < 1 {
		return nil, fmt.Errorf("load config: BATCH_CONCURRENCY must be >= 1, got %d", conc)
	}
	cfg.BatchConcurrency = conc

	for _, b := range strings.Split(Get("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}

	if raw := Get("OPERATING_BOUNDS", ""); raw != "" {
		b, err := domain.ParseBounds(raw)
		if err != nil {
			return nil, fmt.Errorf("load config: OPERATING_BOUNDS: %w", err)
		}
		cfg.Bounds = &b
	}

	return cfg, nil
}
