package api

import (
	"route-metrics-service/internal/api/handlers"
	"route-metrics-service/internal/ports"
	"route-metrics-service/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies and returns the gin engine.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(svc *services.RouteService, landmarks ports.LandmarkRepository, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(logger))
	router.Use(cors.Default())

	routeHandler := &handlers.RouteHandler{Service: svc, Logger: logger}
	refHandler := &handlers.ReferenceHandler{Landmarks: landmarks, Logger: logger}

	router.GET("/health", handlers.Health)
	routeHandler.RegisterRoutes(&router.RouterGroup)
	refHandler.RegisterRoutes(&router.RouterGroup)

	return router
}
