package handlers

import (
	"errors"
	"net/http"
	"route-metrics-service/internal/domain"
	"route-metrics-service/internal/ports"
	"route-metrics-service/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func writeError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// writeServiceError maps service errors onto HTTP statuses. Unexpected
// errors are logged and reported without detail.
func writeServiceError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrOutOfBounds):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrConstraintViolated):
		writeError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ports.ErrRouteNotFound):
		writeError(c, http.StatusNotFound, "route not found")
	default:
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		writeError(c, http.StatusInternalServerError, "internal server error")
	}
}
