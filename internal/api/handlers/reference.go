package handlers

import (
	"net/http"
	"route-metrics-service/internal/api/dto"
	"route-metrics-service/internal/domain"
	"route-metrics-service/internal/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReferenceHandler exposes read-only reference data used by the engine.
type ReferenceHandler struct {
	Landmarks ports.LandmarkRepository
	Logger    *zap.Logger
}

func (h *ReferenceHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/v1/vehicle-classes", h.VehicleClasses)
	r.GET("/api/v1/landmarks", h.ListLandmarks)
}

func (h *ReferenceHandler) VehicleClasses(c *gin.Context) {
	classes := domain.AllVehicleClasses()
	res := dto.ListVehicleClassesResponse{
		VehicleClasses: make([]dto.VehicleClassResponse, 0, len(classes)),
	}
	for _, v := range classes {
		res.VehicleClasses = append(res.VehicleClasses, dto.VehicleClassResponse{
			VehicleType: v.String(),
			FuelRate:    v.FuelRate(),
			Emergency:   v.IsEmergency(),
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *ReferenceHandler) ListLandmarks(c *gin.Context) {
	landmarks, err := h.Landmarks.ListLandmarks(c.Request.Context(), domain.LandmarkHospital)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}

	res := dto.ListLandmarksResponse{
		Landmarks: make([]dto.LandmarkResponse, 0, len(landmarks)),
	}
	for _, l := range landmarks {
		res.Landmarks = append(res.Landmarks, dto.LandmarkResponse{
			LandmarkID: l.ID,
			Name:       l.Name,
			Kind:       string(l.Kind),
			Location:   pair(l.Location),
		})
	}

	c.JSON(http.StatusOK, res)
}
