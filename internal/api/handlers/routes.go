package handlers

import (
	"fmt"
	"net/http"
	"route-metrics-service/internal/api/dto"
	"route-metrics-service/internal/domain"
	"route-metrics-service/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxBatchRoutes = 20

// RouteHandler exposes route metric computation and read-back.
type RouteHandler struct {
	Service *services.RouteService
	Logger  *zap.Logger
}

func (h *RouteHandler) RegisterRoutes(r *gin.RouterGroup) {
	routes := r.Group("/api/v1/routes")
	{
		routes.POST("/optimize", h.Optimize)
		routes.POST("/batch", h.Batch)
		routes.GET("/:id", h.Get)
	}
}

// Optimize handles POST /api/v1/routes/optimize.
func (h *RouteHandler) Optimize(c *gin.Context) {
	var req dto.OptimizeRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json body")
		return
	}

	svcReq, err := toServiceRequest(req)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.Service.Optimize(c.Request.Context(), svcReq)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}

	c.JSON(http.StatusOK, toRouteResponse(m))
}

// Batch handles POST /api/v1/routes/batch.
func (h *RouteHandler) Batch(c *gin.Context) {
	var req dto.BatchOptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json body")
		return
	}

	if len(req.Routes) < 1 || len(req.Routes) > maxBatchRoutes {
		writeError(c, http.StatusBadRequest, fmt.Sprintf("routes must contain between 1 and %d entries", maxBatchRoutes))
		return
	}

	svcReqs := make([]services.OptimizeRouteRequest, 0, len(req.Routes))
	for i, r := range req.Routes {
		sr, err := toServiceRequest(r)
		if err != nil {
			writeError(c, http.StatusBadRequest, fmt.Sprintf("routes[%d]: %v", i, err))
			return
		}
		svcReqs = append(svcReqs, sr)
	}

	results, err := h.Service.OptimizeBatch(c.Request.Context(), svcReqs)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}

	res := dto.BatchRouteResponse{Routes: make([]dto.RouteResponse, 0, len(results))}
	for _, m := range results {
		res.Routes = append(res.Routes, toRouteResponse(m))
	}

	c.JSON(http.StatusOK, res)
}

// Get handles GET /api/v1/routes/:id.
func (h *RouteHandler) Get(c *gin.Context) {
	m, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}

	c.JSON(http.StatusOK, toRouteResponse(m))
}

func toCoordinates(field string, pairs [][]float64) ([]domain.Coordinates, error) {
	out := make([]domain.Coordinates, 0, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("%s[%d] must be [lon, lat]", field, i)
		}
		out = append(out, domain.Coordinates{Lon: p[0], Lat: p[1]})
	}
	return out, nil
}

func toServiceRequest(req dto.OptimizeRouteRequest) (services.OptimizeRouteRequest, error) {
	waypoints, err := toCoordinates("waypoints", req.Waypoints)
	if err != nil {
		return services.OptimizeRouteRequest{}, err
	}

	out := services.OptimizeRouteRequest{
		RouteID:     req.RouteID,
		Waypoints:   waypoints,
		VehicleType: req.VehicleType,
	}

	if req.Constraints != nil {
		out.Constraints = services.RouteConstraints{
			MaxDistance: req.Constraints.MaxDistance,
			MaxDuration: req.Constraints.MaxDuration,
		}
	}

	if td := req.TrafficData; td != nil {
		incidents, err := toCoordinates("incident_locations", td.IncidentLocations)
		if err != nil {
			return services.OptimizeRouteRequest{}, err
		}
		works, err := toCoordinates("road_works", td.RoadWorks)
		if err != nil {
			return services.OptimizeRouteRequest{}, err
		}
		for k, v := range td.CongestionLevels {
			if v < 0 || v > 1 {
				return services.OptimizeRouteRequest{}, fmt.Errorf("congestion level for %q must be within [0, 1]", k)
			}
		}
		out.Traffic = &domain.TrafficContext{
			CongestionLevels:  td.CongestionLevels,
			IncidentLocations: incidents,
			RoadWorks:         works,
		}
	}

	return out, nil
}

func pair(c domain.Coordinates) [2]float64 { return [2]float64{c.Lon, c.Lat} }

func toRouteResponse(m *domain.RouteMetrics) dto.RouteResponse {
	waypoints := make([][2]float64, 0, len(m.Waypoints))
	for _, w := range m.Waypoints {
		waypoints = append(waypoints, pair(w))
	}

	segments := make([]dto.RouteSegmentResponse, 0, len(m.Segments))
	for _, s := range m.Segments {
		segments = append(segments, dto.RouteSegmentResponse{
			From:            pair(s.From),
			To:              pair(s.To),
			Distance:        s.Distance,
			Duration:        s.Duration,
			RoadType:        string(s.RoadType),
			TrafficLevel:    s.TrafficLevel,
			SafetyScore:     s.SafetyScore,
			EmergencyAccess: s.EmergencyAccess,
		})
	}

	f := m.OptimizationFactors
	return dto.RouteResponse{
		RouteID:           m.RouteID,
		VehicleType:       string(m.VehicleClass),
		Waypoints:         waypoints,
		TotalDistance:     m.TotalDistance,
		TotalDuration:     m.TotalDuration,
		TrafficDelay:      m.TrafficDelay,
		FuelEfficiency:    m.FuelEfficiency,
		SafetyScore:       m.SafetyScore,
		EmergencyPriority: m.EmergencyPriority,
		OptimizationFactors: dto.OptimizationFactorsResponse{
			TrafficAvoidance:     f.TrafficAvoidance,
			DistanceOptimization: f.DistanceOptimization,
			TimeOptimization:     f.TimeOptimization,
			SafetyOptimization:   f.SafetyOptimization,
		},
		Segments: segments,
	}
}
