package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"route-metrics-service/internal/adapters/cache"
	"route-metrics-service/internal/adapters/repositories"
	"route-metrics-service/internal/api/dto"
	"route-metrics-service/internal/services"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := services.NewRouteMetricsEngine(services.EngineConfig{
		AverageSpeed: services.DefaultAverageSpeed,
		Hospitals:    repositories.DefaultHospitals,
	})
	store := cache.NewMemoryRouteStore(time.Hour, nil)
	svc := services.NewRouteService(engine, store, nil, zap.NewNop(), services.RouteServiceOptions{})

	return NewRouter(svc, repositories.NewStaticLandmarkRepository(repositories.DefaultHospitals), zap.NewNop())
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, newTestRouter(t), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestOptimizeRoute(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/routes/optimize", `{
		"waypoints": [[75.908, 10.986], [75.9064, 10.9847]],
		"vehicle_type": "ambulance",
		"traffic_data": {
			"congestion_levels": {"75.9064,10.9847": 1},
			"incident_locations": [[75.95, 11.0]],
			"road_works": []
		}
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.RouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.NotEmpty(t, res.RouteID)
	assert.Equal(t, "ambulance", res.VehicleType)
	assert.InDelta(t, 226.71, res.TotalDistance, 0.01)
	assert.Greater(t, res.TrafficDelay, 0.0)
	assert.InDelta(t, res.TotalDistance/services.DefaultAverageSpeed+res.TrafficDelay, res.TotalDuration, 1e-9)
	assert.Equal(t, 85.0, res.SafetyScore)
	assert.True(t, res.EmergencyPriority)
	require.Len(t, res.Segments, 1)
	assert.Equal(t, [2]float64{75.908, 10.986}, res.Segments[0].From)
	assert.True(t, res.Segments[0].EmergencyAccess)
	require.Len(t, res.Waypoints, 2)

	get := doJSON(t, h, http.MethodGet, "/api/v1/routes/"+res.RouteID, "")
	require.Equal(t, http.StatusOK, get.Code)

	var again dto.RouteResponse
	require.NoError(t, json.Unmarshal(get.Body.Bytes(), &again))
	assert.Equal(t, res, again)
}

func TestOptimizeRouteErrors(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"waypoints":`, http.StatusBadRequest},
		{"missing vehicle", `{"waypoints": [[75.9, 10.9], [75.91, 10.91]]}`, http.StatusBadRequest},
		{"single waypoint", `{"waypoints": [[75.9064, 10.9847]], "vehicle_type": "car"}`, http.StatusBadRequest},
		{"bad pair", `{"waypoints": [[75.9], [75.91, 10.91]], "vehicle_type": "car"}`, http.StatusBadRequest},
		{"out of range", `{"waypoints": [[75.9, 10.9], [190, 10.91]], "vehicle_type": "car"}`, http.StatusBadRequest},
		{"bad congestion", `{"waypoints": [[75.9, 10.9], [75.91, 10.91]], "vehicle_type": "car",
			"traffic_data": {"congestion_levels": {"75.9100,10.9100": 2}}}`, http.StatusBadRequest},
		{"max distance", `{"waypoints": [[75.9, 10.9], [75.91, 10.91]], "vehicle_type": "car",
			"constraints": {"max_distance": 10}}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodPost, "/api/v1/routes/optimize", tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestGetRouteNotFound(t *testing.T) {
	rec := doJSON(t, newTestRouter(t), http.MethodGet, "/api/v1/routes/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBatchRoutes(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/routes/batch", `{"routes": [
		{"route_id": "a", "waypoints": [[75.9064, 10.9847], [75.908, 10.986]], "vehicle_type": "car"},
		{"route_id": "b", "waypoints": [[75.9064, 10.9847], [75.908, 10.986], [75.91, 10.988]], "vehicle_type": "bus"}
	]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.BatchRouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Routes, 2)
	assert.Equal(t, "a", res.Routes[0].RouteID)
	assert.Equal(t, "b", res.Routes[1].RouteID)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/routes/batch", `{"routes": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBatchRoutesValidatesEntries(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing vehicle", `{"routes": [
			{"waypoints": [[75.9064, 10.9847], [75.908, 10.986]], "vehicle_type": "car"},
			{"waypoints": [[75.9064, 10.9847], [75.908, 10.986]]}
		]}`},
		{"missing waypoints", `{"routes": [{"vehicle_type": "car"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodPost, "/api/v1/routes/batch", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestReferenceEndpoints(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/vehicle-classes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var classes dto.ListVehicleClassesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &classes))
	assert.Len(t, classes.VehicleClasses, 6)
	assert.Equal(t, "ambulance", classes.VehicleClasses[0].VehicleType)
	assert.True(t, classes.VehicleClasses[0].Emergency)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/landmarks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var landmarks dto.ListLandmarksResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &landmarks))
	require.Len(t, landmarks.Landmarks, len(repositories.DefaultHospitals))
	assert.Equal(t, "hospital", landmarks.Landmarks[0].Kind)
}
