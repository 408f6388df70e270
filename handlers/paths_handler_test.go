package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LSUDOKO/GlobalRoute-Navigator/planner"
	"github.com/LSUDOKO/GlobalRoute-Navigator/services"
)

const handlerDataset = `{
  "nodes": [
    {"id": "NY", "country": "US"},
    {"id": "LA", "country": "US"},
    {"id": "Havana", "country": "CU"}
  ],
  "edges": [
    {"from": "NY", "to": "LA", "mode": "land", "time": 62, "price": 3100, "distance": 3400},
    {"from": "NY", "to": "Havana", "mode": "sea", "time": 60, "price": 250, "distance": 2100}
  ]
}`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	g, err := planner.LoadFromJSON([]byte(handlerDataset))
	require.NoError(t, err)
	svc := services.NewPlannerService(g, 5*time.Second)

	router := gin.New()
	NewPathsHandler(svc, "data/graph.json").RegisterRoutes(router)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestFindPathsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	rec := postJSON(t, router, "/find_paths/", map[string]any{
		"start": "NY", "goal": "LA",
		"allowed_modes": []string{"land"},
		"top_n":         1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AvoidedCountries []string `json:"avoided_countries"`
		PenaltyCountries []string `json:"penalty_countries"`
		Paths            []struct {
			Path        []string `json:"path"`
			TimeSum     float64  `json:"time_sum"`
			PriceSum    float64  `json:"price_sum"`
			DistanceSum float64  `json:"distance_sum"`
			CO2Sum      float64  `json:"CO2_sum"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Paths, 1)
	assert.Equal(t, []string{"NY", "LA"}, resp.Paths[0].Path)
	assert.Equal(t, 62.0, resp.Paths[0].TimeSum)
	assert.Equal(t, 3100.0, resp.Paths[0].PriceSum)
	assert.InDelta(t, 340.0, resp.Paths[0].CO2Sum, 1e-9)
}

func TestFindPathsNoRouteIs200(t *testing.T) {
	router := newTestRouter(t)
	rec := postJSON(t, router, "/find_paths/", map[string]any{
		"start": "NY", "goal": "Havana",
		"avoid_countries": []string{"CU"},
		"allowed_modes":   []string{"sea"},
		"prohibited_flag": "strict",
	})
	require.Equal(t, http.StatusOK, rec.Code, "no-route is a valid planning outcome, not an HTTP failure")

	var resp struct {
		Paths struct {
			Error string `json:"error"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Paths.Error)
}

func TestFindPathsInvalidRequestIs400(t *testing.T) {
	router := newTestRouter(t)
	rec := postJSON(t, router, "/find_paths/", map[string]any{
		"start": "NY", "goal": "LA",
		"allowed_modes": []string{},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "invalid_request", apiErr.Code)
	assert.Contains(t, apiErr.Message, "allowed_modes")
	assert.NotEmpty(t, apiErr.RequestID)
}

func TestFindPathsUnknownNodeIs404(t *testing.T) {
	router := newTestRouter(t)
	rec := postJSON(t, router, "/find_paths/", map[string]any{
		"start": "Atlantis", "goal": "LA",
		"allowed_modes": []string{"land"},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthAndModes(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/modes", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var modes struct {
		Modes []string `json:"modes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &modes))
	assert.ElementsMatch(t, []string{"land", "sea", "air"}, modes.Modes)
}
