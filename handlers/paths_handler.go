package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/LSUDOKO/GlobalRoute-Navigator/models"
	"github.com/LSUDOKO/GlobalRoute-Navigator/services"
)

type PathsHandler struct {
	planner   *services.PlannerService
	graphPath string
}

func NewPathsHandler(planner *services.PlannerService, graphPath string) *PathsHandler {
	return &PathsHandler{
		planner:   planner,
		graphPath: graphPath,
	}
}

func (h *PathsHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/find_paths/", h.FindPaths)
	router.POST("/reload", h.Reload)
	router.GET("/modes", h.GetModes)
	router.GET("/health", h.Health)
	router.GET("/", h.Root)
}

func (h *PathsHandler) FindPaths(c *gin.Context) {
	var req models.PathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ApiError{
			Code:      "invalid_request",
			Message:   "invalid request body: " + err.Error(),
			RequestID: uuid.NewString(),
		})
		return
	}

	resp, err := h.planner.FindPaths(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// writeError maps the planner's error taxonomy onto HTTP statuses. The
// no-route outcome never reaches here; it is a 200-level response.
func (h *PathsHandler) writeError(c *gin.Context, err error) {
	requestID := uuid.NewString()

	var invalid *models.InvalidRequestError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, models.ApiError{
			Code:      "invalid_request",
			Message:   invalid.Error(),
			RequestID: requestID,
		})
		return
	}

	var unknown *models.UnknownNodeError
	if errors.As(err, &unknown) {
		c.JSON(http.StatusNotFound, models.ApiError{
			Code:      "unknown_node",
			Message:   unknown.Error(),
			RequestID: requestID,
		})
		return
	}

	var timeout *models.SearchTimeoutError
	if errors.As(err, &timeout) {
		c.JSON(http.StatusServiceUnavailable, models.ApiError{
			Code:      "search_timeout",
			Message:   timeout.Error(),
			RequestID: requestID,
		})
		return
	}

	if errors.Is(err, context.Canceled) {
		// Client went away; nothing useful to send.
		c.Status(499)
		return
	}

	c.JSON(http.StatusInternalServerError, models.ApiError{
		Code:      "internal_error",
		Message:   err.Error(),
		RequestID: requestID,
	})
}

// Reload rebuilds the graph from the configured dataset and swaps it in.
// On a load failure the previous graph keeps serving.
func (h *PathsHandler) Reload(c *gin.Context) {
	if err := h.planner.Reload(h.graphPath); err != nil {
		c.JSON(http.StatusBadRequest, models.ApiError{
			Code:      "load_error",
			Message:   err.Error(),
			RequestID: uuid.NewString(),
		})
		return
	}
	g := h.planner.Graph()
	c.JSON(http.StatusOK, gin.H{
		"status": "reloaded",
		"nodes":  g.NodeCount(),
		"edges":  g.EdgeCount(),
	})
}

func (h *PathsHandler) GetModes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"modes": models.AllModes(),
	})
}

func (h *PathsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "GlobalRoute Navigator API is running",
	})
}

func (h *PathsHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the GlobalRoute Navigator API",
		"endpoints": gin.H{
			"POST /find_paths/": "Find optimal paths between locations",
			"GET /modes":        "List supported transport modes",
			"GET /health":       "Check API health status",
			"GET /metrics":      "Prometheus metrics",
		},
	})
}
