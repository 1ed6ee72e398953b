// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker    func() bool
	storeHealthChecker func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status        string `json:"status"`
	Database      string `json:"database"`
	TemplateStore string `json:"templateStore"`
	Timestamp     string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance. The checkers
// probe the embedded database and the recurring template store respectively.
func NewHealthController(dbHealthChecker, storeHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker:    dbHealthChecker,
		storeHealthChecker: storeHealthChecker,
	}
}

// Check handles GET /health requests.
// It reports the state of both persistence surfaces; the service answers 200
// either way so a degraded store never takes the whole API down.
func (h *HealthController) Check(c *gin.Context) {
	dbStatus := probe(h.dbHealthChecker)
	storeStatus := probe(h.storeHealthChecker)

	status := "ok"
	if dbStatus != "connected" || storeStatus != "connected" {
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:        status,
		Database:      dbStatus,
		TemplateStore: storeStatus,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	})
}

func probe(checker func() bool) string {
	if checker != nil && checker() {
		return "connected"
	}
	return "disconnected"
}
