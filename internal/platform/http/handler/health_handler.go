// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CheckResult reports the outcome of a single dependency check.
type CheckResult struct {
	Status string `json:"status"`
	// Latency is the check duration in milliseconds, present on success.
	Latency int64 `json:"latency,omitempty"`
	// Error carries the failure reason, present on failure.
	Error string `json:"error,omitempty"`
}

// HealthResponse is the body of GET /health. Load balancers and
// orchestrators use the status code; the payload is for humans and
// monitoring.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Uptime    float64                `json:"uptime"`
	Checks    map[string]CheckResult `json:"checks"`
}

// HealthHandler serves the unauthenticated health endpoint.
type HealthHandler struct {
	db      *gorm.DB
	started time.Time
}

// NewHealthHandler creates a HealthHandler; uptime counts from now.
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db, started: time.Now()}
}

// Health handles GET /health. Returns 200 with per-check latencies when
// everything is reachable, 503 when any check fails so load balancers
// can route traffic elsewhere. Responses are never cached.
func (h *HealthHandler) Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.started).Seconds(),
		Checks:    map[string]CheckResult{},
	}

	start := time.Now()
	if err := h.pingDatabase(c); err != nil {
		slog.Error("health check failed: database unreachable", "error", err)
		resp.Status = "unhealthy"
		resp.Checks["database"] = CheckResult{Status: "unhealthy", Error: err.Error()}
	} else {
		resp.Checks["database"] = CheckResult{
			Status:  "healthy",
			Latency: time.Since(start).Milliseconds(),
		}
	}

	status := http.StatusOK
	if resp.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}

func (h *HealthHandler) pingDatabase(c *gin.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(c.Request.Context())
}
