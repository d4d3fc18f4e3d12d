package api

import "github.com/gin-gonic/gin"

// HealthHandler provides liveness and readiness endpoints.
//
// Readiness depends on the ephemeris being able to compute: a service that
// cannot reach its data files can accept traffic but only produce 500s.
type HealthHandler struct {
	ephePing func() error
}

// NewHealthHandler constructs a HealthHandler with the provided probe.
// Typically the probe computes a known body position at a fixed epoch.
func NewHealthHandler(ephePing func() error) *HealthHandler {
	return &HealthHandler{ephePing: ephePing}
}

// Register mounts the health and readiness endpoints.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK if the ephemeris probe succeeds, 503 otherwise.
func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/readyz", func(c *gin.Context) {
		if h.ephePing != nil && h.ephePing() != nil {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
