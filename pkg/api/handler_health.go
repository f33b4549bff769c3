package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/siftstack/sift/pkg/database"
	"github.com/siftstack/sift/pkg/version"
)

const healthCheckTimeout = 5 * time.Second

// healthHandler reports database and worker pool health. Unhealthy
// database means 503; a degraded pool keeps 200 so load balancers do
// not drain API-only replicas.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:  "healthy",
		Version: version.Full(),
		Checks:  make(map[string]HealthCheck),
	}
	httpStatus := http.StatusOK

	dbHealth, err := database.Health(ctx, s.db.DB())
	resp.Database = dbHealth
	if err != nil {
		resp.Status = "unhealthy"
		resp.Checks["database"] = HealthCheck{Status: "unhealthy", Message: err.Error()}
		httpStatus = http.StatusServiceUnavailable
	} else {
		resp.Checks["database"] = HealthCheck{Status: "healthy"}
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		resp.WorkerPool = poolHealth
		if poolHealth.IsHealthy {
			resp.Checks["worker_pool"] = HealthCheck{Status: "healthy"}
		} else {
			resp.Checks["worker_pool"] = HealthCheck{Status: "degraded", Message: poolHealth.DBError}
			if resp.Status == "healthy" {
				resp.Status = "degraded"
			}
		}
	}

	c.JSON(httpStatus, resp)
}
