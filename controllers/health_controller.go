// controllers/health_controller.go
package controllers

import (
	"net/http"
	"time"

	"roamsafe/database"
	"roamsafe/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type HealthController struct {
	redisClient *redis.Client
	startedAt   time.Time
}

func NewHealthController(redisClient *redis.Client) *HealthController {
	return &HealthController{
		redisClient: redisClient,
		startedAt:   time.Now(),
	}
}

// Health reports service status. Returns 503 when any dependency is down so
// load balancers can take the instance out of rotation.
func (hc *HealthController) Health(c *gin.Context) {
	services := map[string]string{
		"database": "healthy",
		"redis":    "healthy",
	}

	if !database.IsConnected() {
		services["database"] = "unhealthy"
	}
	if hc.redisClient == nil || hc.redisClient.Ping(c.Request.Context()).Err() != nil {
		services["redis"] = "unhealthy"
	}

	uptime := time.Since(hc.startedAt).Round(time.Second).String()
	response := utils.HealthCheckResponse(services, "1.0.0", uptime)

	status := http.StatusOK
	if response.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, response)
}
