// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docuintelli/backend/internal/integration/entrypoint/dto"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthCheck func() bool
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthCheck func() bool) *HealthController {
	return &HealthController{
		dbHealthCheck: dbHealthCheck,
	}
}

// Check handles GET /health requests.
func (c *HealthController) Check(ctx *gin.Context) {
	status := "ok"
	statusCode := http.StatusOK

	if c.dbHealthCheck != nil && !c.dbHealthCheck() {
		status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	ctx.JSON(statusCode, dto.HealthResponse{
		Status:  status,
		Service: "docuintelli-backend",
	})
}
