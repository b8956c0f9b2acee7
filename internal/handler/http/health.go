package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse is the body of the health check.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health handles GET /api/health.
func Health(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "ReserveIT backend is running",
	})
}
