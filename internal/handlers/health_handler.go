package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	version string
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// HealthResponse is the body of the health check
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Version string `json:"version" example:"1.0.0"`
}

// @Summary Health Check
// @Description Checks if the API is running
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Version: h.version})
}
