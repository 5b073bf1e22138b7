package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkarimi-dev/finance-tracker/internal/infrastructure/adapter/api/dto"
)

// HealthHandler answers liveness probes
type HealthHandler struct{}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "ok"})
}
