package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/feedbackportal/internal/server/http/dto"
)

const (
	healthOK          = "ok"
	healthUnavailable = "unavailable"
)

type HealthHandler struct {
	facade HealthFacade
}

func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.facade.HealthCheck(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: healthUnavailable})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: healthOK})
}
