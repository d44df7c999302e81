package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"viewtube/pkg/response"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) SetupRoutes(router *gin.Engine) {
	router.GET("/api/v1/healthcheck", h.Healthcheck)
}

func (h *HealthHandler) Healthcheck(c *gin.Context) {
	response.Send(c, http.StatusOK, "OK", "Health check passed")
}
