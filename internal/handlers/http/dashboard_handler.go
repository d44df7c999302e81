package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"viewtube/internal/core/ports"
	"viewtube/pkg/response"
)

type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) SetupRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	api := router.Group("/api/v1/dashboard", auth)
	{
		api.GET("/channel/:channelId/stats", h.ChannelStats)
		api.GET("/channel/:channelId/videos", h.ChannelVideos)
	}
}

func (h *DashboardHandler) ChannelStats(c *gin.Context) {
	stats, err := h.dashboardService.ChannelStats(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Send(c, http.StatusOK, stats, "Channel stats fetched successfully")
}

func (h *DashboardHandler) ChannelVideos(c *gin.Context) {
	videos, err := h.dashboardService.ChannelVideos(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		c.Error(err)
		return
	}

	if len(videos) == 0 {
		response.Send(c, http.StatusNotFound, videos, "No videos found")
		return
	}
	response.Send(c, http.StatusOK, videos, "Channel videos fetched successfully")
}
