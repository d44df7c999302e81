package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"viewtube/internal/core/ports"
	"viewtube/pkg/response"
)

type SubscriptionHandler struct {
	subscriptionService ports.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService ports.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

func (h *SubscriptionHandler) SetupRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	api := router.Group("/api/v1/subscriptions", auth)
	{
		api.POST("/channel/:channelId", h.ToggleSubscription)
		api.GET("/channel/:channelId/subscribers", h.ListSubscribers)
		api.GET("/channel/:channelId/subscribed", h.ListSubscribedChannels)
	}
}

func (h *SubscriptionHandler) ToggleSubscription(c *gin.Context) {
	actor, err := identityID(c)
	if err != nil {
		c.Error(err)
		return
	}

	subscribed, err := h.subscriptionService.Toggle(c.Request.Context(), actor, c.Param("channelId"))
	if err != nil {
		c.Error(err)
		return
	}

	payload := gin.H{"subscribed": subscribed}
	if subscribed {
		response.Send(c, http.StatusOK, payload, "Subscribed successfully")
		return
	}
	response.Send(c, http.StatusOK, payload, "Unsubscribed successfully")
}

func (h *SubscriptionHandler) ListSubscribers(c *gin.Context) {
	profiles, err := h.subscriptionService.Subscribers(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Send(c, http.StatusOK, profiles, "Subscribers fetched successfully")
}

func (h *SubscriptionHandler) ListSubscribedChannels(c *gin.Context) {
	profiles, err := h.subscriptionService.SubscribedChannels(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Send(c, http.StatusOK, profiles, "Subscribed channels fetched successfully")
}
