package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"viewtube/internal/core/ports"
	"viewtube/pkg/errors"
	"viewtube/pkg/response"
)

type TweetHandler struct {
	tweetService ports.TweetService
	paging       PageDefaults
}

func NewTweetHandler(tweetService ports.TweetService, paging PageDefaults) *TweetHandler {
	return &TweetHandler{
		tweetService: tweetService,
		paging:       paging,
	}
}

func (h *TweetHandler) SetupRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	api := router.Group("/api/v1/tweets", auth)
	{
		api.POST("", h.CreateTweet)
		api.GET("/user/:userId", h.ListTweets)
		api.PATCH("/:tweetId", h.UpdateTweet)
		api.DELETE("/:tweetId", h.DeleteTweet)
	}
}

type tweetRequest struct {
	Content string `json:"content"`
}

func (h *TweetHandler) CreateTweet(c *gin.Context) {
	actor, err := identityID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req tweetRequest
	if err := c.BindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("invalid request format"))
		return
	}

	tweet, err := h.tweetService.Create(c.Request.Context(), actor, req.Content)
	if err != nil {
		c.Error(err)
		return
	}
	response.Send(c, http.StatusCreated, tweet, "Tweet created successfully")
}

func (h *TweetHandler) ListTweets(c *gin.Context) {
	page, limit := parsePage(c, h.paging)

	result, err := h.tweetService.ListByUser(c.Request.Context(), c.Param("userId"), page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Send(c, http.StatusOK, result, "Tweets fetched successfully")
}

func (h *TweetHandler) UpdateTweet(c *gin.Context) {
	actor, err := identityID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req tweetRequest
	if err := c.BindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("invalid request format"))
		return
	}

	tweet, err := h.tweetService.Update(c.Request.Context(), actor, c.Param("tweetId"), req.Content)
	if err != nil {
		c.Error(err)
		return
	}
	response.Send(c, http.StatusOK, tweet, "Tweet updated successfully")
}

func (h *TweetHandler) DeleteTweet(c *gin.Context) {
	actor, err := identityID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.tweetService.Delete(c.Request.Context(), actor, c.Param("tweetId")); err != nil {
		c.Error(err)
		return
	}
	response.Send(c, http.StatusOK, nil, "Tweet deleted successfully")
}
