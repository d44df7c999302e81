package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"viewtube/internal/core/domain"
	"viewtube/internal/core/ports"
	"viewtube/pkg/response"
)

type LikeHandler struct {
	likeService ports.LikeService
}

func NewLikeHandler(likeService ports.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

func (h *LikeHandler) SetupRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	api := router.Group("/api/v1/likes", auth)
	{
		api.POST("/toggle/video/:videoId", h.toggle(domain.LikeTargetVideo, "videoId"))
		api.POST("/toggle/comment/:commentId", h.toggle(domain.LikeTargetComment, "commentId"))
		api.POST("/toggle/tweet/:tweetId", h.toggle(domain.LikeTargetTweet, "tweetId"))
		api.GET("/videos", h.LikedVideos)
	}
}

func (h *LikeHandler) toggle(target domain.LikeTarget, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := identityID(c)
		if err != nil {
			c.Error(err)
			return
		}

		result, err := h.likeService.Toggle(c.Request.Context(), actor, target, c.Param(param))
		if err != nil {
			c.Error(err)
			return
		}

		if result.Created {
			response.Send(c, http.StatusCreated, result.Like, "Like added")
			return
		}
		response.Send(c, http.StatusOK, nil, "Like removed")
	}
}

func (h *LikeHandler) LikedVideos(c *gin.Context) {
	actor, err := identityID(c)
	if err != nil {
		c.Error(err)
		return
	}

	videos, err := h.likeService.LikedVideos(c.Request.Context(), actor)
	if err != nil {
		c.Error(err)
		return
	}

	if len(videos) == 0 {
		response.Send(c, http.StatusNotFound, videos, "No liked videos found")
		return
	}
	response.Send(c, http.StatusOK, videos, "Liked videos fetched successfully")
}
