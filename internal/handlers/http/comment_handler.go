package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"viewtube/internal/core/ports"
	"viewtube/pkg/errors"
	"viewtube/pkg/response"
)

type CommentHandler struct {
	commentService ports.CommentService
	paging         PageDefaults
}

func NewCommentHandler(commentService ports.CommentService, paging PageDefaults) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		paging:         paging,
	}
}

func (h *CommentHandler) SetupRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	api := router.Group("/api/v1/comments", auth)
	{
		api.GET("/video/:videoId", h.ListComments)
		api.POST("/video/:videoId", h.AddComment)
		api.PATCH("/:commentId", h.UpdateComment)
		api.DELETE("/:commentId", h.DeleteComment)
	}
}

type commentRequest struct {
	Content string `json:"content"`
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	page, limit := parsePage(c, h.paging)

	comments, err := h.commentService.ListByVideo(c.Request.Context(), c.Param("videoId"), page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	if len(comments) == 0 {
		response.Send(c, http.StatusNotFound, comments, "No comments found")
		return
	}
	response.Send(c, http.StatusOK, comments, "Comments fetched successfully")
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	actor, err := identityID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req commentRequest
	if err := c.BindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("invalid request format"))
		return
	}

	comment, err := h.commentService.Add(c.Request.Context(), actor, c.Param("videoId"), req.Content)
	if err != nil {
		c.Error(err)
		return
	}
	response.Send(c, http.StatusCreated, comment, "Comment added successfully")
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	actor, err := identityID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req commentRequest
	if err := c.BindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("invalid request format"))
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), actor, c.Param("commentId"), req.Content)
	if err != nil {
		c.Error(err)
		return
	}
	response.Send(c, http.StatusOK, comment, "Comment updated successfully")
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	actor, err := identityID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), actor, c.Param("commentId")); err != nil {
		c.Error(err)
		return
	}
	response.Send(c, http.StatusOK, nil, "Comment deleted successfully")
}
