package http

import (
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"viewtube/internal/core/ports"
	"viewtube/pkg/errors"
	"viewtube/pkg/response"
)

type VideoHandler struct {
	videoService ports.VideoService
	paging       PageDefaults
}

func NewVideoHandler(videoService ports.VideoService, paging PageDefaults) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
		paging:       paging,
	}
}

func (h *VideoHandler) SetupRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	api := router.Group("/api/v1/videos", auth)
	{
		api.GET("", h.ListVideos)
		api.POST("", h.PublishVideo)
		api.GET("/:videoId", h.GetVideo)
		api.PATCH("/:videoId", h.UpdateVideo)
		api.DELETE("/:videoId", h.DeleteVideo)
		api.PATCH("/:videoId/toggle-publish", h.TogglePublish)
	}
}

func (h *VideoHandler) ListVideos(c *gin.Context) {
	page, limit := parsePage(c, h.paging)

	input := ports.ListVideosInput{
		Page:     page,
		Limit:    limit,
		Query:    c.Query("query"),
		SortBy:   c.Query("sortBy"),
		SortType: c.Query("sortType"),
		UserID:   c.Query("userId"),
	}

	result, err := h.videoService.List(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	if len(result.Videos) == 0 {
		response.Send(c, http.StatusNotFound, result, "No videos found")
		return
	}
	response.Send(c, http.StatusOK, result, "Videos fetched successfully")
}

func (h *VideoHandler) PublishVideo(c *gin.Context) {
	owner, err := identityID(c)
	if err != nil {
		c.Error(err)
		return
	}

	videoPath, err := saveUpload(c, "videoFile")
	if err != nil {
		c.Error(err)
		return
	}
	if videoPath != "" {
		defer os.Remove(videoPath)
	}
	thumbnailPath, err := saveUpload(c, "thumbnail")
	if err != nil {
		c.Error(err)
		return
	}
	if thumbnailPath != "" {
		defer os.Remove(thumbnailPath)
	}

	var duration float64
	if raw := c.PostForm("duration"); raw != "" {
		duration, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			c.Error(errors.NewInvalidInputError("Invalid duration"))
			return
		}
	}

	input := ports.PublishVideoInput{
		Title:         strings.TrimSpace(c.PostForm("title")),
		Description:   c.PostForm("description"),
		Duration:      duration,
		VideoFilePath: videoPath,
		ThumbnailPath: thumbnailPath,
	}

	video, err := h.videoService.Publish(c.Request.Context(), owner, input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Send(c, http.StatusCreated, video, "Video published successfully")
}

func (h *VideoHandler) GetVideo(c *gin.Context) {
	video, err := h.videoService.Get(c.Request.Context(), c.Param("videoId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Send(c, http.StatusOK, video, "Video fetched successfully")
}

func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	actor, err := identityID(c)
	if err != nil {
		c.Error(err)
		return
	}

	thumbnailPath, err := saveUpload(c, "thumbnail")
	if err != nil {
		c.Error(err)
		return
	}
	if thumbnailPath != "" {
		defer os.Remove(thumbnailPath)
	}

	input := ports.UpdateVideoInput{ThumbnailPath: thumbnailPath}
	if raw, ok := c.GetPostForm("title"); ok {
		title := strings.TrimSpace(raw)
		input.Title = &title
	}
	if raw, ok := c.GetPostForm("description"); ok {
		input.Description = &raw
	}
	if raw, ok := c.GetPostForm("duration"); ok {
		duration, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.Error(errors.NewInvalidInputError("Invalid duration"))
			return
		}
		input.Duration = &duration
	}

	video, err := h.videoService.Update(c.Request.Context(), actor, c.Param("videoId"), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Send(c, http.StatusOK, video, "Video updated successfully")
}

func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	actor, err := identityID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.videoService.Delete(c.Request.Context(), actor, c.Param("videoId")); err != nil {
		c.Error(err)
		return
	}
	response.Send(c, http.StatusOK, nil, "Video deleted successfully")
}

func (h *VideoHandler) TogglePublish(c *gin.Context) {
	actor, err := identityID(c)
	if err != nil {
		c.Error(err)
		return
	}

	status, err := h.videoService.TogglePublish(c.Request.Context(), actor, c.Param("videoId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Send(c, http.StatusOK, status, "Video publish status toggled successfully")
}
