package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"viewtube/internal/core/ports"
	"viewtube/pkg/errors"
	"viewtube/pkg/response"
)

type PlaylistHandler struct {
	playlistService ports.PlaylistService
}

func NewPlaylistHandler(playlistService ports.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

func (h *PlaylistHandler) SetupRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	api := router.Group("/api/v1/playlists", auth)
	{
		api.POST("", h.CreatePlaylist)
		api.GET("/user/:userId", h.ListPlaylists)
		api.GET("/:playlistId", h.GetPlaylist)
		api.PATCH("/:playlistId", h.UpdatePlaylist)
		api.DELETE("/:playlistId", h.DeletePlaylist)
		api.PATCH("/:playlistId/videos/:videoId", h.AddVideo)
		api.DELETE("/:playlistId/videos/:videoId", h.RemoveVideo)
	}
}

type createPlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	actor, err := identityID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req createPlaylistRequest
	if err := c.BindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("invalid request format"))
		return
	}

	playlist, err := h.playlistService.Create(c.Request.Context(), actor, req.Name, req.Description)
	if err != nil {
		c.Error(err)
		return
	}
	response.Send(c, http.StatusCreated, playlist, "Playlist created successfully")
}

func (h *PlaylistHandler) ListPlaylists(c *gin.Context) {
	playlists, err := h.playlistService.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}

	if len(playlists) == 0 {
		response.Send(c, http.StatusNotFound, playlists, "No playlists found")
		return
	}
	response.Send(c, http.StatusOK, playlists, "Playlists fetched successfully")
}

func (h *PlaylistHandler) GetPlaylist(c *gin.Context) {
	playlist, err := h.playlistService.Get(c.Request.Context(), c.Param("playlistId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Send(c, http.StatusOK, playlist, "Playlist fetched successfully")
}

func (h *PlaylistHandler) UpdatePlaylist(c *gin.Context) {
	actor, err := identityID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req updatePlaylistRequest
	if err := c.BindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("invalid request format"))
		return
	}

	playlist, err := h.playlistService.Update(c.Request.Context(), actor, c.Param("playlistId"), req.Name, req.Description)
	if err != nil {
		c.Error(err)
		return
	}
	response.Send(c, http.StatusOK, playlist, "Playlist updated successfully")
}

func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	actor, err := identityID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.playlistService.Delete(c.Request.Context(), actor, c.Param("playlistId")); err != nil {
		c.Error(err)
		return
	}
	response.Send(c, http.StatusOK, nil, "Playlist deleted successfully")
}

func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	actor, err := identityID(c)
	if err != nil {
		c.Error(err)
		return
	}

	playlist, err := h.playlistService.AddVideo(c.Request.Context(), actor, c.Param("playlistId"), c.Param("videoId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Send(c, http.StatusOK, playlist, "Video added to playlist successfully")
}

func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	actor, err := identityID(c)
	if err != nil {
		c.Error(err)
		return
	}

	playlist, err := h.playlistService.RemoveVideo(c.Request.Context(), actor, c.Param("playlistId"), c.Param("videoId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Send(c, http.StatusOK, playlist, "Video removed from playlist successfully")
}
