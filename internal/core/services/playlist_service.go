package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"viewtube/internal/core/domain"
	"viewtube/internal/core/ports"
	apperrors "viewtube/pkg/errors"
	"viewtube/pkg/validation"
)

type playlistService struct {
	playlists ports.PlaylistRepository
	videos    ports.VideoRepository
}

func NewPlaylistService(playlists ports.PlaylistRepository, videos ports.VideoRepository) ports.PlaylistService {
	return &playlistService{playlists: playlists, videos: videos}
}

func (s *playlistService) Create(ctx context.Context, actor primitive.ObjectID, name, description string) (*domain.Playlist, error) {
	if err := validation.ValidatePlaylistName(name); err != nil || description == "" {
		appErr := apperrors.NewInvalidInputError("Name and description are required")
		if err != nil {
			appErr.WithDetails(err.Error())
		}
		return nil, appErr
	}

	playlist := &domain.Playlist{
		Name:        name,
		Description: description,
		Owner:       actor,
		Videos:      []primitive.ObjectID{},
	}
	if err := s.playlists.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *playlistService) ListByUser(ctx context.Context, userID string) ([]domain.Playlist, error) {
	owner, err := parseID("user", userID)
	if err != nil {
		return nil, err
	}
	return s.playlists.ListByOwner(ctx, owner)
}

func (s *playlistService) Get(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	id, err := parseID("playlist", playlistID)
	if err != nil {
		return nil, err
	}

	playlist, err := s.playlists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPlaylistNotFound) {
			return nil, apperrors.NewNotFoundError("playlist")
		}
		return nil, err
	}
	return playlist, nil
}

func (s *playlistService) AddVideo(ctx context.Context, actor primitive.ObjectID, playlistID, videoID string) (*domain.Playlist, error) {
	pid, err := parseID("playlist", playlistID)
	if err != nil {
		return nil, err
	}
	vid, err := parseID("video", videoID)
	if err != nil {
		return nil, err
	}

	playlist, err := s.playlists.GetByID(ctx, pid)
	if err != nil {
		if errors.Is(err, domain.ErrPlaylistNotFound) {
			return nil, apperrors.NewNotFoundError("playlist")
		}
		return nil, err
	}

	if _, err := s.videos.GetByID(ctx, vid); err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			return nil, apperrors.NewNotFoundError("video")
		}
		return nil, err
	}

	if err := RequireOwner("playlist", "update", playlist.Owner, actor); err != nil {
		return nil, err
	}

	if playlist.Contains(vid) {
		return nil, apperrors.NewInvalidInputError("Video already in the playlist")
	}

	updated, err := s.playlists.AddVideo(ctx, pid, vid)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *playlistService) RemoveVideo(ctx context.Context, actor primitive.ObjectID, playlistID, videoID string) (*domain.Playlist, error) {
	pid, err := parseID("playlist", playlistID)
	if err != nil {
		return nil, err
	}
	vid, err := parseID("video", videoID)
	if err != nil {
		return nil, err
	}

	playlist, err := s.playlists.GetByID(ctx, pid)
	if err != nil {
		if errors.Is(err, domain.ErrPlaylistNotFound) {
			return nil, apperrors.NewNotFoundError("playlist")
		}
		return nil, err
	}

	if err := RequireOwner("playlist", "update", playlist.Owner, actor); err != nil {
		return nil, err
	}

	if !playlist.Contains(vid) {
		return nil, apperrors.NewInvalidInputError("Video not found in the playlist")
	}

	updated, err := s.playlists.RemoveVideo(ctx, pid, vid)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *playlistService) Update(ctx context.Context, actor primitive.ObjectID, playlistID string, name, description *string) (*domain.Playlist, error) {
	id, err := parseID("playlist", playlistID)
	if err != nil {
		return nil, err
	}

	playlist, err := s.playlists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPlaylistNotFound) {
			return nil, apperrors.NewNotFoundError("playlist")
		}
		return nil, err
	}
	if err := RequireOwner("playlist", "update", playlist.Owner, actor); err != nil {
		return nil, err
	}

	updated, err := s.playlists.UpdateDetails(ctx, id, name, description)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *playlistService) Delete(ctx context.Context, actor primitive.ObjectID, playlistID string) error {
	id, err := parseID("playlist", playlistID)
	if err != nil {
		return err
	}

	playlist, err := s.playlists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPlaylistNotFound) {
			return apperrors.NewNotFoundError("playlist")
		}
		return err
	}
	if err := RequireOwner("playlist", "delete", playlist.Owner, actor); err != nil {
		return err
	}

	return s.playlists.Delete(ctx, id)
}
