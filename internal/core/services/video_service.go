package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"viewtube/internal/core/domain"
	"viewtube/internal/core/ports"
	apperrors "viewtube/pkg/errors"
	"viewtube/pkg/validation"
)

type videoService struct {
	videos ports.VideoRepository
	media  ports.MediaStore
	logger *zap.SugaredLogger
}

func NewVideoService(videos ports.VideoRepository, media ports.MediaStore, logger *zap.SugaredLogger) ports.VideoService {
	return &videoService{
		videos: videos,
		media:  media,
		logger: logger,
	}
}

var videoSortFields = map[string]bool{
	"createdAt": true,
	"views":     true,
	"duration":  true,
	"title":     true,
}

func (s *videoService) List(ctx context.Context, input ports.ListVideosInput) (*ports.VideoListResult, error) {
	filter := ports.VideoFilter{
		TitleQuery: input.Query,
		SortBy:     input.SortBy,
		SortAsc:    input.SortType == "asc",
	}
	if filter.SortBy == "" || !videoSortFields[filter.SortBy] {
		filter.SortBy = "createdAt"
	}
	if input.UserID != "" {
		owner, err := parseID("user", input.UserID)
		if err != nil {
			return nil, err
		}
		filter.Owner = &owner
	}

	page := ports.Page{
		Skip:  int64(input.Page-1) * int64(input.Limit),
		Limit: int64(input.Limit),
	}

	videos, err := s.videos.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	total, err := s.videos.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.VideoListResult{
		CurrentPage: input.Page,
		TotalPages:  totalPages(total, int64(input.Limit)),
		TotalVideos: total,
		Videos:      videos,
	}, nil
}

func (s *videoService) Publish(ctx context.Context, owner primitive.ObjectID, input ports.PublishVideoInput) (*domain.Video, error) {
	if input.VideoFilePath == "" {
		return nil, apperrors.NewInvalidInputError("Video file is required")
	}
	if input.ThumbnailPath == "" {
		return nil, apperrors.NewInvalidInputError("Thumbnail is required")
	}
	if err := validation.ValidateVideoTitle(input.Title); err != nil {
		return nil, apperrors.NewInvalidInputError("Title and description are required").WithDetails(err.Error())
	}
	if input.Description == "" {
		return nil, apperrors.NewInvalidInputError("Title and description are required")
	}

	videoAsset, err := s.media.Store(ctx, input.VideoFilePath)
	if err != nil {
		return nil, apperrors.WrapError(err, apperrors.ErrCodeInternal,
			"Failed to upload video", 500)
	}

	thumbAsset, err := s.media.Store(ctx, input.ThumbnailPath)
	if err != nil {
		// The video asset is already durable; remove it so the failed
		// publish leaves nothing behind.
		if delErr := s.media.DeleteByID(ctx, videoAsset.PublicID); delErr != nil {
			s.logger.Errorw("orphaned video asset after failed thumbnail upload",
				"public_id", videoAsset.PublicID, "error", delErr)
		}
		return nil, apperrors.WrapError(err, apperrors.ErrCodeInternal,
			"Failed to upload thumbnail", 500)
	}

	video := &domain.Video{
		VideoFile:         videoAsset.URL,
		VideoPublicID:     videoAsset.PublicID,
		Thumbnail:         thumbAsset.URL,
		ThumbnailPublicID: thumbAsset.PublicID,
		Title:             input.Title,
		Description:       input.Description,
		Duration:          input.Duration,
		IsPublished:       true,
		Owner:             owner,
	}

	if err := s.videos.Create(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *videoService) Get(ctx context.Context, videoID string) (*domain.Video, error) {
	id, err := parseID("video", videoID)
	if err != nil {
		return nil, err
	}

	video, err := s.videos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			return nil, apperrors.NewNotFoundError("video")
		}
		return nil, err
	}
	return video, nil
}

func (s *videoService) Update(ctx context.Context, actor primitive.ObjectID, videoID string, input ports.UpdateVideoInput) (*domain.Video, error) {
	id, err := parseID("video", videoID)
	if err != nil {
		return nil, err
	}

	video, err := s.videos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			return nil, apperrors.NewNotFoundError("video")
		}
		return nil, err
	}
	if err := RequireOwner("video", "update", video.Owner, actor); err != nil {
		return nil, err
	}

	update := domain.VideoUpdate{
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
		IsPublished: input.IsPublished,
	}

	if input.ThumbnailPath != "" {
		asset, err := s.media.Store(ctx, input.ThumbnailPath)
		if err != nil {
			return nil, apperrors.WrapError(err, apperrors.ErrCodeInternal,
				"Error while uploading thumbnail", 500)
		}
		update.Thumbnail = &asset.URL
		update.ThumbnailPublicID = &asset.PublicID
	}

	updated, err := s.videos.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			return nil, apperrors.NewNotFoundError("video")
		}
		return nil, err
	}
	return updated, nil
}

func (s *videoService) Delete(ctx context.Context, actor primitive.ObjectID, videoID string) error {
	id, err := parseID("video", videoID)
	if err != nil {
		return err
	}

	video, err := s.videos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			return apperrors.NewNotFoundError("video")
		}
		return err
	}
	if err := RequireOwner("video", "delete", video.Owner, actor); err != nil {
		return err
	}

	// Hosted assets go first; a genuine media-store failure aborts the
	// database delete. Absent assets count as deleted.
	if err := s.media.DeleteByID(ctx, video.VideoPublicID); err != nil {
		return apperrors.WrapError(err, apperrors.ErrCodeInternal,
			"Failed to delete the video from media storage", 500)
	}
	if video.ThumbnailPublicID != "" {
		if err := s.media.DeleteByID(ctx, video.ThumbnailPublicID); err != nil {
			s.logger.Errorw("failed to delete thumbnail asset",
				"public_id", video.ThumbnailPublicID, "error", err)
		}
	}

	return s.videos.Delete(ctx, id)
}

func (s *videoService) TogglePublish(ctx context.Context, actor primitive.ObjectID, videoID string) (*ports.PublishStatus, error) {
	id, err := parseID("video", videoID)
	if err != nil {
		return nil, err
	}

	video, err := s.videos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			return nil, apperrors.NewNotFoundError("video")
		}
		return nil, err
	}
	if err := RequireOwner("video", "update", video.Owner, actor); err != nil {
		return nil, err
	}

	if err := s.videos.SetPublished(ctx, id, !video.IsPublished); err != nil {
		return nil, err
	}

	return &ports.PublishStatus{
		VideoID:     id.Hex(),
		IsPublished: !video.IsPublished,
	}, nil
}

// totalPages is ceil(total/limit) without floating point.
func totalPages(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
