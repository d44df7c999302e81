package services

import (
	"context"
	"errors"

	"viewtube/internal/core/domain"
	"viewtube/internal/core/ports"
	apperrors "viewtube/pkg/errors"
)

type dashboardService struct {
	users  ports.UserRepository
	videos ports.VideoRepository
	likes  ports.LikeRepository
}

func NewDashboardService(users ports.UserRepository, videos ports.VideoRepository, likes ports.LikeRepository) ports.DashboardService {
	return &dashboardService{users: users, videos: videos, likes: likes}
}

// ChannelStats combines four independent read-only queries. There is no
// snapshot isolation across them; the numbers may be from slightly
// different instants.
func (s *dashboardService) ChannelStats(ctx context.Context, channelID string) (*domain.ChannelStats, error) {
	id, err := parseID("channel", channelID)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("channel")
		}
		return nil, err
	}

	totalVideos, err := s.videos.CountByOwner(ctx, id)
	if err != nil {
		return nil, err
	}

	totalViews, err := s.videos.SumViewsByOwner(ctx, id)
	if err != nil {
		return nil, err
	}

	videoIDs, err := s.videos.IDsByOwner(ctx, id)
	if err != nil {
		return nil, err
	}
	var totalLikes int64
	if len(videoIDs) > 0 {
		totalLikes, err = s.likes.CountByVideoIDs(ctx, videoIDs)
		if err != nil {
			return nil, err
		}
	}

	totalSubscribers, err := s.users.CountSubscribers(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.ChannelStats{
		TotalVideos:      totalVideos,
		TotalViews:       totalViews,
		TotalLikes:       totalLikes,
		TotalSubscribers: totalSubscribers,
	}, nil
}

func (s *dashboardService) ChannelVideos(ctx context.Context, channelID string) ([]domain.Video, error) {
	id, err := parseID("channel", channelID)
	if err != nil {
		return nil, err
	}
	return s.videos.ListByOwner(ctx, id)
}
