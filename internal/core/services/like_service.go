package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"viewtube/internal/core/domain"
	"viewtube/internal/core/ports"
)

type likeService struct {
	likes  ports.LikeRepository
	videos ports.VideoRepository
}

func NewLikeService(likes ports.LikeRepository, videos ports.VideoRepository) ports.LikeService {
	return &likeService{likes: likes, videos: videos}
}

// Toggle flips the actor's like on the target. Present likes are removed,
// absent ones created; two calls always return to the starting state.
func (s *likeService) Toggle(ctx context.Context, actor primitive.ObjectID, target domain.LikeTarget, targetID string) (*ports.LikeToggleResult, error) {
	id, err := parseID(string(target), targetID)
	if err != nil {
		return nil, err
	}

	existing, err := s.likes.FindByTarget(ctx, target, id, actor)
	if err != nil && !errors.Is(err, domain.ErrLikeNotFound) {
		return nil, err
	}

	if existing != nil {
		if err := s.likes.Delete(ctx, existing.ID); err != nil {
			return nil, err
		}
		return &ports.LikeToggleResult{Created: false}, nil
	}

	like := &domain.Like{LikedBy: actor}
	switch target {
	case domain.LikeTargetVideo:
		like.Video = &id
	case domain.LikeTargetComment:
		like.Comment = &id
	case domain.LikeTargetTweet:
		like.Tweet = &id
	}

	if err := s.likes.Create(ctx, like); err != nil {
		return nil, err
	}
	return &ports.LikeToggleResult{Like: like, Created: true}, nil
}

func (s *likeService) LikedVideos(ctx context.Context, actor primitive.ObjectID) ([]domain.Video, error) {
	likes, err := s.likes.ListVideoLikesByUser(ctx, actor)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(likes))
	for _, like := range likes {
		if like.Video != nil {
			ids = append(ids, *like.Video)
		}
	}
	if len(ids) == 0 {
		return []domain.Video{}, nil
	}

	return s.videos.ListByIDs(ctx, ids)
}
