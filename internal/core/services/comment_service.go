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

type commentService struct {
	comments ports.CommentRepository
}

func NewCommentService(comments ports.CommentRepository) ports.CommentService {
	return &commentService{comments: comments}
}

func (s *commentService) ListByVideo(ctx context.Context, videoID string, page, limit int) ([]domain.Comment, error) {
	id, err := parseID("video", videoID)
	if err != nil {
		return nil, err
	}

	window := ports.Page{
		Skip:  int64(page-1) * int64(limit),
		Limit: int64(limit),
	}
	return s.comments.ListByVideo(ctx, id, window)
}

func (s *commentService) Add(ctx context.Context, actor primitive.ObjectID, videoID, content string) (*domain.Comment, error) {
	id, err := parseID("video", videoID)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateCommentContent(content); err != nil {
		return nil, apperrors.NewInvalidInputError("Comment text is required").WithDetails(err.Error())
	}

	comment := &domain.Comment{
		Content: content,
		Video:   id,
		Owner:   actor,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Update(ctx context.Context, actor primitive.ObjectID, commentID, content string) (*domain.Comment, error) {
	id, err := parseID("comment", commentID)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateCommentContent(content); err != nil {
		return nil, apperrors.NewInvalidInputError("Comment text is required").WithDetails(err.Error())
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			return nil, apperrors.NewNotFoundError("comment")
		}
		return nil, err
	}
	if err := RequireOwner("comment", "update", comment.Owner, actor); err != nil {
		return nil, err
	}

	updated, err := s.comments.UpdateContent(ctx, id, content)
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			return nil, apperrors.NewNotFoundError("comment")
		}
		return nil, err
	}
	return updated, nil
}

func (s *commentService) Delete(ctx context.Context, actor primitive.ObjectID, commentID string) error {
	id, err := parseID("comment", commentID)
	if err != nil {
		return err
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			return apperrors.NewNotFoundError("comment")
		}
		return err
	}
	if err := RequireOwner("comment", "delete", comment.Owner, actor); err != nil {
		return err
	}

	return s.comments.Delete(ctx, id)
}
