package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"viewtube/internal/core/domain"
	"viewtube/internal/core/ports"
	apperrors "viewtube/pkg/errors"
	"viewtube/pkg/validation"
)

type tweetService struct {
	tweets ports.TweetRepository
}

func NewTweetService(tweets ports.TweetRepository) ports.TweetService {
	return &tweetService{tweets: tweets}
}

func (s *tweetService) Create(ctx context.Context, actor primitive.ObjectID, content string) (*domain.Tweet, error) {
	if err := validation.ValidateTweetContent(content); err != nil {
		return nil, apperrors.NewInvalidInputError(err.Error())
	}

	tweet := &domain.Tweet{
		Content: content,
		Owner:   actor,
	}
	if err := s.tweets.Create(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (s *tweetService) ListByUser(ctx context.Context, userID string, page, limit int) (*ports.TweetListResult, error) {
	owner, err := parseID("user", userID)
	if err != nil {
		return nil, err
	}

	window := ports.Page{
		Skip:  int64(page-1) * int64(limit),
		Limit: int64(limit),
	}
	tweets, err := s.tweets.ListByOwner(ctx, owner, window)
	if err != nil {
		return nil, err
	}
	total, err := s.tweets.CountByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	return &ports.TweetListResult{
		Tweets:      tweets,
		TotalTweets: total,
		TotalPages:  totalPages(total, int64(limit)),
		CurrentPage: page,
	}, nil
}

func (s *tweetService) Update(ctx context.Context, actor primitive.ObjectID, tweetID, content string) (*domain.Tweet, error) {
	id, err := parseID("tweet", tweetID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.NewInvalidInputError("Tweet content cannot be empty")
	}
	if err := validation.ValidateTweetContent(content); err != nil {
		return nil, apperrors.NewInvalidInputError(err.Error())
	}

	tweet, err := s.tweets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrTweetNotFound) {
			return nil, apperrors.NewNotFoundError("tweet")
		}
		return nil, err
	}
	if err := RequireOwner("tweet", "update", tweet.Owner, actor); err != nil {
		return nil, err
	}

	updated, err := s.tweets.UpdateContent(ctx, id, content)
	if err != nil {
		if errors.Is(err, domain.ErrTweetNotFound) {
			return nil, apperrors.NewNotFoundError("tweet")
		}
		return nil, err
	}
	return updated, nil
}

func (s *tweetService) Delete(ctx context.Context, actor primitive.ObjectID, tweetID string) error {
	id, err := parseID("tweet", tweetID)
	if err != nil {
		return err
	}

	tweet, err := s.tweets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrTweetNotFound) {
			return apperrors.NewNotFoundError("tweet")
		}
		return err
	}
	if err := RequireOwner("tweet", "delete", tweet.Owner, actor); err != nil {
		return err
	}

	return s.tweets.Delete(ctx, id)
}
