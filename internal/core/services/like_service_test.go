package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"viewtube/internal/core/domain"
	apperrors "viewtube/pkg/errors"
)

func TestLikeService_Toggle_CreatesWhenAbsent(t *testing.T) {
	likes := new(MockLikeRepository)
	svc := NewLikeService(likes, new(MockVideoRepository))

	actor := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	likes.On("FindByTarget", mock.Anything, domain.LikeTargetVideo, videoID, actor).
		Return(nil, domain.ErrLikeNotFound)
	likes.On("Create", mock.Anything, mock.MatchedBy(func(l *domain.Like) bool {
		return l.LikedBy == actor && l.Video != nil && *l.Video == videoID && l.Comment == nil && l.Tweet == nil
	})).Return(nil)

	result, err := svc.Toggle(context.Background(), actor, domain.LikeTargetVideo, videoID.Hex())

	assert.NoError(t, err)
	assert.True(t, result.Created)
	assert.NotNil(t, result.Like)
	likes.AssertExpectations(t)
}

func TestLikeService_Toggle_RemovesWhenPresent(t *testing.T) {
	likes := new(MockLikeRepository)
	svc := NewLikeService(likes, new(MockVideoRepository))

	actor := primitive.NewObjectID()
	tweetID := primitive.NewObjectID()
	likeID := primitive.NewObjectID()

	likes.On("FindByTarget", mock.Anything, domain.LikeTargetTweet, tweetID, actor).
		Return(&domain.Like{ID: likeID, Tweet: &tweetID, LikedBy: actor}, nil)
	likes.On("Delete", mock.Anything, likeID).Return(nil)

	result, err := svc.Toggle(context.Background(), actor, domain.LikeTargetTweet, tweetID.Hex())

	assert.NoError(t, err)
	assert.False(t, result.Created)
	assert.Nil(t, result.Like)
	likes.AssertExpectations(t)
}

func TestLikeService_Toggle_InvalidID(t *testing.T) {
	svc := NewLikeService(new(MockLikeRepository), new(MockVideoRepository))

	_, err := svc.Toggle(context.Background(), primitive.NewObjectID(), domain.LikeTargetComment, "bogus")

	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Equal(t, "Invalid comment ID", appErr.Message)
}

func TestLikeService_LikedVideos(t *testing.T) {
	likes := new(MockLikeRepository)
	videos := new(MockVideoRepository)
	svc := NewLikeService(likes, videos)

	actor := primitive.NewObjectID()
	v1 := primitive.NewObjectID()
	v2 := primitive.NewObjectID()

	likes.On("ListVideoLikesByUser", mock.Anything, actor).Return([]domain.Like{
		{Video: &v1, LikedBy: actor},
		{Video: &v2, LikedBy: actor},
	}, nil)
	videos.On("ListByIDs", mock.Anything, []primitive.ObjectID{v1, v2}).
		Return([]domain.Video{{ID: v1}, {ID: v2}}, nil)

	result, err := svc.LikedVideos(context.Background(), actor)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	videos.AssertExpectations(t)
}

func TestLikeService_LikedVideos_NoneLiked(t *testing.T) {
	likes := new(MockLikeRepository)
	videos := new(MockVideoRepository)
	svc := NewLikeService(likes, videos)

	actor := primitive.NewObjectID()
	likes.On("ListVideoLikesByUser", mock.Anything, actor).Return([]domain.Like{}, nil)

	result, err := svc.LikedVideos(context.Background(), actor)

	assert.NoError(t, err)
	assert.Empty(t, result)
	videos.AssertNotCalled(t, "ListByIDs", mock.Anything, mock.Anything)
}
