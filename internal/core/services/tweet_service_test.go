package services

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"viewtube/internal/core/domain"
	"viewtube/internal/core/ports"
	apperrors "viewtube/pkg/errors"
)

func TestTweetService_Create(t *testing.T) {
	tweets := new(MockTweetRepository)
	svc := NewTweetService(tweets)

	actor := primitive.NewObjectID()
	tweets.On("Create", mock.Anything, mock.MatchedBy(func(tw *domain.Tweet) bool {
		return tw.Owner == actor && tw.Content == "hello"
	})).Return(nil)

	tweet, err := svc.Create(context.Background(), actor, "hello")

	assert.NoError(t, err)
	assert.Equal(t, "hello", tweet.Content)
	tweets.AssertExpectations(t)
}

func TestTweetService_Create_ContentLimits(t *testing.T) {
	tweets := new(MockTweetRepository)
	svc := NewTweetService(tweets)
	actor := primitive.NewObjectID()

	// Exactly at the cap is allowed.
	atLimit := strings.Repeat("x", 280)
	tweets.On("Create", mock.Anything, mock.Anything).Return(nil)
	_, err := svc.Create(context.Background(), actor, atLimit)
	assert.NoError(t, err)

	// One past the cap is rejected before the store is touched.
	_, err = svc.Create(context.Background(), actor, atLimit+"x")
	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Contains(t, appErr.Message, "280")

	_, err = svc.Create(context.Background(), actor, "   ")
	appErr = apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
}

func TestTweetService_ListByUser(t *testing.T) {
	tweets := new(MockTweetRepository)
	svc := NewTweetService(tweets)

	owner := primitive.NewObjectID()
	tweets.On("ListByOwner", mock.Anything, owner, ports.Page{Skip: 0, Limit: 10}).
		Return([]domain.Tweet{{Content: "a"}, {Content: "b"}}, nil)
	tweets.On("CountByOwner", mock.Anything, owner).Return(int64(12), nil)

	result, err := svc.ListByUser(context.Background(), owner.Hex(), 1, 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(12), result.TotalTweets)
	assert.Equal(t, int64(2), result.TotalPages)
	assert.Equal(t, 1, result.CurrentPage)
	assert.Len(t, result.Tweets, 2)
}

func TestTweetService_Update_AbsentGivesNotFound(t *testing.T) {
	tweets := new(MockTweetRepository)
	svc := NewTweetService(tweets)

	tweetID := primitive.NewObjectID()
	tweets.On("GetByID", mock.Anything, tweetID).Return(nil, domain.ErrTweetNotFound)

	_, err := svc.Update(context.Background(), primitive.NewObjectID(), tweetID.Hex(), "edit")

	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

func TestTweetService_Update_ForeignOwner(t *testing.T) {
	tweets := new(MockTweetRepository)
	svc := NewTweetService(tweets)

	tweetID := primitive.NewObjectID()
	owner := primitive.NewObjectID()
	actor := primitive.NewObjectID()

	tweets.On("GetByID", mock.Anything, tweetID).
		Return(&domain.Tweet{ID: tweetID, Owner: owner, Content: "original"}, nil)

	_, err := svc.Update(context.Background(), actor, tweetID.Hex(), "edit")

	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPStatus)
	assert.Equal(t, "You are not authorized to update this tweet", appErr.Message)
	tweets.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything)
}

func TestTweetService_Delete_ForeignOwner(t *testing.T) {
	tweets := new(MockTweetRepository)
	svc := NewTweetService(tweets)

	tweetID := primitive.NewObjectID()
	tweets.On("GetByID", mock.Anything, tweetID).
		Return(&domain.Tweet{ID: tweetID, Owner: primitive.NewObjectID()}, nil)

	err := svc.Delete(context.Background(), primitive.NewObjectID(), tweetID.Hex())

	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, "You are not authorized to delete this tweet", appErr.Message)
	tweets.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestTweetService_Delete(t *testing.T) {
	tweets := new(MockTweetRepository)
	svc := NewTweetService(tweets)

	tweetID := primitive.NewObjectID()
	owner := primitive.NewObjectID()
	tweets.On("GetByID", mock.Anything, tweetID).
		Return(&domain.Tweet{ID: tweetID, Owner: owner}, nil)
	tweets.On("Delete", mock.Anything, tweetID).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), owner, tweetID.Hex()))
	tweets.AssertExpectations(t)
}
