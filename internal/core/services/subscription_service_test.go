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

func TestSubscriptionService_Toggle_Subscribe(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewSubscriptionService(users)

	actor := primitive.NewObjectID()
	channelID := primitive.NewObjectID()

	users.On("GetByID", mock.Anything, channelID).
		Return(&domain.User{ID: channelID, Subscribers: []primitive.ObjectID{}}, nil)
	users.On("AddSubscriber", mock.Anything, channelID, actor).Return(nil)
	users.On("AddSubscription", mock.Anything, actor, channelID).Return(nil)

	subscribed, err := svc.Toggle(context.Background(), actor, channelID.Hex())

	assert.NoError(t, err)
	assert.True(t, subscribed)
	users.AssertExpectations(t)
}

func TestSubscriptionService_Toggle_Unsubscribe(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewSubscriptionService(users)

	actor := primitive.NewObjectID()
	channelID := primitive.NewObjectID()

	users.On("GetByID", mock.Anything, channelID).
		Return(&domain.User{ID: channelID, Subscribers: []primitive.ObjectID{actor}}, nil)
	users.On("RemoveSubscriber", mock.Anything, channelID, actor).Return(nil)
	users.On("RemoveSubscription", mock.Anything, actor, channelID).Return(nil)

	subscribed, err := svc.Toggle(context.Background(), actor, channelID.Hex())

	assert.NoError(t, err)
	assert.False(t, subscribed)
	users.AssertExpectations(t)
}

func TestSubscriptionService_Toggle_AbsentChannel(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewSubscriptionService(users)

	channelID := primitive.NewObjectID()
	users.On("GetByID", mock.Anything, channelID).Return(nil, domain.ErrUserNotFound)

	_, err := svc.Toggle(context.Background(), primitive.NewObjectID(), channelID.Hex())

	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
	assert.Equal(t, "channel not found", appErr.Message)
}

func TestSubscriptionService_Subscribers(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewSubscriptionService(users)

	channelID := primitive.NewObjectID()
	s1 := primitive.NewObjectID()
	s2 := primitive.NewObjectID()

	users.On("GetByID", mock.Anything, channelID).
		Return(&domain.User{ID: channelID, Subscribers: []primitive.ObjectID{s1, s2}}, nil)
	users.On("ProfilesByIDs", mock.Anything, []primitive.ObjectID{s1, s2}).
		Return([]domain.Profile{{ID: s1}, {ID: s2}}, nil)

	profiles, err := svc.Subscribers(context.Background(), channelID.Hex())

	assert.NoError(t, err)
	assert.Len(t, profiles, 2)
}

func TestSubscriptionService_Subscribers_NoneYet(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewSubscriptionService(users)

	channelID := primitive.NewObjectID()
	users.On("GetByID", mock.Anything, channelID).
		Return(&domain.User{ID: channelID}, nil)

	profiles, err := svc.Subscribers(context.Background(), channelID.Hex())

	assert.NoError(t, err)
	assert.Empty(t, profiles)
	users.AssertNotCalled(t, "ProfilesByIDs", mock.Anything, mock.Anything)
}

func TestSubscriptionService_SubscribedChannels(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewSubscriptionService(users)

	userID := primitive.NewObjectID()
	ch := primitive.NewObjectID()

	users.On("GetByID", mock.Anything, userID).
		Return(&domain.User{ID: userID, Subscribed: []primitive.ObjectID{ch}}, nil)
	users.On("ProfilesByIDs", mock.Anything, []primitive.ObjectID{ch}).
		Return([]domain.Profile{{ID: ch}}, nil)

	profiles, err := svc.SubscribedChannels(context.Background(), userID.Hex())

	assert.NoError(t, err)
	assert.Len(t, profiles, 1)
}
