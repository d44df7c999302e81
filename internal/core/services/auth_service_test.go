package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"viewtube/internal/core/domain"
	apperrors "viewtube/pkg/errors"
)

const testSecret = "test-secret-for-unit-tests"

func TestAuthService_TokenRoundtrip(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewAuthService(testSecret, time.Hour, users)

	userID := primitive.NewObjectID()
	users.On("GetByID", mock.Anything, userID).
		Return(&domain.User{ID: userID, Username: "alice"}, nil)

	token, err := svc.GenerateToken(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	user, err := svc.ResolveIdentity(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthService_ExpiredToken(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewAuthService(testSecret, -time.Minute, users)

	token, err := svc.GenerateToken(primitive.NewObjectID())
	assert.NoError(t, err)

	_, err = svc.ResolveIdentity(context.Background(), token)

	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
	assert.Contains(t, appErr.Message, "expired")
	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestAuthService_MalformedToken(t *testing.T) {
	svc := NewAuthService(testSecret, time.Hour, new(MockUserRepository))

	_, err := svc.ResolveIdentity(context.Background(), "not.a.token")

	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
	assert.Equal(t, "Invalid access token", appErr.Message)
}

func TestAuthService_WrongSecret(t *testing.T) {
	issuer := NewAuthService("other-secret", time.Hour, new(MockUserRepository))
	svc := NewAuthService(testSecret, time.Hour, new(MockUserRepository))

	token, err := issuer.GenerateToken(primitive.NewObjectID())
	assert.NoError(t, err)

	_, err = svc.ResolveIdentity(context.Background(), token)

	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
}

func TestAuthService_DeletedUser(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewAuthService(testSecret, time.Hour, users)

	userID := primitive.NewObjectID()
	users.On("GetByID", mock.Anything, userID).Return(nil, domain.ErrUserNotFound)

	token, err := svc.GenerateToken(userID)
	assert.NoError(t, err)

	// A syntactically valid token whose subject no longer exists is a 401,
	// indistinguishable from a bad token.
	_, err = svc.ResolveIdentity(context.Background(), token)

	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
	assert.Equal(t, "Unauthorized", appErr.Message)
}
