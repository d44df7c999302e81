package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	apperrors "viewtube/pkg/errors"
	"viewtube/pkg/response"
)

func newErrorTestRouter(development bool, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandlerMiddleware(zap.NewNop().Sugar(), development))
	router.GET("/boom", handler)
	return router
}

func doGet(router *gin.Engine) (*httptest.ResponseRecorder, response.APIResponse) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	router.ServeHTTP(w, req)

	var env response.APIResponse
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestErrorHandler_AppErrorKeepsStatusAndMessage(t *testing.T) {
	router := newErrorTestRouter(false, func(c *gin.Context) {
		c.Error(apperrors.NewForbiddenError("You are not authorized to update this video"))
	})

	w, env := doGet(router)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, http.StatusForbidden, env.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "You are not authorized to update this video", env.Message)
}

func TestErrorHandler_UnknownErrorBecomesInternal(t *testing.T) {
	router := newErrorTestRouter(false, func(c *gin.Context) {
		c.Error(errors.New("connection reset by peer"))
	})

	w, env := doGet(router)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Something went wrong", env.Message)
	// Production never leaks diagnostics.
	assert.Empty(t, env.Stack)
}

func TestErrorHandler_DevelopmentSurfacesCause(t *testing.T) {
	router := newErrorTestRouter(true, func(c *gin.Context) {
		c.Error(apperrors.NewInternalError("Failed to upload video").
			WithCause(errors.New("bucket unavailable")))
	})

	_, env := doGet(router)

	assert.Equal(t, "bucket unavailable", env.Stack)
}

func TestErrorHandler_DetailsSurfaceAsErrors(t *testing.T) {
	router := newErrorTestRouter(false, func(c *gin.Context) {
		c.Error(apperrors.NewInvalidInputError("Comment text is required").
			WithDetails("comment text is required"))
	})

	w, env := doGet(router)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"comment text is required"}, env.Errors)
}

func TestErrorHandler_StoreValidationFailureIsBadRequest(t *testing.T) {
	router := newErrorTestRouter(false, func(c *gin.Context) {
		c.Error(mongo.CommandError{Code: documentValidationFailure, Message: "Document failed validation"})
	})

	w, _ := doGet(router)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RecoveryMiddleware(zap.NewNop().Sugar()))
	router.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var env response.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Something went wrong", env.Message)
}
