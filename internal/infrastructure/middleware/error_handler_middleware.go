package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	apperrors "viewtube/pkg/errors"
	"viewtube/pkg/response"
)

// documentValidationFailure is the server error code raised when a write
// violates a collection's JSON-schema validator.
const documentValidationFailure = 121

// ErrorHandlerMiddleware translates handler errors into the uniform error
// envelope. AppErrors keep their status and message; store validation
// failures become 400; everything else is a 500. Diagnostic detail is only
// surfaced in development mode.
func ErrorHandlerMiddleware(logger *zap.SugaredLogger, development bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		appErr := apperrors.GetAppError(err)
		if appErr == nil {
			status := http.StatusInternalServerError
			message := "Something went wrong"
			if isValidationError(err) {
				status = http.StatusBadRequest
				message = err.Error()
			}
			appErr = apperrors.WrapError(err, apperrors.ErrCodeInternal, message, status)
		}

		logger.Errorw("request failed",
			"code", appErr.Code,
			"message", appErr.Message,
			"status", appErr.HTTPStatus,
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", err,
		)

		env := response.New(appErr.HTTPStatus, nil, appErr.Message)
		env.Errors = appErr.Details
		if development && appErr.Cause != nil {
			env.Stack = appErr.Cause.Error()
		}
		c.JSON(appErr.HTTPStatus, env)
	}
}

// isValidationError reports whether the failure came from the data-store
// validation layer, which means the caller supplied bad data.
func isValidationError(err error) bool {
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, we := range writeErr.WriteErrors {
			if we.Code == documentValidationFailure {
				return true
			}
		}
	}
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == documentValidationFailure
	}
	return false
}

// RecoveryMiddleware recovers from panics and returns proper error responses
func RecoveryMiddleware(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Errorw("panic recovered",
					"error", r,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					response.New(http.StatusInternalServerError, nil, "Something went wrong"))
			}
		}()

		c.Next()
	}
}
