package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"viewtube/internal/core/domain"
	"viewtube/internal/core/ports"
	apperrors "viewtube/pkg/errors"
	"viewtube/pkg/response"
)

const identityKey = "identity"

// AuthMiddleware is the identity resolver: it locates a bearer credential in
// the access-token cookie or the Authorization header, verifies it, resolves
// it to a live user and attaches that user to the request. Every failure is
// a terminal 401 for the request.
func AuthMiddleware(authService ports.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if cookie, err := c.Cookie(cookieName); err == nil {
			token = cookie
		}
		if token == "" {
			header := c.GetHeader("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				token = strings.TrimPrefix(header, "Bearer ")
			}
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.New(http.StatusUnauthorized, nil, "Unauthorized"))
			return
		}

		user, err := authService.ResolveIdentity(c.Request.Context(), token)
		if err != nil {
			status := http.StatusUnauthorized
			message := "Invalid access token"
			if appErr := apperrors.GetAppError(err); appErr != nil {
				status = appErr.HTTPStatus
				message = appErr.Message
			}
			c.AbortWithStatusJSON(status, response.New(status, nil, message))
			return
		}

		c.Set(identityKey, user)
		c.Next()
	}
}

// IdentityFromContext returns the user attached by AuthMiddleware.
func IdentityFromContext(c *gin.Context) (*domain.User, bool) {
	val, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}

// SetIdentity attaches a user to the gin context; tests use it to bypass
// token verification.
func SetIdentity(c *gin.Context, user *domain.User) {
	c.Set(identityKey, user)
}
