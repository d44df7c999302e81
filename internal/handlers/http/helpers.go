package http

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"viewtube/internal/core/domain"
	"viewtube/internal/infrastructure/middleware"
	"viewtube/pkg/errors"
)

// PageDefaults holds the pagination bounds handlers resolve query
// parameters against.
type PageDefaults struct {
	DefaultLimit int
	MaxLimit     int
}

// parsePage resolves ?page and ?limit. Out-of-range or malformed values
// fall back to the defaults; limit is clamped to the configured maximum.
func parsePage(c *gin.Context, d PageDefaults) (page, limit int) {
	page = 1
	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}

	limit = d.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > d.MaxLimit {
		limit = d.MaxLimit
	}
	return page, limit
}

// identity pulls the resolved user set by the auth middleware.
func identity(c *gin.Context) (*domain.User, error) {
	user, ok := middleware.IdentityFromContext(c)
	if !ok {
		return nil, errors.NewUnauthorizedError("Unauthorized")
	}
	return user, nil
}

func identityID(c *gin.Context) (primitive.ObjectID, error) {
	user, err := identity(c)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return user.ID, nil
}

// saveUpload writes the multipart file to a temp path for the media
// store to consume. The handler must defer os.Remove on the returned
// path so the file is cleaned up even when the request fails before
// the store is invoked; the store's own remove after upload makes the
// second remove a no-op.
func saveUpload(c *gin.Context, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	dst := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(fh.Filename))
	if err := c.SaveUploadedFile(fh, dst); err != nil {
		return "", errors.NewInternalError("failed to store uploaded file").WithCause(err)
	}
	return dst, nil
}
