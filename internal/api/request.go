package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	infradb "parcel_backend/internal/platform/db"
	"parcel_backend/internal/platform/http/middleware"
	jwtmw "parcel_backend/internal/platform/jwt"
	"parcel_backend/internal/platform/ownedstore"
	"parcel_backend/internal/shared/apperr"
)

// BindID decodes the named path parameter as a positive record id.
func BindID(c *gin.Context, name string) (uint, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, apperr.Validation("invalid %s: %v", name, err)
	}
	if id <= 0 {
		return 0, apperr.Validation("invalid %s: must be positive", name)
	}
	return uint(id), nil
}

// OwnerID returns the authenticated caller. When absent it writes 401 and
// returns false; handlers must stop.
func OwnerID(c *gin.Context) (uint, bool) {
	id, ok := jwtmw.UserIDFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return 0, false
	}
	return id, true
}

// RespondError maps err to a status code and writes the error body.
// Backend details are logged, never returned.
func RespondError(c *gin.Context, op string, err error) {
	logger := middleware.LoggerFrom(c.Request.Context())
	switch {
	case errors.Is(err, apperr.ErrValidation):
		logger.Warn(op+" rejected", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, ownedstore.ErrUnknownOwner):
		logger.Warn(op+" rejected: account no longer exists", "error", err)
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unknown user"})
	case errors.Is(err, infradb.ErrUnavailable):
		logger.Error(op+" failed: storage unavailable", "error", err)
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "storage unavailable"})
	default:
		logger.Error(op+" failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// BadRequest answers a body that could not be decoded.
func BadRequest(c *gin.Context, op string, err error) {
	middleware.LoggerFrom(c.Request.Context()).Warn(op+" validation failed", "error", err, "remote_addr", c.ClientIP())
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request"})
}
