package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"reserveit/internal/service"
)

// HandleServiceError converts a business error into the HTTP response the
// wire contract prescribes. Anything unrecognized is logged server-side and
// reported as a generic 500; no storage detail crosses the boundary.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case service.IsValidationError(err):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUsernameTaken):
		ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrNotAllowedEdit), errors.Is(err, service.ErrNotAllowedDelete):
		ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInternalServer):
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
	default:
		logrus.WithError(err).Error("Unhandled internal server error")
		ErrorResponse(c, http.StatusInternalServerError, "Database error")
	}
}
