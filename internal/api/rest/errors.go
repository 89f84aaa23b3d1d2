package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cfd-platform/cfd-backend/internal/api/shared/errors"
	"github.com/cfd-platform/cfd-backend/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errors.NewValidationError(message))
}

// respondForbidden responds with a forbidden error
func respondForbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, errors.NewForbiddenError(message))
}

// respondError classifies err and responds with the matching status.
// Internal errors are logged and answered with an opaque message.
func respondError(c *gin.Context, err error, message string) {
	status, apiErr := errors.FromError(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path),
		)
		if status == http.StatusInternalServerError {
			apiErr = errors.NewInternalError(message)
		}
	}
	c.JSON(status, apiErr)
}
