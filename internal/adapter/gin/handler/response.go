package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "user-post-service/pkg/errors"
)

// ErrorResponse represents an error response envelope.
type ErrorResponse struct {
	Error      string                `json:"error"`
	Message    string                `json:"message,omitempty"`
	Violations []apperrors.Violation `json:"violations,omitempty"`
}

// writeError converts usecase errors to the appropriate HTTP response.
// Internal causes are never exposed to the caller.
func writeError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:      "validation_error",
			Violations: verr.Violations,
		})
		return
	}

	var nferr *apperrors.NotFoundError
	if errors.As(err, &nferr) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: nferr.Error(),
		})
		return
	}

	var aerr *apperrors.AlreadyExistsError
	if errors.As(err, &aerr) {
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "already_exists",
			Message: aerr.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}

// writeBindError reports a malformed request body.
func writeBindError(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "invalid_body",
		Message: "Request body must be valid JSON",
	})
}

// writeInvalidID reports a non-numeric path id.
func writeInvalidID(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "invalid_id",
		Message: "ID must be a valid number",
	})
}
