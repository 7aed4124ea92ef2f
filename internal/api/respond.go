package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/madangclub/mahjong-rating/internal/errors"
)

// respondError maps service errors onto the wire contract: validation and
// conflict failures are 400 with a machine-readable reason, missing records
// are 404, anything else is a 500.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case apperrors.ErrCodeValidationError, apperrors.ErrCodeConflict:
			c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
			return
		case apperrors.ErrCodeNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": appErr.Message})
			return
		case apperrors.ErrCodeDecodeError:
			c.String(http.StatusBadRequest, appErr.Message)
			return
		}
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
