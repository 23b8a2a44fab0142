package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/nouss/hackaton-leaderboard/internal/errors"
	"github.com/nouss/hackaton-leaderboard/internal/logger"
	"github.com/nouss/hackaton-leaderboard/internal/repository"
)

// statusByCode maps application error codes to HTTP status codes
var statusByCode = map[string]int{
	apperrors.ErrCodeBadRequest:    http.StatusBadRequest,
	apperrors.ErrCodeNotFound:      http.StatusNotFound,
	apperrors.ErrCodeDatabaseError: http.StatusInternalServerError,
	apperrors.ErrCodeInternalError: http.StatusInternalServerError,
}

// respondError translates an error into an HTTP response. Lookup misses
// become a bodyless 404; typed application errors are dispatched through
// statusByCode; anything else is a generic 500.
func respondError(c *gin.Context, log logger.Logger, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.Status(http.StatusNotFound)
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		status, ok := statusByCode[appErr.Code]
		if !ok {
			status = http.StatusInternalServerError
		}
		if status == http.StatusBadRequest {
			setErrorAlert(c, appErr.EntityName, appErr.ErrorKey)
		}
		if status >= http.StatusInternalServerError {
			log.Error("request failed", appErr)
		}
		c.JSON(status, appErr)
		return
	}

	log.Error("request failed", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
