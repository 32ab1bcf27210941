package api

import (
	"alcyxob/workout-sessions/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// respondWithServiceError maps a WorkoutService error kind onto an HTTP status.
// Unclassified errors are logged and hidden behind a generic message.
func respondWithServiceError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAuthorization):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		abortWithError(c, http.StatusConflict, err.Error())
	default:
		log.WithError(err).WithField("request_id", c.GetString(ContextRequestIDKey)).Errorf("%s failed", action)
		abortWithError(c, http.StatusInternalServerError, "Failed to "+action+".")
	}
}
