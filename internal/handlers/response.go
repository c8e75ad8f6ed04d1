package handlers

import (
	"errors"
	"net/http"

	"runwalk_timer/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK      = "ok"
	statusStarted = "started"
	statusPaused  = "paused"
	statusReset   = "reset"

	errInvalidBodyPref = "invalid body: "
	errStorage         = "storage failure"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondServiceError maps validation errors to 400 and anything else to 500.
func (h *Handler) respondServiceError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if isValidationErr(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, errStorage, logKey, err, kv...)
}

func isValidationErr(err error) bool {
	return errors.Is(err, service.ErrInvalidDateKey) ||
		errors.Is(err, service.ErrInvalidRange) ||
		errors.Is(err, service.ErrUnknownSettingField)
}
