package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voice_control_system/internal/service"
)

const errInternal = "something went wrong"

// statusFromError maps domain errors to HTTP status codes. Unknown
// errors are internal; their details stay in the log.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrOwnerImmutable):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrProfileLimit),
		errors.Is(err, service.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrUnknownRoom),
		errors.Is(err, service.ErrInvalidLevel):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail logs the error and writes the JSON error body. Internal errors
// answer with a generic message.
func (h *Handler) fail(c *gin.Context, logKey string, err error, kv ...interface{}) {
	code := statusFromError(err)
	if h.log != nil {
		fields := append([]interface{}{"err", err}, kv...)
		if code == http.StatusInternalServerError {
			h.log.Errorw(logKey, fields...)
		} else {
			h.log.Infow(logKey, fields...)
		}
	}
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = errInternal
	}
	c.JSON(code, gin.H{"error": msg})
}

// badRequest writes a 400 with the given message.
func (h *Handler) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
