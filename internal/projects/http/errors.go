package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/api/http/middleware"
	containerdomain "github.com/GoSim-25-26J-441/stackdeck-backend/internal/containers/domain"
	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/projects/domain"
)

// writeError maps service errors onto status codes. Server side failures are
// logged in full; the client only sees names, never OS error text.
func (h *Handler) writeError(c *gin.Context, err error) {
	status, msg := classify(err)

	if status >= http.StatusInternalServerError {
		fields := []zap.Field{
			zap.String("request_id", middleware.GetRequestID(c.Request.Context())),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		}
		var execErr *containerdomain.ExecError
		if errors.As(err, &execErr) {
			fields = append(fields, zap.String("output", execErr.Output))
		}
		var fsErr *domain.Error
		if errors.As(err, &fsErr) && fsErr.Path != "" {
			fields = append(fields, zap.String("fs_path", fsErr.Path))
		}
		h.logger.Error("request failed", fields...)
	}

	_ = c.Error(err)
	c.JSON(status, gin.H{"error": msg})
}

func classify(err error) (int, string) {
	var execErr *containerdomain.ExecError
	var fsErr *domain.Error

	switch {
	case errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrFileNotFound):
		return http.StatusNotFound, err.Error()

	case errors.Is(err, domain.ErrInvalidPath),
		errors.Is(err, domain.ErrProjectAlreadyExists),
		errors.Is(err, containerdomain.ErrAlreadyRunning),
		errors.Is(err, containerdomain.ErrAlreadyStopped),
		errors.Is(err, containerdomain.ErrNotRunning):
		return http.StatusBadRequest, err.Error()

	case errors.As(err, &execErr):
		return http.StatusInternalServerError, fmt.Sprintf("%s '%s'", containerdomain.ErrExecFailed, execErr.Command)

	case errors.As(err, &fsErr):
		return http.StatusInternalServerError, fsErr.Error()
	}

	return http.StatusInternalServerError, "internal server error"
}
