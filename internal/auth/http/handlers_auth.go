package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/auth"
	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/auth/domain"
)

// Login exchanges the admin credentials for a token.
func (h *Handler) Login(c *gin.Context) {
	if !h.limiter.Allow(c.ClientIP()) {
		h.metrics.LoginThrottledTotal.Inc()
		h.logger.Warn("login throttled", zap.String("client_ip", c.ClientIP()))
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts"})
		return
	}

	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingCredentials.Error()})
		return
	}

	token, err := h.authService.Issue(req.User, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, domain.TokenResponse{Token: token})
	case errors.Is(err, domain.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrWrongCredentials):
		h.logger.Warn("login rejected", zap.String("user", req.User), zap.String("client_ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		h.logger.Error("token creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": domain.ErrTokenCreation.Error()})
	}
}

// Validate answers 200 for any request that passed the guard.
func (h *Handler) Validate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "subject": auth.Subject(c)})
}
