package http

import (
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/auth/service"
	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/metrics"
)

type Handler struct {
	authService *service.AuthService
	limiter     *loginLimiter
	logger      *zap.Logger
	metrics     *metrics.Metrics
}

// New builds the auth handler. Each client IP may attempt loginRate logins
// per second with bursts of loginBurst.
func New(authService *service.AuthService, loginRate float64, loginBurst int, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		authService: authService,
		limiter:     newLoginLimiter(loginRate, loginBurst),
		logger:      logger.Named("auth"),
		metrics:     metrics.New(),
	}
}
