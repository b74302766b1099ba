package http

import "github.com/gin-gonic/gin"

// Register attaches /auth routes. guard protects the validation endpoint.
func (h *Handler) Register(rg *gin.RouterGroup, guard gin.HandlerFunc) {
	rg.POST("", h.Login)
	rg.GET("/validate", guard, h.Validate)
}
