package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/auth/domain"
)

const (
	CtxSubject = "auth_subject"
	CtxClaims  = "auth_claims"
)

// Subject extracts the authenticated subject from the Gin context.
// This is set by middleware.RequireAuth.
func Subject(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxSubject))
}

// Claims returns the verified token claims, or nil outside the guard.
func Claims(c *gin.Context) *domain.Claims {
	v, ok := c.Get(CtxClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*domain.Claims)
	return claims
}
