package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/auth"
	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/auth/domain"
)

// TokenCookie is the cookie the web UI stores its token in.
const TokenCookie = "token"

// TokenVerifier checks a raw token.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}

// RequireAuth validates the request token and stores the claims in the
// context. The Authorization header wins over the cookie.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			c.Abort()
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrInvalidToken.Error()})
			c.Abort()
			return
		}

		c.Set(auth.CtxSubject, claims.Subject)
		c.Set(auth.CtxClaims, claims)

		c.Next()
	}
}

// extractToken tries the Bearer header first, then the token cookie.
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.EqualFold(bearerToken[:7], "Bearer ") {
		if t := strings.TrimSpace(bearerToken[7:]); t != "" {
			return t
		}
	}

	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return strings.TrimSpace(cookie)
	}
	return ""
}
