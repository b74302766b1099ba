package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/auth"
	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/auth/service"
)

func setupRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.NewAuthService("admin", "password", "secret", time.Hour)
	token, err := svc.Issue("admin", "password")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protected", RequireAuth(svc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": auth.Subject(c), "has_claims": auth.Claims(c) != nil})
	})
	return r, token
}

func TestRequireAuth(t *testing.T) {
	r, token := setupRouter(t)

	tests := []struct {
		name   string
		header string
		cookie string
		want   int
	}{
		{name: "bearer header", header: "Bearer " + token, want: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + token, want: http.StatusOK},
		{name: "cookie", cookie: token, want: http.StatusOK},
		{name: "header wins over cookie", header: "Bearer " + token, cookie: "garbage", want: http.StatusOK},
		{name: "bad header is not rescued by cookie", header: "Bearer garbage", cookie: token, want: http.StatusUnauthorized},
		{name: "missing", want: http.StatusUnauthorized},
		{name: "basic scheme", header: "Basic YWRtaW46cGFzc3dvcmQ=", want: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer invalidToken", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: TokenCookie, Value: tt.cookie})
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.want, rr.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			if tt.want == http.StatusOK {
				assert.Equal(t, "admin", body["subject"])
				assert.Equal(t, true, body["has_claims"])
			} else {
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}
