package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/auth/middleware"
	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/auth/service"
)

func setupRouter(burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewAuthService("admin", "password", "secret", time.Hour)
	h := New(svc, 0.001, burst, zap.NewNop())

	r := gin.New()
	h.Register(r.Group("/auth"), middleware.RequireAuth(svc))
	return r
}

func login(r *gin.Engine, body string) *httptest.ResponseRecorder {
	return loginFrom(r, "192.0.2.1", body)
}

func loginFrom(r *gin.Engine, ip, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = ip + ":40000"
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestLogin(t *testing.T) {
	r := setupRouter(100)

	t.Run("authenticate", func(t *testing.T) {
		rr := login(r, `{"user":"admin","pw":"password"}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["token"])
	})

	t.Run("missing data", func(t *testing.T) {
		rr := login(r, `{}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rr := login(r, `not json`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		rr := login(r, `{"user":"admin","pw":"wrong"}`)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"wrong credentials"}`, rr.Body.String())
	})
}

func TestLogin_Throttled(t *testing.T) {
	r := setupRouter(2)

	assert.Equal(t, http.StatusUnauthorized, login(r, `{"user":"admin","pw":"a"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, login(r, `{"user":"admin","pw":"b"}`).Code)

	rr := login(r, `{"user":"admin","pw":"password"}`)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

func TestLogin_ThrottleIsPerClient(t *testing.T) {
	r := setupRouter(2)

	for i := 0; i < 5; i++ {
		loginFrom(r, "203.0.113.9", `{"user":"admin","pw":"junk"}`)
	}
	assert.Equal(t, http.StatusTooManyRequests, loginFrom(r, "203.0.113.9", `{"user":"admin","pw":"password"}`).Code)

	rr := loginFrom(r, "10.0.0.2", `{"user":"admin","pw":"password"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestValidate(t *testing.T) {
	r := setupRouter(100)

	rr := login(r, `{"user":"admin","pw":"password"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/validate", nil)
		req.Header.Set("Authorization", "Bearer "+resp["token"])
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"ok":true,"subject":"admin"}`, rr.Body.String())
	})

	t.Run("no token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/validate", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/validate", nil)
		req.Header.Set("Authorization", "Bearer invalidToken")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
