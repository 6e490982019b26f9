package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elham715/Exam-System/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gateRouter(authService *services.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AccessGate(authService, []string{"/api/v1/admin"}))
	r.GET("/api/v1/admin/exams", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin_id": c.GetUint("admin_id")})
	})
	r.GET("/api/v1/exams/1/take", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAccessGatePassesPublicPaths(t *testing.T) {
	r := gateRouter(services.NewAuthService(nil, "test-secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/exams/1/take", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAccessGateRejectsMissingToken(t *testing.T) {
	r := gateRouter(services.NewAuthService(nil, "test-secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/exams", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAccessGateRejectsMalformedHeader(t *testing.T) {
	r := gateRouter(services.NewAuthService(nil, "test-secret"))

	for _, header := range []string{"Basic abc123", "Bearer", "justatoken"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/exams", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAccessGateRejectsForgedToken(t *testing.T) {
	r := gateRouter(services.NewAuthService(nil, "test-secret"))

	other := services.NewAuthService(nil, "different-secret")
	token, err := other.GenerateToken(1)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/exams", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAccessGateAcceptsValidToken(t *testing.T) {
	authService := services.NewAuthService(nil, "test-secret")
	r := gateRouter(authService)

	token, err := authService.GenerateToken(42)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/exams", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"admin_id":42`)
}
