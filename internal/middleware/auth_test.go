package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/middleware"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/utils"
)

const testSecret = "test-secret"

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(testSecret), func(c *gin.Context) {
		memberID, ok := middleware.GetMemberIDFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "member id missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"memberID": memberID})
	})
	return r
}

func TestAuthMiddleware_AcceptsSignedToken(t *testing.T) {
	r := authTestRouter()
	token, err := utils.GenerateJWT("m1", testSecret, time.Hour, "test-issuer")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"memberID":"m1"`)
}

func TestAuthMiddleware_AcceptsTokenInQuery(t *testing.T) {
	r := authTestRouter()
	token, err := utils.GenerateJWT("m1", testSecret, time.Hour, "test-issuer")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_RejectsMissingToken(t *testing.T) {
	r := authTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RejectsExpiredToken(t *testing.T) {
	r := authTestRouter()
	token, err := utils.GenerateJWT("m1", testSecret, -time.Minute, "test-issuer")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token has expired")
}

func TestAuthMiddleware_RejectsForeignSignature(t *testing.T) {
	r := authTestRouter()
	token, err := utils.GenerateJWT("m1", "other-secret", time.Hour, "test-issuer")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
