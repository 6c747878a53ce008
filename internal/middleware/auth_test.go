package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubhq/membership/internal/auth"
	appConfig "github.com/clubhq/membership/internal/config"
)

const testSecret = "test-secret"

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/members", RequireAuth(testSecret), RequireAdmin(), func(c *gin.Context) {
		c.String(http.StatusCreated, "created")
	})
	return r
}

func issueToken(t *testing.T, role string) string {
	t.Helper()
	token, err := auth.IssueToken(appConfig.AuthConfig{
		Secret:   testSecret,
		TokenTTL: time.Hour,
		Issuer:   "membership",
	}, "tester", role)
	require.NoError(t, err)
	return token
}

func TestRequireAuth(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/members", nil)
		authRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	})

	t.Run("not a bearer token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/members", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwdw==")
		authRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/members", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		authRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("admin role passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/members", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, auth.RoleAdmin))
		authRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("non-admin role forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/members", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, "viewer"))
		authRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "FORBIDDEN")
	})
}

func TestClaimsFrom(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Nil(t, ClaimsFrom(c))

	claims := &auth.Claims{Role: auth.RoleAdmin}
	c.Set(ClaimsKey, claims)
	assert.Equal(t, claims, ClaimsFrom(c))
}
