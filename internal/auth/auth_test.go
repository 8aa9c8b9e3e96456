package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/atelier/server/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT("user-1", "collector@example.com", RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "collector@example.com", claims.Email)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestGenerateJWT_DefaultsToCustomerRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT("user-1", "collector@example.com", "")
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, RoleCustomer, claims.Role)
}

func TestGenerateJWT_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT("user-1", "collector@example.com", RoleCustomer)
	assert.Error(t, err)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateJWT("user-1", "collector@example.com", RoleCustomer)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(apperrors.NewHandler(nil).Middleware())
	return router
}

func TestAdminMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	router := newAuthTestRouter()
	router.GET("/admin", AdminMiddleware(), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		require.True(t, ok)
		c.JSON(200, gin.H{"user_id": userID})
	})

	t.Run("no header", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
		assert.Equal(t, 401, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(w, req)
		assert.Equal(t, 401, w.Code)
	})

	t.Run("customer token", func(t *testing.T) {
		token, err := GenerateJWT("user-1", "collector@example.com", RoleCustomer)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, 403, w.Code)
	})

	t.Run("admin token", func(t *testing.T) {
		token, err := GenerateJWT("admin-1", "curator@example.com", RoleAdmin)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), "admin-1")
	})
}

func TestOptionalAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	router := newAuthTestRouter()
	router.GET("/maybe", OptionalAuthMiddleware(), func(c *gin.Context) {
		if userID, ok := GetUserID(c); ok {
			c.JSON(200, gin.H{"user_id": userID})
			return
		}
		c.JSON(200, gin.H{"user_id": nil})
	})

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/maybe", nil))
		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"user_id":null}`, w.Body.String())
	})

	t.Run("with token", func(t *testing.T) {
		token, err := GenerateJWT("user-2", "collector@example.com", RoleCustomer)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/maybe", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"user_id":"user-2"}`, w.Body.String())
	})

	t.Run("invalid token falls back to anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/maybe", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"user_id":null}`, w.Body.String())
	})
}
