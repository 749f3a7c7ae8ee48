package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/vikash-vatika/vatika-api/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(captured **models.Identity) *gin.Engine {
	router := gin.New()
	router.GET("/protected", RequireAuth(), func(ctx *gin.Context) {
		*captured = CurrentIdentity(ctx)
		ctx.Status(http.StatusOK)
	})
	return router
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("missing header", func(t *testing.T) {
		var identity *models.Identity
		router := newAuthRouter(&identity)

		req := httptest.NewRequest("GET", "/protected", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, identity)
	})

	t.Run("garbage token", func(t *testing.T) {
		var identity *models.Identity
		router := newAuthRouter(&identity)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, identity)
	})

	t.Run("token signed with the wrong secret", func(t *testing.T) {
		var identity *models.Identity
		router := newAuthRouter(&identity)

		tokenString := signToken(t, "other-secret", jwt.MapClaims{
			"user_id": 7,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tokenString)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, identity)
	})

	t.Run("expired token", func(t *testing.T) {
		var identity *models.Identity
		router := newAuthRouter(&identity)

		tokenString := signToken(t, "test-secret", jwt.MapClaims{
			"user_id": 7,
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tokenString)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, identity)
	})

	t.Run("valid token exposes the identity", func(t *testing.T) {
		var identity *models.Identity
		router := newAuthRouter(&identity)

		tokenString := signToken(t, "test-secret", jwt.MapClaims{
			"user_id":  7,
			"username": "priya",
			"role":     models.RoleUser,
			"iat":      time.Now().Unix(),
			"exp":      time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tokenString)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotNil(t, identity)
		assert.Equal(t, uint(7), identity.UserID)
		assert.Equal(t, "priya", identity.Username)
		assert.Equal(t, models.RoleUser, identity.Role)
	})
}
