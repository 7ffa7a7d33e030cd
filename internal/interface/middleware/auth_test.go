package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devconnect/devconnect-api/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authRouter(jwt *helpers.JWTManager) *gin.Engine {
	r := gin.New()
	r.GET("/private", Auth(jwt), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CtxUserIDKey))
	})
	return r
}

func TestAuth_MissingHeader(t *testing.T) {
	r := authRouter(helpers.NewJWTManager("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidTokenInjectsUserID(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := authRouter(jwt)

	token, _, err := jwt.GenerateToken("user-42")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("x-auth-token", token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", w.Body.String())
}

func TestAuth_ForeignSecretRejected(t *testing.T) {
	r := authRouter(helpers.NewJWTManager("secret", time.Hour))

	foreign := helpers.NewJWTManager("other-secret", time.Hour)
	token, _, err := foreign.GenerateToken("user-42")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("x-auth-token", token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ExpiredTokenRejected(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour)
	r := authRouter(jwt)

	expired := helpers.NewJWTManager("secret", -time.Minute)
	token, _, err := expired.GenerateToken("user-42")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("x-auth-token", token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
