package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devconnect/devconnect-api/pkg/helpers"
	"github.com/devconnect/devconnect-api/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth verifies the x-auth-token header and injects the authenticated user id
// into the Gin context. Missing and invalid tokens both answer 401.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("x-auth-token")
		if token == "" {
			response.Error[any](c, http.StatusUnauthorized, "No token! Authorization error.", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "Invalid token!", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.User.ID)
		c.Next()
	}
}
