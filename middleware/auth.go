package middleware

import (
	"net/http"
	"strings"
	"time"

	"Wayfarer/pkg/context"
	"Wayfarer/pkg/jwt"
	"Wayfarer/pkg/response"

	"github.com/gin-gonic/gin"
)

// 剩余有效期低于该值时下发新 token
const refreshWindow = 5 * time.Minute

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TokenTypeAccess, parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}
		if claims.ExpiresAt != nil && time.Until(claims.ExpiresAt.Time) < refreshWindow {
			newToken, err := jwt.GenerateToken(secret, claims.UserID, jwt.TokenTypeAccess, time.Hour)
			if err == nil {
				c.Header("X-New-Access-Token", newToken)
			}
		}
		c.Set(context.CtxUserID, claims.UserID)

		c.Next()
	}
}
