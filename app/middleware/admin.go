package middleware

import (
	"net/http"
	"strings"

	"exam-bank/app/auth"

	"github.com/gin-gonic/gin"
)

// AdminAuth 管理员鉴权中间件。无会话状态，每个请求都重新验证令牌。
func AdminAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "请先登录管理员账号",
			})
			c.Abort()
			return
		}

		// 检查Bearer前缀
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "请先登录管理员账号",
			})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Token过期或无效，请重新登录",
			})
			c.Abort()
			return
		}

		// 将管理员信息存储到上下文中
		c.Set("admin_username", claims.Username)
		c.Next()
	}
}
