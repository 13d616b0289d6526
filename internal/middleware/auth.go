package middleware

import (
	"net/http"
	"strings"

	"github.com/charile1/golf-reservation/pkg/auth"

	"github.com/gin-gonic/gin"
)

const staffIDKey = "staff_id"

func JWTAuth(parser *auth.TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		claims, err := parser.Parse(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(staffIDKey, claims.Sub)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// StaffID 回傳目前請求的操作人員 id，未驗證時為空字串
func StaffID(c *gin.Context) string {
	return c.GetString(staffIDKey)
}
