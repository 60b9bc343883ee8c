package app

import (
	"net/http"

	"Gin_redis_rental_registry/session"

	"github.com/gin-gonic/gin"
)

const AppSessionCookie = "app_session"

// IdentityKey 取当前调用者身份（登录名）
const IdentityKey = "identity"

func AuthRequired(sess session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ck, err := c.Request.Cookie(AppSessionCookie)
		if err != nil || ck.Value == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		as, err := sess.Get(c.Request.Context(), ck.Value)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "invalid session"})
			return
		}
		// 把身份放进上下文，后续 handler 可用
		c.Set(IdentityKey, as.Name)
		c.Next()
	}
}

func AdminOnly(admin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(IdentityKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		name, _ := v.(string)
		if name != admin {
			c.AbortWithStatusJSON(http.StatusForbidden, H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// Identity 从 gin 上下文取出 AuthRequired 设置的身份
func Identity(c *gin.Context) string {
	v, _ := c.Get(IdentityKey)
	name, _ := v.(string)
	return name
}
