package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// botCtxKey is the Gin context key used to store the authenticated bot ID.
const botCtxKey = "bot_id"

// APIKeyMiddleware authenticates the calling dialog manager by mapping
// X-API-Key → botID. In production this mapping would typically come from
// IAM/JWT/Secret Manager.
func APIKeyMiddleware(keys map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := strings.TrimSpace(c.GetHeader("X-API-Key"))
		botID, ok := keys[apiKey]
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(botCtxKey, botID)
		c.Next()
	}
}

// BotID returns the authenticated bot ID from the request context.
func BotID(c *gin.Context) string {
	v, _ := c.Get(botCtxKey)
	s, _ := v.(string)
	return s
}
