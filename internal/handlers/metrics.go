package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/dining-concierge/internal/auth"
	"github.com/PratikDhanave/dining-concierge/internal/queue"
)

// RegisterMetricRoutes registers the operational endpoint.
//
// GET /metrics
// - Requires X-API-Key (calling bot context)
// - Returns the number of reservation requests waiting on the queue
func RegisterMetricRoutes(r gin.IRoutes, q *queue.RedisQueue) {
	r.GET("/metrics", func(c *gin.Context) {
		if auth.BotID(c) == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		depth, err := q.Depth(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "queue query failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"queue": q.Name(),
			"depth": depth,
		})
	})
}
