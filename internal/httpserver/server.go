package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/PratikDhanave/dining-concierge/internal/auth"
	"github.com/PratikDhanave/dining-concierge/internal/config"
	"github.com/PratikDhanave/dining-concierge/internal/dialog"
	"github.com/PratikDhanave/dining-concierge/internal/handlers"
	"github.com/PratikDhanave/dining-concierge/internal/queue"
)

// NewRouter wires public endpoints and authenticated APIs.
// Public: /health, /ready
// Authenticated: /v1/dialog, /metrics
func NewRouter(cfg config.Config, q *queue.RedisQueue, d *dialog.Dispatcher, logger zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness: confirms the queue dependency is reachable.
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if err := q.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	// Auth group enforces bot context via X-API-Key.
	authGroup := r.Group("/")
	authGroup.Use(auth.APIKeyMiddleware(cfg.APIKeys))

	handlers.RegisterDialogRoutes(authGroup, d, logger)
	handlers.RegisterMetricRoutes(authGroup, q)

	return r
}
