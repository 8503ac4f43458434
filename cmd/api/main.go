package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/PratikDhanave/dining-concierge/internal/config"
	"github.com/PratikDhanave/dining-concierge/internal/dialog"
	"github.com/PratikDhanave/dining-concierge/internal/httpserver"
	"github.com/PratikDhanave/dining-concierge/internal/queue"
)

// main boots the service: config → queue → dispatcher → HTTP server.
func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Load runtime config from environment (REDIS_ADDR, QUEUE_NAME, API_KEYS).
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}
	logger = logger.Level(cfg.LogLevel)

	// Connect to the suggestions queue; fail fast if Redis is unreachable.
	q, err := queue.NewRedisQueue(queue.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, cfg.QueueName, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("queue connect failed")
	}
	defer q.Close()

	// The intent dispatcher owns all dialog logic; date validation runs
	// against the configured bot timezone.
	d := dialog.NewDispatcher(q, cfg.Timezone, logger)

	// Build HTTP router (public health + authenticated webhook).
	router := httpserver.NewRouter(cfg, q, d, logger)

	logger.Info().Str("addr", cfg.ListenAddr).Msg("server started")
	if err := router.Run(cfg.ListenAddr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
