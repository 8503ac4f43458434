package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Publisher submits serialized messages for downstream asynchronous
// processing. The destination is fixed at construction time.
type Publisher interface {
	Submit(ctx context.Context, body []byte) error
}

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Addr     string // Redis server address (host:port)
	Password string // Redis password (optional)
	DB       int    // Redis database number
}

// RedisQueue publishes messages onto a Redis list consumed by the
// suggestions worker. It also backs the readiness probe and the queue-depth
// metric.
type RedisQueue struct {
	client *redis.Client
	name   string
	logger zerolog.Logger
}

// NewRedisQueue connects to Redis and fails fast if it is unreachable.
// name is the list key messages are pushed onto.
func NewRedisQueue(config RedisConfig, name string, logger zerolog.Logger) (*RedisQueue, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	logger.Info().
		Str("addr", config.Addr).
		Str("queue", name).
		Msg("connected to Redis queue")

	return &RedisQueue{
		client: client,
		name:   name,
		logger: logger,
	}, nil
}

// Submit appends the message to the queue. The caller waits on the push
// synchronously; there is no retry here.
func (q *RedisQueue) Submit(ctx context.Context, body []byte) error {
	size, err := q.client.RPush(ctx, q.name, body).Result()
	if err != nil {
		return fmt.Errorf("queue push to %q: %w", q.name, err)
	}
	q.logger.Debug().
		Str("queue", q.name).
		Int64("depth", size).
		Msg("message queued")
	return nil
}

// Depth returns the number of pending messages.
func (q *RedisQueue) Depth(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.name).Result()
}

// Ping is used by the readiness endpoint to validate queue connectivity.
func (q *RedisQueue) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}

// Name returns the configured destination key.
func (q *RedisQueue) Name() string {
	return q.name
}

// Close closes the Redis connection.
func (q *RedisQueue) Close() error {
	return q.client.Close()
}
