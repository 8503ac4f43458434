package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// defaultTimezone anchors the reservation-date check; the bot serves the New
// York region, so "tomorrow" means tomorrow there.
const defaultTimezone = "America/New_York"

// Config contains runtime configuration required by the service.
type Config struct {
	ListenAddr    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	QueueName     string
	APIKeys       map[string]string // apiKey -> botID
	Timezone      *time.Location
	LogLevel      zerolog.Level
}

// Load reads required values from environment variables.
// API_KEYS format: "bot1:key1,bot2:key2"
func Load() (Config, error) {
	redisAddr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if redisAddr == "" {
		return Config{}, errors.New("REDIS_ADDR required")
	}

	queueName := strings.TrimSpace(os.Getenv("QUEUE_NAME"))
	if queueName == "" {
		return Config{}, errors.New("QUEUE_NAME required")
	}

	redisDB := 0
	if v := strings.TrimSpace(os.Getenv("REDIS_DB")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, errors.New("REDIS_DB must be an integer")
		}
		redisDB = n
	}

	apiKeys, err := parseAPIKeys(os.Getenv("API_KEYS"))
	if err != nil {
		return Config{}, err
	}

	tzName := strings.TrimSpace(os.Getenv("BOT_TIMEZONE"))
	if tzName == "" {
		tzName = defaultTimezone
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return Config{}, fmt.Errorf("BOT_TIMEZONE: %w", err)
	}

	level := zerolog.InfoLevel
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		level, err = zerolog.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = ":8080"
	}

	return Config{
		ListenAddr:    listenAddr,
		RedisAddr:     redisAddr,
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		QueueName:     queueName,
		APIKeys:       apiKeys,
		Timezone:      loc,
		LogLevel:      level,
	}, nil
}

// parseAPIKeys parses the "bot:key,bot:key" list into apiKey → botID.
func parseAPIKeys(raw string) (map[string]string, error) {
	apiKeys := map[string]string{}

	raw = strings.TrimSpace(raw)
	if raw != "" {
		pairs := strings.Split(raw, ",")
		for _, p := range pairs {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			parts := strings.SplitN(p, ":", 2)
			if len(parts) != 2 {
				return nil, errors.New(`API_KEYS must be "bot:key,bot:key"`)
			}
			bot := strings.TrimSpace(parts[0])
			key := strings.TrimSpace(parts[1])
			if bot == "" || key == "" {
				return nil, errors.New(`API_KEYS must be "bot:key,bot:key"`)
			}
			apiKeys[key] = bot
		}
	}

	// Local dev fallback so the service runs out-of-the-box.
	if len(apiKeys) == 0 {
		apiKeys["concierge-key-123"] = "dining-concierge"
	}

	return apiKeys, nil
}
