package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/thumbcard/backend/internal/logging"
)

// Config captures the runtime configuration for the thumbcard backend service.
type Config struct {
	AppPort      int
	LogLevel     string
	DatabaseURL  string
	MigrationDir string

	YouTubeAPIKey   string
	YouTubeEndpoint string

	LookupRateLimit  int
	LookupRateWindow time.Duration
	LookupRateBurst  int

	HistoryQueueSize int
	HistoryWorkers   int
	AdminTokenHash   string

	CardMaxBytes int64
	ObjectStore  ObjectStoreConfig
}

// ObjectStoreConfig locates the S3-compatible bucket that holds published cards.
type ObjectStoreConfig struct {
	Bucket        string
	Region        string
	Endpoint      string
	PublicBaseURL string
}

// Enabled reports whether a bucket has been configured.
func (c ObjectStoreConfig) Enabled() bool {
	return strings.TrimSpace(c.Bucket) != ""
}

// Load reads configuration from environment variables, applying defaults suited to local
// development.
func Load() (Config, error) {
	cfg := Config{
		AppPort:      getInt("THUMBCARD_PORT", 8080),
		LogLevel:     getString("THUMBCARD_LOG_LEVEL", "info"),
		DatabaseURL:  getString("THUMBCARD_DATABASE_URL", ""),
		MigrationDir: getString("THUMBCARD_MIGRATIONS", "migrations"),

		YouTubeAPIKey:   getString("THUMBCARD_YOUTUBE_API_KEY", getString("YOUTUBE_API_KEY", "")),
		YouTubeEndpoint: getString("THUMBCARD_YOUTUBE_ENDPOINT", ""),

		LookupRateLimit:  getInt("THUMBCARD_LOOKUP_RATE", 30),
		LookupRateWindow: getDuration("THUMBCARD_LOOKUP_RATE_WINDOW", time.Minute),
		LookupRateBurst:  getInt("THUMBCARD_LOOKUP_RATE_BURST", 10),

		HistoryQueueSize: getInt("THUMBCARD_HISTORY_QUEUE", 64),
		HistoryWorkers:   getInt("THUMBCARD_HISTORY_WORKERS", 2),
		AdminTokenHash:   getString("THUMBCARD_ADMIN_TOKEN_HASH", ""),

		CardMaxBytes: getInt64("THUMBCARD_CARD_MAX_BYTES", 10<<20),
		ObjectStore: ObjectStoreConfig{
			Bucket:        getString("THUMBCARD_S3_BUCKET", ""),
			Region:        getString("THUMBCARD_S3_REGION", "us-east-1"),
			Endpoint:      getString("THUMBCARD_S3_ENDPOINT", ""),
			PublicBaseURL: getString("THUMBCARD_S3_PUBLIC_URL", ""),
		},
	}

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	if cfg.AppPort <= 0 || cfg.AppPort > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.AppPort)
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return i
}

func getInt64(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return i
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
