package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string

	JobStore string // "memory" or "redis"
	JobTTL   time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	BlobBackend string // "fs" or "s3"
	UploadDir   string
	ThumbDir    string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioRegion    string
	UploadBucket   string
	ThumbBucket    string

	Workers       int
	QueueSize     int
	MaxUploadSize int64

	LogLevel slog.Level
}

// Load reads configuration from the environment, after applying a local .env
// file if one exists.
func Load() Config {
	_ = godotenv.Load()

	logLevel := slog.LevelInfo
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	return Config{
		HTTPAddr: valueOrDefault(os.Getenv("HTTP_ADDR"), ":8080"),

		JobStore: valueOrDefault(os.Getenv("JOB_STORE"), "redis"),
		JobTTL:   parseDuration(os.Getenv("JOB_TTL"), time.Hour),

		RedisAddr:     valueOrDefault(os.Getenv("REDIS_ADDR"), "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       parseInt(os.Getenv("REDIS_DB"), 0),

		BlobBackend: valueOrDefault(os.Getenv("BLOB_BACKEND"), "fs"),
		UploadDir:   valueOrDefault(os.Getenv("UPLOAD_DIR"), "./data/uploads"),
		ThumbDir:    valueOrDefault(os.Getenv("THUMB_DIR"), "./data/thumbnails"),

		MinioEndpoint:  valueOrDefault(os.Getenv("MINIO_ENDPOINT"), "localhost:9000"),
		MinioAccessKey: valueOrDefault(os.Getenv("MINIO_ACCESS_KEY"), "minio"),
		MinioSecretKey: valueOrDefault(os.Getenv("MINIO_SECRET_KEY"), "minio123"),
		MinioUseSSL:    strings.EqualFold(os.Getenv("MINIO_USE_SSL"), "true"),
		MinioRegion:    os.Getenv("MINIO_REGION"),
		UploadBucket:   valueOrDefault(os.Getenv("MINIO_UPLOAD_BUCKET"), "uploads"),
		ThumbBucket:    valueOrDefault(os.Getenv("MINIO_THUMB_BUCKET"), "thumbnails"),

		Workers:       parseInt(os.Getenv("WORKER_COUNT"), 4),
		QueueSize:     parseInt(os.Getenv("QUEUE_SIZE"), 100),
		MaxUploadSize: int64(parseInt(os.Getenv("MAX_UPLOAD_SIZE"), 32<<20)),

		LogLevel: logLevel,
	}
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func parseInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
