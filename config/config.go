package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config stores the application configuration. Everything has a usable
// default so the library works out of the box against local backends.
type Config struct {
	LogLevel string
	LogPath  string // empty disables file logging

	// Artwork resolution
	ArtworkHTTPTimeout time.Duration
	ArtworkMaxBytes    int64 // reject artwork responses larger than this
	ArtworkDir         string
	ArtworkCacheTTL    time.Duration

	// Redis (artwork byte cache)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// MinIO (artwork object store for file-sourced items)
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioRegion    string
	MinioUseSSL    bool
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt gets an environment variable as int or returns a default value.
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool gets an environment variable as bool or returns a default value.
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvSeconds reads an integer number of seconds. Zero is a valid setting
// (no timeout, or no cache expiry); only negatives and junk fall back.
func getEnvSeconds(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if secs, err := strconv.Atoi(value); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return fallback
}

// Load loads configuration from environment variables (via .env file) or defaults.
func Load() *Config {
	// godotenv.Load will not override variables already set in the environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on existing environment variables and defaults.")
	}

	return &Config{
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogPath:  getEnv("LOG_PATH", ""),

		ArtworkHTTPTimeout: getEnvSeconds("ARTWORK_HTTP_TIMEOUT", 10*time.Second),
		ArtworkMaxBytes:    int64(getEnvInt("ARTWORK_MAX_BYTES", 10<<20)),
		ArtworkDir:         getEnv("ARTWORK_DIR", "artwork"),
		ArtworkCacheTTL:    getEnvSeconds("ARTWORK_CACHE_TTL", 3600*time.Second),

		RedisHost:     getEnv("REDIS_HOST", "127.0.0.1"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		MinioEndpoint:  getEnv("MINIO_ENDPOINT", "127.0.0.1:9000"),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getEnv("MINIO_BUCKET", "audiokit"),
		MinioRegion:    getEnv("MINIO_REGION", ""),
		MinioUseSSL:    getEnvBool("MINIO_USE_SSL", false),
	}
}
