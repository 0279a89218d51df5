package config_test

import (
	"os"
	"testing"
	"time"

	"audiokit/config"
)

func TestLoadDefaults(t *testing.T) {
	// Shadow then unset so values from the invoking environment cannot leak
	// into the assertions; t.Setenv restores the originals afterwards.
	for _, key := range []string{
		"LOG_LEVEL", "ARTWORK_HTTP_TIMEOUT", "ARTWORK_MAX_BYTES",
		"ARTWORK_CACHE_TTL", "REDIS_HOST", "REDIS_DB", "MINIO_BUCKET", "MINIO_USE_SSL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := config.Load()

	if cfg.ArtworkHTTPTimeout != 10*time.Second {
		t.Errorf("ArtworkHTTPTimeout = %v, want 10s", cfg.ArtworkHTTPTimeout)
	}
	if cfg.ArtworkMaxBytes != 10<<20 {
		t.Errorf("ArtworkMaxBytes = %d, want %d", cfg.ArtworkMaxBytes, 10<<20)
	}
	if cfg.ArtworkCacheTTL != time.Hour {
		t.Errorf("ArtworkCacheTTL = %v, want 1h", cfg.ArtworkCacheTTL)
	}
	if cfg.RedisHost != "127.0.0.1" {
		t.Errorf("RedisHost = %q, want 127.0.0.1", cfg.RedisHost)
	}
	if cfg.RedisDB != 0 {
		t.Errorf("RedisDB = %d, want 0", cfg.RedisDB)
	}
	if cfg.MinioBucket != "audiokit" {
		t.Errorf("MinioBucket = %q, want audiokit", cfg.MinioBucket)
	}
	if cfg.MinioUseSSL {
		t.Error("MinioUseSSL = true, want false by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ARTWORK_HTTP_TIMEOUT", "3")
	t.Setenv("ARTWORK_CACHE_TTL", "60")
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("REDIS_DB", "5")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg := config.Load()

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.ArtworkHTTPTimeout != 3*time.Second {
		t.Errorf("ArtworkHTTPTimeout = %v, want 3s", cfg.ArtworkHTTPTimeout)
	}
	if cfg.ArtworkCacheTTL != time.Minute {
		t.Errorf("ArtworkCacheTTL = %v, want 1m", cfg.ArtworkCacheTTL)
	}
	if cfg.RedisHost != "redis.internal" {
		t.Errorf("RedisHost = %q, want redis.internal", cfg.RedisHost)
	}
	if cfg.RedisDB != 5 {
		t.Errorf("RedisDB = %d, want 5", cfg.RedisDB)
	}
	if !cfg.MinioUseSSL {
		t.Error("MinioUseSSL = false, want true")
	}
}

func TestZeroSecondsIsRespected(t *testing.T) {
	t.Setenv("ARTWORK_CACHE_TTL", "0")

	cfg := config.Load()

	if cfg.ArtworkCacheTTL != 0 {
		t.Errorf("ArtworkCacheTTL = %v, want 0 (no expiry) when set explicitly", cfg.ArtworkCacheTTL)
	}
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	t.Setenv("ARTWORK_HTTP_TIMEOUT", "not-a-number")
	t.Setenv("ARTWORK_CACHE_TTL", "-5")
	t.Setenv("REDIS_DB", "many")
	t.Setenv("MINIO_USE_SSL", "perhaps")

	cfg := config.Load()

	if cfg.ArtworkHTTPTimeout != 10*time.Second {
		t.Errorf("ArtworkHTTPTimeout = %v, want default 10s on bad input", cfg.ArtworkHTTPTimeout)
	}
	if cfg.ArtworkCacheTTL != time.Hour {
		t.Errorf("ArtworkCacheTTL = %v, want default 1h on negative input", cfg.ArtworkCacheTTL)
	}
	if cfg.RedisDB != 0 {
		t.Errorf("RedisDB = %d, want default 0 on bad input", cfg.RedisDB)
	}
	if cfg.MinioUseSSL {
		t.Error("MinioUseSSL = true, want default false on bad input")
	}
}
