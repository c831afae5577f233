package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type CommonConfig struct {
	RequestTimeout time.Duration
}

func NewCommonConfig() CommonConfig {
	return CommonConfig{
		RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	value := getEnv(key, "")
	if value == "" {
		return defaultVal
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		slog.Warn("invalid integer in environment", slog.String("key", key), slog.String("value", value))
		return defaultVal
	}
	return n
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("invalid duration in environment", slog.String("key", key), slog.String("value", value))
		return defaultVal
	}
	return d
}

// getEnvFromFile reads a secret from the file named by key, the way docker
// secrets are mounted.
func getEnvFromFile(key string, defaultVal string) string {
	path := getEnv(key, "")
	if path == "" {
		return defaultVal
	}
	content, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("failed to read secret file", slog.String("key", key), slog.String("path", path))
		return defaultVal
	}
	return strings.TrimSpace(string(content))
}
