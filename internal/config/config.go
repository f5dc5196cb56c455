// Package config loads SDK and tool configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults shipped in source so the tools work against the hosted API out of
// the box. Shipping the secret as a source default mirrors the dashboard it
// replaces; override MAWADK_API_SECRET in any real deployment.
const (
	DefaultBaseURL = "https://api.mawadk.com"
	DefaultSecret  = "mwdk-dashboard-2024"
	DefaultLocale  = "en"
)

// Config holds application configuration.
type Config struct {
	APIBaseURL     string
	APISecret      string
	RequestTimeout time.Duration
	DefaultLocale  string
	SessionFile    string
	LogLevel       string

	RedisAddr     string
	RedisPassword string
	RedisTLS      bool

	MockAPIPort string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		APIBaseURL:     getEnv("MAWADK_API_BASE_URL", DefaultBaseURL),
		APISecret:      getEnv("MAWADK_API_SECRET", DefaultSecret),
		RequestTimeout: getEnvAsDuration("MAWADK_REQUEST_TIMEOUT", 60*time.Second),
		DefaultLocale:  getEnv("MAWADK_DEFAULT_LOCALE", DefaultLocale),
		SessionFile:    getEnv("MAWADK_SESSION_FILE", defaultSessionFile()),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisTLS:       getEnvAsBool("REDIS_TLS", false),
		MockAPIPort:    getEnv("MOCKAPI_PORT", "8090"),
	}
}

// LoadDotenv loads a .env file if present, then reads the environment.
func LoadDotenv() *Config {
	_ = godotenv.Load()
	return Load()
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mawadk-session.json"
	}
	return home + "/.mawadk/session.json"
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
