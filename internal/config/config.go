package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPPort string

	// WordPressBaseURL is the headless CMS host, the source of truth
	// for all catalog, cart, order and dealer data.
	WordPressBaseURL string

	// SiteBaseURL is the public storefront origin used in sitemap
	// entries and notification actions.
	SiteBaseURL string

	RedisAddr     string
	RedisPassword string

	LocalesDir string

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	SessionTTL      time.Duration
}

func Load() *Config {
	return &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		WordPressBaseURL: getEnv("WORDPRESS_BASE_URL", "https://cms.fitbody.mk"),
		SiteBaseURL:      getEnv("SITE_BASE_URL", "https://fitbody.mk"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		LocalesDir:       getEnv("LOCALES_DIR", "locales"),
		RequestTimeout:   getDuration("REQUEST_TIMEOUT_SECONDS", 30),
		ShutdownTimeout:  getDuration("SHUTDOWN_TIMEOUT_SECONDS", 10),
		SessionTTL:       getDuration("SESSION_TTL_SECONDS", 1800),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return time.Duration(defaultSeconds) * time.Second
}
