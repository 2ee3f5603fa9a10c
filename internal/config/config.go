// Package config provides runtime configuration values for the service.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the knobs for the HTTP server, storage and auth.
type Config struct {
	HTTPAddr       string
	DatabaseURL    string
	RedisAddr      string
	JWTSecret      string
	AccessTokenTTL time.Duration
	ReportCacheTTL time.Duration
}

// Load collects configuration from the environment with defaults.
// RedisAddr may be empty, in which case report caching is disabled.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("JWT_SECRET", "super-secret-key") // move to env in prod
	v.SetDefault("ACCESS_TOKEN_TTL_MINUTES", 15)
	v.SetDefault("REPORT_CACHE_TTL_SECONDS", 60)

	return Config{
		HTTPAddr:       v.GetString("HTTP_ADDR"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		AccessTokenTTL: time.Duration(v.GetInt("ACCESS_TOKEN_TTL_MINUTES")) * time.Minute,
		ReportCacheTTL: time.Duration(v.GetInt("REPORT_CACHE_TTL_SECONDS")) * time.Second,
	}
}
