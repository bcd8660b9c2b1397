package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration values.
type Config struct {
	ServerHost       string
	ServerPort       string
	ServerMode       string
	DatabaseHost     string
	DatabasePort     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseName     string
	DatabaseURL      string
	LogLevel         string
	JWTSecret        string
	TokenLifetime    time.Duration
	ListsPerPage     int
	ItemsPerPage     int
	CORSOrigins      []string

	// RevokeTokenOnPasswordReset controls whether the token that
	// authenticated a password reset is blacklisted afterwards.
	// Off by default: outstanding tokens stay valid until expiry.
	RevokeTokenOnPasswordReset bool
}

// Load reads configuration exclusively from environment variables (optionally .env file).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.ServerHost = getEnv("HOST", "0.0.0.0")
	cfg.ServerPort = getEnv("PORT", "8080")
	cfg.ServerMode = getEnv("GIN_MODE", "debug")

	// Database
	cfg.DatabaseHost = getEnv("DB_HOST", "localhost")
	cfg.DatabasePort = getEnv("DB_PORT", "3306")
	cfg.DatabaseUser = getEnv("DB_USER", "")
	cfg.DatabasePassword = getEnv("DB_PASSWORD", "")
	cfg.DatabaseName = getEnv("DB_NAME", "")
	if cfg.DatabaseUser == "" || cfg.DatabasePassword == "" || cfg.DatabaseName == "" {
		return nil, fmt.Errorf("missing required database env vars")
	}
	// Build DSN: user:pass@tcp(host:port)/dbname?parseTime=true
	cfg.DatabaseURL = fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.DatabaseUser, cfg.DatabasePassword,
		cfg.DatabaseHost, cfg.DatabasePort,
		cfg.DatabaseName,
	)

	// Logging & Auth
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing JWT_SECRET environment variable")
	}
	lifetimeStr := getEnv("TOKEN_LIFETIME", "15m")
	d, err := time.ParseDuration(lifetimeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_LIFETIME: %w", err)
	}
	cfg.TokenLifetime = d

	// Pagination defaults
	listsPerPage := getEnv("LISTS_PER_PAGE", "10")
	lp, err := strconv.Atoi(listsPerPage)
	if err != nil {
		return nil, fmt.Errorf("invalid LISTS_PER_PAGE: %w", err)
	}
	cfg.ListsPerPage = lp

	itemsPerPage := getEnv("ITEMS_PER_PAGE", "10")
	ip, err := strconv.Atoi(itemsPerPage)
	if err != nil {
		return nil, fmt.Errorf("invalid ITEMS_PER_PAGE: %w", err)
	}
	cfg.ItemsPerPage = ip

	// CORS
	origins := getEnv("CORS_ORIGINS", "")
	if origins != "" {
		cfg.CORSOrigins = strings.Split(origins, ",")
	}

	// Password reset policy
	revoke := getEnv("REVOKE_TOKEN_ON_PASSWORD_RESET", "false")
	rv, err := strconv.ParseBool(revoke)
	if err != nil {
		return nil, fmt.Errorf("invalid REVOKE_TOKEN_ON_PASSWORD_RESET: %w", err)
	}
	cfg.RevokeTokenOnPasswordReset = rv

	return cfg, nil
}

// getEnv returns env var or default.
func getEnv(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}
