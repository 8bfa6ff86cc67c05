package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAppName       = "Edifica"
	defaultAppEnv        = "development"
	defaultPort          = "5000"
	defaultLogLevel      = "info"
	defaultTokenTTL      = time.Hour
	defaultRoleCacheTTL  = 30 * time.Second
	defaultShutdownDelay = 10 * time.Second

	tokenSecretEnvVar      = "ACCESS_TOKEN_SECRET"
	tokenTTLEnvVar         = "TOKEN_TTL"
	roleCacheTTLEnvVar     = "ROLE_CACHE_TTL"
	shutdownSecondsEnvVar  = "SHUTDOWN_TIMEOUT_SECONDS"
	shutdownDurationEnvVar = "SHUTDOWN_TIMEOUT"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName        string
	AppEnv         string
	Port           string
	LogLevel       string
	DatabaseURL    string
	RedisURL       string
	TokenSecret    string
	TokenTTL       time.Duration
	RoleCacheTTL   time.Duration
	ShutdownPeriod time.Duration
}

// Load reads configuration values from the environment and populates a Config instance.
func Load() (Config, error) {
	cfg := Config{
		AppName:        getEnv("APP_NAME", defaultAppName),
		AppEnv:         getEnv("APP_ENV", defaultAppEnv),
		Port:           getEnv("PORT", defaultPort),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisURL:       os.Getenv("REDIS_URL"),
		TokenSecret:    os.Getenv(tokenSecretEnvVar),
		TokenTTL:       defaultTokenTTL,
		RoleCacheTTL:   defaultRoleCacheTTL,
		ShutdownPeriod: defaultShutdownDelay,
	}

	if v := os.Getenv(tokenTTLEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", tokenTTLEnvVar, err)
		}
		cfg.TokenTTL = d
	}

	if v := os.Getenv(roleCacheTTLEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", roleCacheTTLEnvVar, err)
		}
		cfg.RoleCacheTTL = d
	}

	if v := os.Getenv(shutdownSecondsEnvVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownSecondsEnvVar, err)
		}
		cfg.ShutdownPeriod = time.Duration(seconds) * time.Second
	} else if v := os.Getenv(shutdownDurationEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownDurationEnvVar, err)
		}
		cfg.ShutdownPeriod = d
	}

	if cfg.TokenSecret == "" {
		return Config{}, fmt.Errorf("%s must be set", tokenSecretEnvVar)
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// IsDev reports whether the app runs in a development-style environment
// where the database and redis are allowed to be absent.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.AppEnv) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
