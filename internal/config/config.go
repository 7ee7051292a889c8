package config // package config loads application configuration from environment variables

import (
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time parses duration values
)

// Config holds all runtime configuration resolved once at startup.  Every
// field has a local-development default so the gateway starts with an empty
// environment; the backend locations are configured per deployment.
type Config struct {
	Env         string // application environment (e.g. "dev", "prod")
	Port        string // HTTP port to listen on
	APIBaseURL  string // base URL of the rooms/bookings backend
	ForecastURL string // full URL of the forecast lookup endpoint
	JWTSecret   string // secret used to verify session bearer tokens
}

// Load resolves the configuration.  Backend URLs follow a layered
// precedence: the deployment variable wins, then its public alias (the
// variable name browser bundles of the previous frontend shipped with),
// then a hardcoded local default.  The chain is resolved here exactly once;
// nothing re-reads the environment afterwards.
func Load() Config {
	return Config{
		Env:         envStr("APP_ENV", "dev"),
		Port:        envStr("APP_PORT", "3000"),
		APIBaseURL:  firstEnv("http://localhost:8080", "API_BASE_URL", "PUBLIC_API_BASE_URL"),
		ForecastURL: firstEnv("http://localhost:8081/forecast", "FORECAST_URL", "PUBLIC_FORECAST_URL"),
		JWTSecret:   envStr("JWT_SECRET", "dev-secret"),
	}
}

// firstEnv returns the first non-empty value among the named variables, in
// order, falling back to def when none is set.
func firstEnv(def string, keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}

// Shared defaulting helpers used by the per-concern loaders in this package.

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
