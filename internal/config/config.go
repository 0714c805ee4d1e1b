package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	CORSOrigins []string // allowed origins, "*" = all (default)

	SeedFile           string        // path to a YAML seed file of per-user bookmarks (optional, empty = disabled)
	SeedReloadInterval time.Duration // interval to re-import the seed file (default: 24h)
	SweepInterval      time.Duration // interval to sweep dangling index members (default: 24h)

	// Redis
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDialTimeout    time.Duration // ex: 5s
	RedisReadTimeout    time.Duration // ex: 3s
	RedisWriteTimeout   time.Duration // ex: 3s
	RedisPoolSize       int           // connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // initial wait between retries, grows exponentially
	RedisMaxWait        time.Duration // max wait between retries
	RedisPingTimeout    time.Duration // timeout for each ping attempt
	RedisWarnThreshold  int           // warn after this many attempts

	AllowedCIDRS []string // optional, restrict infra endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("SATCHEL_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("SATCHEL_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("SATCHEL_LOG_LEVEL", "info"),
		PrettyLog: mustBool("SATCHEL_PRETTY_LOG", false),

		// Cross-origin access for the browser extension
		CORSOrigins: splitAndTrim(getenv("SATCHEL_CORS_ORIGINS", "*")),

		// Background jobs
		SeedFile:           getenv("SATCHEL_SEED_FILE", ""),
		SeedReloadInterval: mustDuration("SATCHEL_SEED_RELOAD_INTERVAL", 24*time.Hour),
		SweepInterval:      mustDuration("SATCHEL_SWEEP_INTERVAL", 24*time.Hour),

		// Redis settings
		RedisAddr:           requireEnv("SATCHEL_REDIS_ADDR"),
		RedisUser:           getenv("SATCHEL_REDIS_USERNAME", ""),
		RedisPassword:       getenv("SATCHEL_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("SATCHEL_REDIS_DB", 0),
		RedisDialTimeout:    mustDuration("SATCHEL_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisReadTimeout:    mustDuration("SATCHEL_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWriteTimeout:   mustDuration("SATCHEL_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("SATCHEL_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("SATCHEL_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("SATCHEL_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("SATCHEL_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("SATCHEL_REDIS_PING_TIMEOUT", 5*time.Second),
		RedisWarnThreshold:  getenvInt("SATCHEL_REDIS_WARN_THRESHOLD", 3),

		// Access restrictions for /healthz and /readyz
		AllowedCIDRS: splitAndTrim(getenv("SATCHEL_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("SATCHEL_TRUST_PROXY", false),
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("FATAL: required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
