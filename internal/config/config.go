package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Storage drivers understood by the storage module.
const (
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// DefaultCredentialSecret is used when no credential secret is configured.
// It is public knowledge and must not be relied on outside local runs.
const DefaultCredentialSecret = "change-me-in-production"

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress       string
	StorageDriver    string
	DatabaseURI      string
	RedisURL         string
	CredentialSecret string
	AllowedOrigins   []string
	LogLevel         string
	ShutdownTimeout  time.Duration
}

const (
	defaultRunAddress      = ":8090"
	defaultStorageDriver   = DriverPostgres
	defaultAllowedOrigins  = "http://localhost:5173"
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		StorageDriver:    getString(lookup, "STORAGE_DRIVER", defaultStorageDriver),
		DatabaseURI:      getString(lookup, "DATABASE_URI", ""),
		RedisURL:         getString(lookup, "REDIS_URL", ""),
		CredentialSecret: getString(lookup, "CREDENTIAL_SECRET", DefaultCredentialSecret),
		LogLevel:         getString(lookup, "LOG_LEVEL", defaultLogLevel),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("feedbackportal", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		originsStr         = getString(lookup, "ALLOWED_ORIGINS", defaultAllowedOrigins)
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.StorageDriver, "s", cfg.StorageDriver, "Record store driver: postgres, redis or memory")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisURL, "redis", cfg.RedisURL, "Redis URL")
	fs.StringVar(&cfg.CredentialSecret, "credential-secret", cfg.CredentialSecret, "Secret for credential obfuscation")
	fs.StringVar(&originsStr, "allowed-origins", originsStr, "Comma-separated CORS origins")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	secretFlagSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "credential-secret" {
			secretFlagSet = true
		}
	})

	if secretFile, ok := lookup("CREDENTIAL_SECRET_FILE"); ok && secretFile != "" && !secretFlagSet {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read credential secret file: %w", err)
		}
		cfg.CredentialSecret = strings.TrimSpace(string(content))
	}

	cfg.AllowedOrigins = splitList(originsStr)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	switch cfg.StorageDriver {
	case DriverPostgres:
		if cfg.DatabaseURI == "" {
			return nil, fmt.Errorf("database URI must be provided")
		}
	case DriverRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("redis URL must be provided")
		}
	case DriverMemory:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	if cfg.CredentialSecret == "" {
		return nil, fmt.Errorf("credential secret must not be empty")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
