package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	Stores          StoreURIs
	AccountAgeMode  string
	Currency        string
	APIKeyHash      string
	LogLevel        string
	LookupTimeout   time.Duration
	ShutdownTimeout time.Duration
}

// StoreURIs holds the DSN of each record store. Empty entries fall back to DatabaseURI.
type StoreURIs struct {
	Users     string
	Payments  string
	Debts     string
	Histories string
	Mixes     string
}

const (
	defaultRunAddress      = ":8080"
	defaultAccountAgeMode  = "calendar"
	defaultCurrency        = "EGP"
	defaultLogLevel        = "info"
	defaultLookupTimeout   = 5 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from an optional .env file, flags and environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:  getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI: getString(lookup, "DATABASE_URI", ""),
		Stores: StoreURIs{
			Users:     getString(lookup, "USERS_DATABASE_URI", ""),
			Payments:  getString(lookup, "PAYMENTS_DATABASE_URI", ""),
			Debts:     getString(lookup, "DEBT_DATABASE_URI", ""),
			Histories: getString(lookup, "HISTORY_DATABASE_URI", ""),
			Mixes:     getString(lookup, "MIX_DATABASE_URI", ""),
		},
		AccountAgeMode:  getString(lookup, "ACCOUNT_AGE_MODE", defaultAccountAgeMode),
		Currency:        getString(lookup, "CURRENCY", defaultCurrency),
		APIKeyHash:      getString(lookup, "API_KEY_HASH", ""),
		LogLevel:        getString(lookup, "LOG_LEVEL", defaultLogLevel),
		LookupTimeout:   getDuration(lookup, "LOOKUP_TIMEOUT", defaultLookupTimeout),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("iscore", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		lookupTimeoutStr   = cfg.LookupTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN shared by all record stores")
	fs.StringVar(&cfg.Stores.Users, "users-db", cfg.Stores.Users, "PostgreSQL DSN of the users store")
	fs.StringVar(&cfg.Stores.Payments, "payments-db", cfg.Stores.Payments, "PostgreSQL DSN of the payments store")
	fs.StringVar(&cfg.Stores.Debts, "debt-db", cfg.Stores.Debts, "PostgreSQL DSN of the debt store")
	fs.StringVar(&cfg.Stores.Histories, "history-db", cfg.Stores.Histories, "PostgreSQL DSN of the history store")
	fs.StringVar(&cfg.Stores.Mixes, "mix-db", cfg.Stores.Mixes, "PostgreSQL DSN of the credit mix store")
	fs.StringVar(&cfg.AccountAgeMode, "age-mode", cfg.AccountAgeMode, "Account age computation: calendar or elapsed")
	fs.StringVar(&cfg.Currency, "currency", cfg.Currency, "Currency label for monetary amounts")
	fs.StringVar(&cfg.APIKeyHash, "api-key-hash", cfg.APIKeyHash, "bcrypt hash of the API key; empty disables the check")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&lookupTimeoutStr, "lookup-timeout", lookupTimeoutStr, "Per-request record lookup timeout")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.LookupTimeout, err = time.ParseDuration(lookupTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid lookup timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if hashFile, ok := lookup("API_KEY_HASH_FILE"); ok && hashFile != "" {
		content, err := os.ReadFile(hashFile)
		if err != nil {
			return nil, fmt.Errorf("read api key hash file: %w", err)
		}
		cfg.APIKeyHash = strings.TrimSpace(string(content))
	}

	if cfg.LookupTimeout <= 0 {
		cfg.LookupTimeout = defaultLookupTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	cfg.Stores = cfg.Stores.withDefault(cfg.DatabaseURI)

	return cfg, nil
}

func (s StoreURIs) withDefault(dsn string) StoreURIs {
	fill := func(v string) string {
		if v == "" {
			return dsn
		}
		return v
	}
	return StoreURIs{
		Users:     fill(s.Users),
		Payments:  fill(s.Payments),
		Debts:     fill(s.Debts),
		Histories: fill(s.Histories),
		Mixes:     fill(s.Mixes),
	}
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
