// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort             = 3318
	DefaultDatabaseType     = "sqlite"
	DefaultMinOutlierSample = 5
	DefaultEnvFile          = ".env"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	AdminKeySalt string
	IPHashSalt   string

	// CatalogFile is an optional YAML question bank; empty means the built-in one
	CatalogFile      string
	MinOutlierSample int

	LogFormat string // "text" or "json"
	LogLevel  slog.Level
}

// ParseFlags validates flags and fills the rest from the environment.
// Variables in the env file never override ones already set.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile, logLevel string

	fs := flag.NewFlagSet("foe-finder", flag.ContinueOnError)

	fs.StringVar(&envFile, "env-file", DefaultEnvFile, "Environment file to load")

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")
	fs.StringVar(&cfg.IPHashSalt, "ip-salt", "", "IP hash salt (prefer env)")

	// Engine and logging
	fs.StringVar(&cfg.CatalogFile, "catalog", "", "Question catalog YAML file")
	fs.IntVar(&cfg.MinOutlierSample, "min-sample", 0, "Minimum responses before reporting outliers")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text or json)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := envInt("PORT", DefaultPort)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DefaultDatabaseType
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q (sqlite or postgres)", cfg.DatabaseType)
	}

	// Secrets - MUST be provided
	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}

	if cfg.IPHashSalt == "" {
		cfg.IPHashSalt = os.Getenv("IP_HASH_SALT")
	}
	if cfg.IPHashSalt == "" {
		return Config{}, errors.New("IP_HASH_SALT required")
	}

	if cfg.CatalogFile == "" {
		cfg.CatalogFile = os.Getenv("CATALOG_FILE")
	}

	if cfg.MinOutlierSample == 0 {
		n, err := envInt("MIN_OUTLIER_SAMPLE", DefaultMinOutlierSample)
		if err != nil {
			return Config{}, err
		}
		cfg.MinOutlierSample = n
	}
	if cfg.MinOutlierSample < 1 {
		return Config{}, errors.New("minimum outlier sample must be at least 1")
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = os.Getenv("LOG_FORMAT")
		if cfg.LogFormat == "" {
			cfg.LogFormat = "text"
		}
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("unsupported log format %q (text or json)", cfg.LogFormat)
	}

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return Config{}, fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
	}

	return cfg, nil
}

// loadEnvFile loads KEY=value pairs into the process environment.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func envInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}
