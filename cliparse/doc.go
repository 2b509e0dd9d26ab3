// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Precedence

CLI flags, then the process environment, then the env file (default .env,
loaded with github.com/joho/godotenv), then built-in defaults. The env file
never overrides a variable that is already set.

# Flags and Environment Variables

	-p            PORT                Server port (default 3318)
	-d            DATABASE_URL        Database URL (required)
	-t            DATABASE_TYPE       sqlite or postgres (default sqlite)
	-admin-salt   ADMIN_KEY_SALT      Admin key HMAC secret (required)
	-ip-salt      IP_HASH_SALT        IP hashing secret (required)
	-catalog      CATALOG_FILE        YAML question catalog (default built-in)
	-min-sample   MIN_OUTLIER_SAMPLE  Responses needed before outliers (default 5)
	-log-format   LOG_FORMAT          text or json (default text)
	-log-level    LOG_LEVEL           debug, info, warn, error (default info)
	-env-file                         Env file path (default .env)

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(conn, cat, cfg)
*/
package cliparse
