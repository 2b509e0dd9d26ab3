// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the foe-finder API server.

Foe-finder asks users how strongly they agree with a bank of spicy
statements on a 1-7 scale, then tells them where they stand against
everyone else: their hot takes, how often they disagree with the crowd,
which answers put them in the top or bottom decile, and which New York
neighborhood matches their vibe.

# Starting the Server

The server reads environment variables (optionally from a .env file) or
CLI flags:

	DATABASE_URL=foe-finder.db ADMIN_KEY_SALT=... IP_HASH_SALT=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - ADMIN_KEY_SALT (-admin-salt): Secret the admin key is derived from
  - IP_HASH_SALT (-ip-salt): Secret for hashing client IPs

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - CATALOG_FILE (-catalog): YAML question bank (default: built-in)
  - MIN_OUTLIER_SAMPLE (-min-sample): Responses needed before a question
    reports outliers (default: 5)
  - LOG_FORMAT (-log-format): text or json
  - LOG_LEVEL (-log-level): debug, info, warn or error

# Architecture

  - scoring: Pure engine (validation, hot takes, statistics, disagreement,
    outliers, neighborhood classification)
  - catalog: Question bank and neighborhood profiles
  - handlers: HTTP request handlers and statistics snapshots
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, admin guard, JSON helpers
  - models: Domain and request/response types
  - auth: Identifiers, tokens and admin keys
  - db: Connection, placeholder rebinding and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
