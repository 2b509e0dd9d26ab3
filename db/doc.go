// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

  - "postgres": github.com/lib/pq
  - "sqlite": modernc.org/sqlite (pure Go, no cgo), with WAL,
    busy_timeout and foreign_keys enabled

Queries are written once with ? placeholders. DB and Tx rewrite them to
$1, $2, ... when talking to PostgreSQL.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - app_user: Registered users and their opaque tokens
  - questionnaire_response: One submission per user (replaced on retake)
  - answer: Individual answers, value 1-7
  - user_neighborhood: Cached classification, refreshed on every submission
  - statistics_snapshot: Full-population statistics, JSON payload

# Relationships

	app_user 1──1 questionnaire_response
	questionnaire_response 1──* answer
	app_user 1──1 user_neighborhood

All foreign keys use ON DELETE CASCADE. Timestamps are written by the
application in UTC.
*/
package db
