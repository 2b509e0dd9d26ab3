// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(d *DB) error {
	_, err := d.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Tables lists the schema tables in dependency order (parents first)
var Tables = []string{
	"app_user",
	"questionnaire_response",
	"answer",
	"user_neighborhood",
	"statistics_snapshot",
}

// The schema sticks to types and syntax shared by PostgreSQL and SQLite:
// no server-side defaults for timestamps, TEXT for JSON payloads.
const schema = `
-- Users
CREATE TABLE IF NOT EXISTS app_user (
    id TEXT PRIMARY KEY,
    display_name TEXT NOT NULL,
    user_token TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL
);

-- One questionnaire submission per user, replaced on retake
CREATE TABLE IF NOT EXISTS questionnaire_response (
    user_id TEXT PRIMARY KEY REFERENCES app_user(id) ON DELETE CASCADE,
    questionnaire_version INTEGER NOT NULL,
    source TEXT NOT NULL DEFAULT 'web' CHECK (source IN ('web', 'google_forms')),
    submitted_at TIMESTAMP NOT NULL,
    ip_hash TEXT,
    user_agent TEXT
);

-- Answers
CREATE TABLE IF NOT EXISTS answer (
    user_id TEXT NOT NULL REFERENCES questionnaire_response(user_id) ON DELETE CASCADE,
    question_id INTEGER NOT NULL,
    value INTEGER NOT NULL CHECK (value >= 1 AND value <= 7),
    position INTEGER NOT NULL,
    PRIMARY KEY (user_id, question_id)
);

CREATE INDEX IF NOT EXISTS idx_answer_question_id ON answer(question_id);

-- Cached neighborhood classification
CREATE TABLE IF NOT EXISTS user_neighborhood (
    user_id TEXT PRIMARY KEY REFERENCES app_user(id) ON DELETE CASCADE,
    neighborhood_id TEXT NOT NULL,
    computed_at TIMESTAMP NOT NULL
);

-- Statistics Snapshots
CREATE TABLE IF NOT EXISTS statistics_snapshot (
    id TEXT PRIMARY KEY,
    computed_at TIMESTAMP NOT NULL,
    response_count INTEGER NOT NULL,
    inputs_hash TEXT NOT NULL,
    payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_statistics_snapshot_computed_at ON statistics_snapshot(computed_at);
`
