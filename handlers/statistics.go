// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tor-iv/foe-finder-sub000/auth"
	"github.com/tor-iv/foe-finder-sub000/catalog"
	"github.com/tor-iv/foe-finder-sub000/db"
	"github.com/tor-iv/foe-finder-sub000/models"
	"github.com/tor-iv/foe-finder-sub000/scoring"
)

// SnapshotRetention is how many statistics snapshots are kept
const SnapshotRetention = 10

// populationSnapshot is every stored answer set, read in one statement
type populationSnapshot struct {
	sets       []models.AnswerSet
	inputsHash string
	readAt     time.Time
}

// RefreshStatistics recomputes population statistics from the complete set
// of stored answers and stores the result as a new snapshot
func RefreshStatistics(ctx context.Context, conn *db.DB, cat *catalog.Catalog) (models.StatisticsSnapshot, error) {
	pop, err := readPopulation(ctx, conn)
	if err != nil {
		return models.StatisticsSnapshot{}, err
	}

	stats := scoring.Aggregate(pop.sets, cat)

	snapshot := models.StatisticsSnapshot{
		ID:            auth.NewSnapshotID(),
		ComputedAt:    pop.readAt,
		ResponseCount: len(pop.sets),
		InputsHash:    pop.inputsHash,
		Statistics:    scoring.SortedStatistics(stats, cat),
	}

	payload, err := json.Marshal(snapshot.Statistics)
	if err != nil {
		return models.StatisticsSnapshot{}, fmt.Errorf("failed to encode statistics: %w", err)
	}

	if err := storeSnapshot(ctx, conn, snapshot, payload); err != nil {
		return models.StatisticsSnapshot{}, err
	}

	slog.Info("statistics refreshed",
		"snapshot_id", snapshot.ID,
		"responses", humanize.Comma(int64(snapshot.ResponseCount)),
		"questions", len(snapshot.Statistics),
	)

	return snapshot, nil
}

// storeSnapshot inserts a snapshot and prunes all but the newest
// SnapshotRetention rows in the same transaction
func storeSnapshot(ctx context.Context, conn *db.DB, snapshot models.StatisticsSnapshot, payload []byte) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO statistics_snapshot (id, computed_at, response_count, inputs_hash, payload)
		VALUES (?, ?, ?, ?, ?)
	`, snapshot.ID, snapshot.ComputedAt, snapshot.ResponseCount, snapshot.InputsHash, string(payload))
	if err != nil {
		return fmt.Errorf("failed to store statistics snapshot: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM statistics_snapshot
		WHERE id NOT IN (
			SELECT id FROM statistics_snapshot
			ORDER BY computed_at DESC, id DESC
			LIMIT ?
		)
	`, SnapshotRetention)
	if err != nil {
		return fmt.Errorf("failed to prune statistics snapshots: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit statistics snapshot: %w", err)
	}
	return nil
}

// LatestStatistics returns the newest stored snapshot, building the first
// one on demand
func LatestStatistics(ctx context.Context, conn *db.DB, cat *catalog.Catalog) (models.StatisticsSnapshot, error) {
	var snapshot models.StatisticsSnapshot
	var payload string

	err := conn.QueryRowContext(ctx, `
		SELECT id, computed_at, response_count, inputs_hash, payload
		FROM statistics_snapshot
		ORDER BY computed_at DESC, id DESC
		LIMIT 1
	`).Scan(&snapshot.ID, &snapshot.ComputedAt, &snapshot.ResponseCount, &snapshot.InputsHash, &payload)

	if errors.Is(err, sql.ErrNoRows) {
		return RefreshStatistics(ctx, conn, cat)
	}
	if err != nil {
		return models.StatisticsSnapshot{}, fmt.Errorf("failed to query statistics snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(payload), &snapshot.Statistics); err != nil {
		return models.StatisticsSnapshot{}, fmt.Errorf("failed to parse statistics snapshot %s: %w", snapshot.ID, err)
	}

	return snapshot, nil
}

// readPopulation loads every submission with its answers in a single
// statement, so the hash and the aggregated answers describe the same
// population on every driver
func readPopulation(ctx context.Context, conn db.Querier) (populationSnapshot, error) {
	pop := populationSnapshot{readAt: time.Now().UTC()}

	// Sorted by user so the inputs hash is stable
	rows, err := conn.QueryContext(ctx, `
		SELECT q.user_id, q.submitted_at, a.question_id, a.value
		FROM questionnaire_response q
		LEFT JOIN answer a ON a.user_id = q.user_id
		ORDER BY q.user_id, a.position
	`)
	if err != nil {
		return populationSnapshot{}, fmt.Errorf("failed to query population: %w", err)
	}
	defer rows.Close()

	h := sha256.New()
	current := ""
	for rows.Next() {
		var userID string
		var submittedAt time.Time
		var questionID, value sql.NullInt64
		if err := rows.Scan(&userID, &submittedAt, &questionID, &value); err != nil {
			return populationSnapshot{}, fmt.Errorf("failed to scan population row: %w", err)
		}

		if len(pop.sets) == 0 || userID != current {
			current = userID
			fmt.Fprintf(h, "%s|%s\n", userID, submittedAt.UTC().Format(time.RFC3339Nano))
			pop.sets = append(pop.sets, models.AnswerSet{})
		}

		// A response with no stored answers still counts toward the population
		if !questionID.Valid || !value.Valid {
			continue
		}
		last := len(pop.sets) - 1
		pop.sets[last] = append(pop.sets[last], models.Answer{
			QuestionID: int(questionID.Int64),
			Value:      int(value.Int64),
		})
	}
	if err := rows.Err(); err != nil {
		return populationSnapshot{}, fmt.Errorf("failed to read population: %w", err)
	}

	pop.inputsHash = hex.EncodeToString(h.Sum(nil))
	return pop, nil
}

// loadAnswerSet returns the stored answers of one user in submission order.
// found is false when the user never submitted.
func loadAnswerSet(ctx context.Context, q db.Querier, userID string) (set models.AnswerSet, found bool, err error) {
	var exists int
	err = q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM questionnaire_response WHERE user_id = ?
	`, userID).Scan(&exists)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query response: %w", err)
	}
	if exists == 0 {
		return nil, false, nil
	}

	rows, err := q.QueryContext(ctx, `
		SELECT question_id, value
		FROM answer
		WHERE user_id = ?
		ORDER BY position
	`, userID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query answers: %w", err)
	}
	defer rows.Close()

	set = models.AnswerSet{}
	for rows.Next() {
		var a models.Answer
		if err := rows.Scan(&a.QuestionID, &a.Value); err != nil {
			return nil, false, fmt.Errorf("failed to scan answer: %w", err)
		}
		set = append(set, a)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to read answers: %w", err)
	}

	return set, true, nil
}
