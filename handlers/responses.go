// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tor-iv/foe-finder-sub000/auth"
	"github.com/tor-iv/foe-finder-sub000/catalog"
	"github.com/tor-iv/foe-finder-sub000/cliparse"
	"github.com/tor-iv/foe-finder-sub000/db"
	"github.com/tor-iv/foe-finder-sub000/middleware"
	"github.com/tor-iv/foe-finder-sub000/models"
	"github.com/tor-iv/foe-finder-sub000/scoring"
)

type ResponsesHandler struct {
	db      *db.DB
	catalog *catalog.Catalog
	cfg     cliparse.Config
}

func NewResponsesHandler(conn *db.DB, cat *catalog.Catalog, cfg cliparse.Config) *ResponsesHandler {
	return &ResponsesHandler{db: conn, catalog: cat, cfg: cfg}
}

// Submit handles PUT /users/me/responses
// A retake replaces the previous answer set wholesale.
func (h *ResponsesHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r, h.db)
	if !ok {
		return
	}

	var req models.SubmitResponsesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Answers) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "answers cannot be empty")
		return
	}

	for _, a := range req.Answers {
		if err := scoring.CheckAnswer(a, h.catalog); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	source := req.Source
	if source == "" {
		source = models.SourceWeb
	}
	if source != models.SourceWeb && source != models.SourceGoogleForms {
		middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown source %q", source))
		return
	}

	// Collapse duplicates
	set := scoring.Validate(req.Answers, h.catalog)

	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt)
	userAgent := r.UserAgent()
	submittedAt := time.Now().UTC()

	tx, err := h.db.BeginTx(r.Context(), nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	// Write first so SQLite takes the write lock before reading anything
	res, err := tx.ExecContext(r.Context(), `
		UPDATE questionnaire_response
		SET questionnaire_version = ?, source = ?, submitted_at = ?, ip_hash = ?, user_agent = ?
		WHERE user_id = ?
	`, models.QuestionnaireVersion, source, submittedAt, ipHash, userAgent, userID)
	if err != nil {
		slog.Error("failed to update response", "error", err, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save responses")
		return
	}
	updated, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read affected rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save responses")
		return
	}
	isRetake := updated > 0

	if isRetake {
		_, err = tx.ExecContext(r.Context(), `DELETE FROM answer WHERE user_id = ?`, userID)
		if err != nil {
			slog.Error("failed to delete old answers", "error", err, "user_id", userID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save responses")
			return
		}
	} else {
		_, err = tx.ExecContext(r.Context(), `
			INSERT INTO questionnaire_response (user_id, questionnaire_version, source, submitted_at, ip_hash, user_agent)
			VALUES (?, ?, ?, ?, ?, ?)
		`, userID, models.QuestionnaireVersion, source, submittedAt, ipHash, userAgent)
		if err != nil {
			slog.Error("failed to insert response", "error", err, "user_id", userID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save responses")
			return
		}
	}

	for i, a := range set {
		_, err = tx.ExecContext(r.Context(), `
			INSERT INTO answer (user_id, question_id, value, position)
			VALUES (?, ?, ?, ?)
		`, userID, a.QuestionID, a.Value, i)
		if err != nil {
			slog.Error("failed to insert answer", "error", err, "user_id", userID, "question_id", a.QuestionID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save responses")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save responses")
		return
	}

	neighborhood := h.updateDerived(r.Context(), userID, set, submittedAt)

	slog.Info("responses submitted",
		"user_id", userID,
		"answers", len(set),
		"is_retake", isRetake,
		"neighborhood", neighborhood.ID,
	)

	status := http.StatusCreated
	message := "Responses submitted successfully"
	if isRetake {
		status = http.StatusOK
		message = "Responses updated successfully"
	}

	middleware.JSONResponse(w, status, models.SubmitResponsesResponse{
		AnswerCount:  len(set),
		IsRetake:     isRetake,
		Neighborhood: neighborhood,
		Message:      message,
	})
}

// GetMine handles GET /users/me/responses
func (h *ResponsesHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r, h.db)
	if !ok {
		return
	}

	var resp models.MyResponsesResponse
	err := h.db.QueryRowContext(r.Context(), `
		SELECT source, submitted_at FROM questionnaire_response WHERE user_id = ?
	`, userID).Scan(&resp.Source, &resp.SubmittedAt)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No responses yet")
		return
	}
	if err != nil {
		slog.Error("failed to query response", "error", err, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	set, _, err := loadAnswerSet(r.Context(), h.db, userID)
	if err != nil {
		slog.Error("failed to load answers", "error", err, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	resp.Answers = set

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// updateDerived caches the user's neighborhood and rebuilds the population
// statistics after a committed submission. It runs to completion even if the
// client has gone away; failures are logged, not returned.
func (h *ResponsesHandler) updateDerived(ctx context.Context, userID string, set models.AnswerSet, at time.Time) models.NeighborhoodProfile {
	ctx = context.WithoutCancel(ctx)

	neighborhood := scoring.Classify(set, h.catalog.Neighborhoods())

	_, err := h.db.ExecContext(ctx, `
		INSERT INTO user_neighborhood (user_id, neighborhood_id, computed_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE
		SET neighborhood_id = excluded.neighborhood_id, computed_at = excluded.computed_at
	`, userID, neighborhood.ID, at)
	if err != nil {
		slog.Warn("failed to cache neighborhood", "error", err, "user_id", userID)
	}

	if _, err := RefreshStatistics(ctx, h.db, h.catalog); err != nil {
		slog.Warn("failed to refresh statistics", "error", err)
	}

	return neighborhood
}
