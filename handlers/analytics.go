// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tor-iv/foe-finder-sub000/catalog"
	"github.com/tor-iv/foe-finder-sub000/cliparse"
	"github.com/tor-iv/foe-finder-sub000/db"
	"github.com/tor-iv/foe-finder-sub000/middleware"
	"github.com/tor-iv/foe-finder-sub000/models"
	"github.com/tor-iv/foe-finder-sub000/scoring"
)

// AnalyticsHandler serves the population view. Every route is behind
// middleware.RequireAdmin.
type AnalyticsHandler struct {
	db      *db.DB
	catalog *catalog.Catalog
	cfg     cliparse.Config
}

func NewAnalyticsHandler(conn *db.DB, cat *catalog.Catalog, cfg cliparse.Config) *AnalyticsHandler {
	return &AnalyticsHandler{db: conn, catalog: cat, cfg: cfg}
}

// GetStatistics handles GET /admin/statistics
func (h *AnalyticsHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	snapshot, err := LatestStatistics(r.Context(), h.db, h.catalog)
	if err != nil {
		slog.Error("failed to load statistics", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load statistics")
		return
	}

	snapshot.Statistics = nonNil(snapshot.Statistics)
	middleware.JSONResponse(w, http.StatusOK, snapshot)
}

// Refresh handles POST /admin/statistics/refresh
func (h *AnalyticsHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	snapshot, err := RefreshStatistics(r.Context(), h.db, h.catalog)
	if err != nil {
		slog.Error("failed to refresh statistics", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to refresh statistics")
		return
	}

	snapshot.Statistics = nonNil(snapshot.Statistics)
	middleware.JSONResponse(w, http.StatusOK, snapshot)
}

// GetDistribution handles GET /admin/questions/{id}/distribution
func (h *AnalyticsHandler) GetDistribution(w http.ResponseWriter, r *http.Request) {
	questionID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id must be an integer")
		return
	}

	question, ok := h.catalog.Lookup(questionID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	snapshot, err := LatestStatistics(r.Context(), h.db, h.catalog)
	if err != nil {
		slog.Error("failed to load statistics", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load statistics")
		return
	}

	// An unanswered question yields seven zero rows
	stat := scoring.StatisticsMap(snapshot.Statistics)[questionID]

	middleware.JSONResponse(w, http.StatusOK, models.DistributionResponse{
		QuestionID:   question.ID,
		QuestionText: question.Text,
		Distribution: scoring.Distribution(stat),
	})
}

// GetUserStats handles GET /admin/users/stats
func (h *AnalyticsHandler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	var stats models.UserStats
	err := h.db.QueryRowContext(r.Context(), `
		SELECT
			(SELECT COUNT(*) FROM app_user),
			(SELECT COUNT(*) FROM questionnaire_response)
	`).Scan(&stats.Total, &stats.Completed)
	if err != nil {
		slog.Error("failed to count users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}

const (
	defaultUserPageSize = 20
	maxUserPageSize     = 100
)

// ListUsers handles GET /admin/users?completed=&limit=&offset=
func (h *AnalyticsHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	where := ""
	if s := query.Get("completed"); s != "" {
		completed, err := strconv.ParseBool(s)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "completed must be true or false")
			return
		}
		if completed {
			where = "WHERE q.user_id IS NOT NULL"
		} else {
			where = "WHERE q.user_id IS NULL"
		}
	}

	limit, ok := queryInt(query.Get("limit"), defaultUserPageSize)
	if !ok || limit < 1 || limit > maxUserPageSize {
		middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("limit must be between 1 and %d", maxUserPageSize))
		return
	}
	offset, ok := queryInt(query.Get("offset"), 0)
	if !ok || offset < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "offset must be a non-negative integer")
		return
	}

	resp := models.AdminUsersResponse{Users: []models.User{}, Limit: limit, Offset: offset}

	err := h.db.QueryRowContext(r.Context(), `
		SELECT COUNT(*)
		FROM app_user u
		LEFT JOIN questionnaire_response q ON q.user_id = u.id
		`+where).Scan(&resp.Total)
	if err != nil {
		slog.Error("failed to count users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rows, err := h.db.QueryContext(r.Context(), `
		SELECT u.id, u.display_name, u.created_at,
		       CASE WHEN q.user_id IS NULL THEN 0 ELSE 1 END,
		       n.neighborhood_id
		FROM app_user u
		LEFT JOIN questionnaire_response q ON q.user_id = u.id
		LEFT JOIN user_neighborhood n ON n.user_id = u.id
		`+where+`
		ORDER BY u.created_at DESC, u.id DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		slog.Error("failed to query users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var user models.User
		var completed int
		var neighborhoodID sql.NullString
		if err := rows.Scan(&user.ID, &user.DisplayName, &user.CreatedAt, &completed, &neighborhoodID); err != nil {
			slog.Error("failed to scan user", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		user.HasCompletedQuestionnaire = completed == 1
		if neighborhoodID.Valid {
			user.NeighborhoodID = &neighborhoodID.String
		}
		resp.Users = append(resp.Users, user)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// queryInt parses an optional integer query parameter
func queryInt(s string, def int) (int, bool) {
	if s == "" {
		return def, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
