// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
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

// ResultsHandler serves a user's engine output: hot takes, disagreement,
// neighborhood and outliers
type ResultsHandler struct {
	db      *db.DB
	catalog *catalog.Catalog
	cfg     cliparse.Config
}

func NewResultsHandler(conn *db.DB, cat *catalog.Catalog, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: conn, catalog: cat, cfg: cfg}
}

// GetHotTakes handles GET /users/me/hot-takes?count=N
func (h *ResultsHandler) GetHotTakes(w http.ResponseWriter, r *http.Request) {
	count := scoring.DefaultHotTakeCount
	if s := r.URL.Query().Get("count"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "count must be a positive integer")
			return
		}
		count = n
	}

	_, set, ok := h.userAnswers(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HotTakesResponse{
		HotTakes: nonNil(scoring.ExtractHotTakes(set, h.catalog, count)),
	})
}

// GetDisagreement handles GET /users/me/disagreement
func (h *ResultsHandler) GetDisagreement(w http.ResponseWriter, r *http.Request) {
	userID, set, ok := h.userAnswers(w, r)
	if !ok {
		return
	}

	snapshot, err := LatestStatistics(r.Context(), h.db, h.catalog)
	if err != nil {
		slog.Error("failed to load statistics", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load statistics")
		return
	}

	score := scoring.ScoreDisagreement(userID, set, scoring.StatisticsMap(snapshot.Statistics))
	middleware.JSONResponse(w, http.StatusOK, score)
}

// GetNeighborhood handles GET /users/me/neighborhood
func (h *ResultsHandler) GetNeighborhood(w http.ResponseWriter, r *http.Request) {
	_, set, ok := h.userAnswers(w, r)
	if !ok {
		return
	}

	result := scoring.ClassifyWithDimensions(set, h.catalog.Neighborhoods())
	middleware.JSONResponse(w, http.StatusOK, result)
}

// GetOutliers handles GET /users/me/outliers
func (h *ResultsHandler) GetOutliers(w http.ResponseWriter, r *http.Request) {
	_, set, ok := h.userAnswers(w, r)
	if !ok {
		return
	}

	snapshot, err := LatestStatistics(r.Context(), h.db, h.catalog)
	if err != nil {
		slog.Error("failed to load statistics", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load statistics")
		return
	}

	outliers := scoring.FindOutliers(set, scoring.StatisticsMap(snapshot.Statistics), h.catalog, h.cfg.MinOutlierSample)
	middleware.JSONResponse(w, http.StatusOK, models.OutliersResponse{
		Outliers:  nonNil(outliers),
		MinSample: minSample(h.cfg.MinOutlierSample),
	})
}

// userAnswers authenticates the caller and loads their answer set, filtered
// against the current catalog. Writes 404 if they never submitted.
func (h *ResultsHandler) userAnswers(w http.ResponseWriter, r *http.Request) (string, models.AnswerSet, bool) {
	userID, ok := currentUser(w, r, h.db)
	if !ok {
		return "", nil, false
	}

	set, found, err := loadAnswerSet(r.Context(), h.db, userID)
	if err != nil {
		slog.Error("failed to load answers", "error", err, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return "", nil, false
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "No responses yet")
		return "", nil, false
	}

	return userID, scoring.Validate(set, h.catalog), true
}

func minSample(configured int) int {
	if configured <= 0 {
		return scoring.DefaultMinOutlierSample
	}
	return configured
}

// nonNil keeps empty results encoding as [] rather than null
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
