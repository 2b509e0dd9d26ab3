// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tor-iv/foe-finder-sub000/auth"
	"github.com/tor-iv/foe-finder-sub000/cliparse"
	"github.com/tor-iv/foe-finder-sub000/db"
	"github.com/tor-iv/foe-finder-sub000/middleware"
	"github.com/tor-iv/foe-finder-sub000/models"
)

type UserHandler struct {
	db  *db.DB
	cfg cliparse.Config
}

func NewUserHandler(conn *db.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{db: conn, cfg: cfg}
}

// Register handles POST /users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if req.DisplayName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "display_name is required")
		return
	}
	if n := utf8.RuneCountInString(req.DisplayName); n < 2 || n > 50 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "display_name must be 2-50 characters")
		return
	}

	userToken, err := auth.GenerateUserToken()
	if err != nil {
		slog.Error("failed to generate user token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register user")
		return
	}
	userID := auth.NewUserID()

	_, err = h.db.ExecContext(r.Context(), `
		INSERT INTO app_user (id, display_name, user_token, created_at)
		VALUES (?, ?, ?, ?)
	`, userID, req.DisplayName, userToken, time.Now().UTC())
	if err != nil {
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	slog.Info("user registered", "user_id", userID)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterUserResponse{
		UserID:    userID,
		UserToken: userToken,
	})
}

// GetMe handles GET /users/me
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r, h.db)
	if !ok {
		return
	}

	var user models.User
	var submissions int
	var neighborhoodID sql.NullString
	err := h.db.QueryRowContext(r.Context(), `
		SELECT u.id, u.display_name, u.created_at,
		       (SELECT COUNT(*) FROM questionnaire_response q WHERE q.user_id = u.id),
		       n.neighborhood_id
		FROM app_user u
		LEFT JOIN user_neighborhood n ON n.user_id = u.id
		WHERE u.id = ?
	`, userID).Scan(&user.ID, &user.DisplayName, &user.CreatedAt, &submissions, &neighborhoodID)
	if err != nil {
		slog.Error("failed to query user", "error", err, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	user.HasCompletedQuestionnaire = submissions > 0
	if neighborhoodID.Valid {
		user.NeighborhoodID = &neighborhoodID.String
	}

	middleware.JSONResponse(w, http.StatusOK, user)
}

// currentUser resolves the X-User-Token header to a user id. On failure it
// writes the error response and returns ok=false.
func currentUser(w http.ResponseWriter, r *http.Request, conn db.Querier) (userID string, ok bool) {
	token := middleware.UserToken(r)
	if token == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-User-Token header required")
		return "", false
	}
	if err := auth.CheckTokenFormat(token); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid user token")
		return "", false
	}

	err := conn.QueryRowContext(r.Context(), `
		SELECT id FROM app_user WHERE user_token = ?
	`, token).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid user token")
		return "", false
	}
	if err != nil {
		slog.Error("failed to look up user token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return "", false
	}

	return userID, true
}
