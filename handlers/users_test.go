// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tor-iv/foe-finder-sub000/auth"
	"github.com/tor-iv/foe-finder-sub000/models"
	"github.com/tor-iv/foe-finder-sub000/testutil"
)

func TestRegister(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewUserHandler(conn, cfg)

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
	}{
		{name: "valid", body: models.RegisterUserRequest{DisplayName: "Contrarian Carl"}, wantStatus: http.StatusCreated},
		{name: "trimmed", body: models.RegisterUserRequest{DisplayName: "  Al  "}, wantStatus: http.StatusCreated},
		{name: "empty", body: models.RegisterUserRequest{DisplayName: "   "}, wantStatus: http.StatusBadRequest},
		{name: "too short", body: models.RegisterUserRequest{DisplayName: "A"}, wantStatus: http.StatusBadRequest},
		{name: "too long", body: models.RegisterUserRequest{DisplayName: strings.Repeat("x", 51)}, wantStatus: http.StatusBadRequest},
		{name: "invalid json", body: "not an object", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/users", tt.body, nil)
			w := httptest.NewRecorder()

			h.Register(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)
			if tt.wantStatus != http.StatusCreated {
				return
			}

			var resp models.RegisterUserResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.UserID == "" {
				t.Error("Expected a user_id")
			}
			if err := auth.CheckTokenFormat(resp.UserToken); err != nil {
				t.Errorf("Invalid user_token %q: %v", resp.UserToken, err)
			}
		})
	}

	if got := testutil.CountRows(t, conn, "app_user"); got != 2 {
		t.Errorf("Expected 2 users, got %d", got)
	}
}

func TestGetMe(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewUserHandler(conn, cfg)

	userID, token := testutil.CreateTestUser(t, conn, "Fresh Face")

	t.Run("before submitting", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/users/me", nil, testutil.UserHeaders(token))
		w := httptest.NewRecorder()

		h.GetMe(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var user models.User
		testutil.AssertJSON(t, w, &user)
		if user.ID != userID {
			t.Errorf("Expected id %s, got %s", userID, user.ID)
		}
		if user.DisplayName != "Fresh Face" {
			t.Errorf("Expected display name 'Fresh Face', got %q", user.DisplayName)
		}
		if user.HasCompletedQuestionnaire {
			t.Error("Expected has_completed_questionnaire to be false")
		}
		if user.NeighborhoodID != nil {
			t.Errorf("Expected no neighborhood, got %q", *user.NeighborhoodID)
		}
	})

	t.Run("after submitting", func(t *testing.T) {
		submit := NewResponsesHandler(conn, testCatalog(), cfg)
		body := models.SubmitResponsesRequest{Answers: testutil.UniformAnswers(30, 4)}
		w := httptest.NewRecorder()
		submit.Submit(w, testutil.MakeRequest("PUT", "/users/me/responses", body, testutil.UserHeaders(token)))
		testutil.AssertStatus(t, w, http.StatusCreated)

		req := testutil.MakeRequest("GET", "/users/me", nil, testutil.UserHeaders(token))
		w = httptest.NewRecorder()

		h.GetMe(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var user models.User
		testutil.AssertJSON(t, w, &user)
		if !user.HasCompletedQuestionnaire {
			t.Error("Expected has_completed_questionnaire to be true")
		}
		if user.NeighborhoodID == nil || *user.NeighborhoodID != "upper-east-side" {
			t.Errorf("Expected neighborhood upper-east-side, got %v", user.NeighborhoodID)
		}
	})
}

func TestCurrentUser_Auth(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewUserHandler(conn, testutil.GetTestConfig())

	unknown, _ := auth.GenerateUserToken()

	tests := []struct {
		name    string
		headers map[string]string
	}{
		{name: "missing header", headers: nil},
		{name: "malformed token", headers: testutil.UserHeaders("short")},
		{name: "unknown token", headers: testutil.UserHeaders(unknown)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/users/me", nil, tt.headers)
			w := httptest.NewRecorder()

			h.GetMe(w, req)

			testutil.AssertStatus(t, w, http.StatusUnauthorized)
		})
	}
}
