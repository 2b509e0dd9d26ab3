// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/tor-iv/foe-finder-sub000/auth"
	"github.com/tor-iv/foe-finder-sub000/cliparse"
	"github.com/tor-iv/foe-finder-sub000/db"
	"github.com/tor-iv/foe-finder-sub000/middleware"
	"github.com/tor-iv/foe-finder-sub000/models"
)

// SetupTestDB opens a fresh SQLite database with the full schema in a
// per-test temp directory. It is closed when the test ends.
func SetupTestDB(t *testing.T) *db.DB {
	t.Helper()

	conn, err := db.Open(db.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             cliparse.DefaultPort,
		DatabaseType:     db.DriverSQLite,
		AdminKeySalt:     "test-admin-salt",
		IPHashSalt:       "test-ip-salt",
		MinOutlierSample: cliparse.DefaultMinOutlierSample,
	}
}

// AdminHeaders returns the headers that authorize an admin request
func AdminHeaders(cfg cliparse.Config) map[string]string {
	return map[string]string{
		middleware.HeaderAdminKey: auth.GenerateAdminKey(cfg.AdminKeySalt),
	}
}

// UserHeaders returns the headers that authenticate a user request
func UserHeaders(token string) map[string]string {
	return map[string]string{
		middleware.HeaderUserToken: token,
	}
}

// CreateTestUser inserts a user and returns its id and token
func CreateTestUser(t *testing.T, conn *db.DB, displayName string) (userID, userToken string) {
	t.Helper()

	userID = auth.NewUserID()
	userToken, err := auth.GenerateUserToken()
	if err != nil {
		t.Fatalf("Failed to generate user token: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO app_user (id, display_name, user_token, created_at)
		VALUES (?, ?, ?, ?)
	`, userID, displayName, userToken, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID, userToken
}

// SubmitTestAnswers stores a questionnaire response for a user directly,
// bypassing validation and the statistics refresh
func SubmitTestAnswers(t *testing.T, conn *db.DB, userID string, answers []models.Answer) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO questionnaire_response (user_id, questionnaire_version, source, submitted_at)
		VALUES (?, ?, ?, ?)
	`, userID, models.QuestionnaireVersion, models.SourceWeb, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test response: %v", err)
	}

	for i, a := range answers {
		_, err := conn.Exec(`
			INSERT INTO answer (user_id, question_id, value, position)
			VALUES (?, ?, ?, ?)
		`, userID, a.QuestionID, a.Value, i)
		if err != nil {
			t.Fatalf("Failed to create test answer: %v", err)
		}
	}
}

// UniformAnswers answers questions 1..n all with the same value
func UniformAnswers(n, value int) []models.Answer {
	answers := make([]models.Answer, n)
	for i := range answers {
		answers[i] = models.Answer{QuestionID: i + 1, Value: value}
	}
	return answers
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, conn *db.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
