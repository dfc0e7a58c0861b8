// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-poll/auth"
	"github.com/danielhkuo/quickly-poll/cliparse"
	"github.com/danielhkuo/quickly-poll/db"
)

// TestDBEnv names the variable that points tests at a PostgreSQL database
// instead of a throwaway SQLite file
const TestDBEnv = "TEST_DATABASE_URL"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbType, url := db.TypeSQLite, "file:"+filepath.Join(t.TempDir(), "test.db")
	if pgURL := os.Getenv(TestDBEnv); pgURL != "" {
		dbType, url = db.TypePostgres, pgURL
	}

	conn, err := db.Open(dbType, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Clean up tables before each test
	if err := db.DropSchema(conn); err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}

	if err := db.CreateSchema(conn, dbType); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "file:test.db",
		DatabaseType: db.TypeSQLite,
		JWTSecret:    "test-jwt-secret",
	}
}

// TestToken issues an identity token accepted by GetTestConfig
func TestToken(t *testing.T, cfg cliparse.Config, userID string) string {
	t.Helper()

	token, err := auth.IssueToken(auth.Identity{ID: userID, Email: userID + "@example.com"}, cfg.JWTSecret, cfg.JWTIssuer, time.Hour)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return token
}

// AuthHeader returns request headers carrying a token for userID
func AuthHeader(t *testing.T, cfg cliparse.Config, userID string) map[string]string {
	t.Helper()
	return map[string]string{"Authorization": "Bearer " + TestToken(t, cfg, userID)}
}

// CreateTestPoll inserts an active poll with the given options and returns
// the poll ID and option IDs in order
func CreateTestPoll(t *testing.T, conn *sql.DB, ownerID, title string, options ...string) (string, []string) {
	t.Helper()

	pollID := uuid.NewString()
	now := time.Now().UTC()
	_, err := conn.Exec(`
		INSERT INTO polls (id, title, description, created_by, created_at, updated_at, is_active)
		VALUES ($1, $2, 'A test poll', $3, $4, $4, TRUE)
	`, pollID, title, ownerID, now)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	optionIDs := make([]string, 0, len(options))
	for i, text := range options {
		optionIDs = append(optionIDs, AddTestOption(t, conn, pollID, text, i))
	}

	return pollID, optionIDs
}

// AddTestOption adds an option to a poll and returns the option ID
func AddTestOption(t *testing.T, conn *sql.DB, pollID, text string, position int) string {
	t.Helper()

	optionID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO poll_options (id, poll_id, option_text, position, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, optionID, pollID, text, position, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test option: %v", err)
	}

	return optionID
}

// CastTestVote inserts a vote directly, bypassing the store
func CastTestVote(t *testing.T, conn *sql.DB, pollID, optionID, userID string) string {
	t.Helper()

	voteID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO votes (id, poll_id, option_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, voteID, pollID, optionID, userID, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return voteID
}

// DeactivateTestPoll soft deletes a poll directly
func DeactivateTestPoll(t *testing.T, conn *sql.DB, pollID string) {
	t.Helper()

	if _, err := conn.Exec(`UPDATE polls SET is_active = FALSE WHERE id = $1`, pollID); err != nil {
		t.Fatalf("Failed to deactivate test poll: %v", err)
	}
}

// CountRows counts rows of a table matching poll_id
func CountRows(t *testing.T, conn *sql.DB, table, pollID string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM `+table+` WHERE poll_id = $1`, pollID).Scan(&n); err != nil {
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
