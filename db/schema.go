// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
)

// Open connects to the database and verifies the connection.
// SQLite connections always get foreign key enforcement and a busy timeout.
func Open(dbType, url string) (*sql.DB, error) {
	var driver, dsn string
	switch dbType {
	case TypePostgres:
		driver, dsn = "postgres", url
	case TypeSQLite:
		driver, dsn = "sqlite", sqliteDSN(url)
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One writer at a time keeps SQLite from returning SQLITE_BUSY under load
	if dbType == TypeSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

func sqliteDSN(url string) string {
	url = strings.TrimPrefix(url, "sqlite://")
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
}

// CreateSchema creates all tables and the results view.
// Safe to call multiple times.
func CreateSchema(db *sql.DB, dbType string) error {
	var ddl string
	switch dbType {
	case TypePostgres:
		ddl = tables + postgresView
	case TypeSQLite:
		ddl = tables + sqliteView
	default:
		return fmt.Errorf("unsupported database type %q", dbType)
	}

	// Not every driver accepts multi-statement Exec
	for _, stmt := range splitStatements(ddl) {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// DropSchema removes everything CreateSchema creates
func DropSchema(db *sql.DB) error {
	for _, stmt := range splitStatements(drop) {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}
	return nil
}

func splitStatements(ddl string) []string {
	var stmts []string
	for _, part := range strings.Split(ddl, ";") {
		lines := []string{}
		for _, line := range strings.Split(part, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "--") {
				continue
			}
			lines = append(lines, line)
		}
		stmt := strings.TrimSpace(strings.Join(lines, "\n"))
		if stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

const tables = `
-- Polls
CREATE TABLE IF NOT EXISTS polls (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL CHECK (title <> ''),
    description TEXT,
    created_by TEXT NOT NULL CHECK (created_by <> ''),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    is_active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE INDEX IF NOT EXISTS idx_polls_active_created ON polls(is_active, created_at);
CREATE INDEX IF NOT EXISTS idx_polls_created_by ON polls(created_by);

-- Options
CREATE TABLE IF NOT EXISTS poll_options (
    id TEXT PRIMARY KEY,
    poll_id TEXT NOT NULL REFERENCES polls(id),
    option_text TEXT NOT NULL,
    position INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (id, poll_id)
);

CREATE INDEX IF NOT EXISTS idx_poll_options_poll_id ON poll_options(poll_id);

-- Votes: one per user per poll, and the option must belong to the poll
CREATE TABLE IF NOT EXISTS votes (
    id TEXT PRIMARY KEY,
    poll_id TEXT NOT NULL REFERENCES polls(id),
    option_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (poll_id, user_id),
    FOREIGN KEY (option_id, poll_id) REFERENCES poll_options(id, poll_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_votes_option_id ON votes(option_id);
`

const resultsSelect = `
SELECT
    p.id AS poll_id,
    o.id AS option_id,
    o.option_text AS option_text,
    o.position AS position,
    COUNT(v.id) AS vote_count,
    p.title AS poll_title,
    p.description AS poll_description,
    p.created_at AS created_at,
    p.created_by AS created_by
FROM polls p
JOIN poll_options o ON o.poll_id = p.id
LEFT JOIN votes v ON v.option_id = o.id
GROUP BY p.id, o.id, o.option_text, o.position, p.title, p.description, p.created_at, p.created_by
`

const postgresView = `
-- Results
CREATE OR REPLACE VIEW poll_results AS` + resultsSelect + `;
`

const sqliteView = `
-- Results
CREATE VIEW IF NOT EXISTS poll_results AS` + resultsSelect + `;
`

const drop = `
DROP VIEW IF EXISTS poll_results;
DROP TABLE IF EXISTS votes;
DROP TABLE IF EXISTS poll_options;
DROP TABLE IF EXISTS polls;
`
