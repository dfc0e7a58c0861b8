// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open picks the driver from the database type:

	conn, err := db.Open(db.TypePostgres, "postgres://...")
	conn, err := db.Open(db.TypeSQLite, "file:quickly-poll.db")

PostgreSQL uses github.com/lib/pq. SQLite uses modernc.org/sqlite with
foreign keys switched on for every connection.

# Schema Creation

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for tables and indexes.

# Tables

  - polls: poll metadata, soft deleted via is_active
  - poll_options: options per poll, ordered by position
  - votes: at most one per (poll_id, user_id)
  - poll_results: view with one row per option and its vote count

# Relationships

	polls 1──* poll_options
	polls 1──* votes
	poll_options 1──* votes (ON DELETE CASCADE)

votes references poll_options on (option_id, poll_id), so a vote can
never point at another poll's option.
*/
package db
