// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Poll API server.

Quickly Poll is a small polling service: signed-in users create polls with
two or more options, everyone votes once per poll, and results are counted
from the stored votes on every read.

# Starting the Server

The server reads environment variables (and an optional .env file) or CLI
flags:

	DATABASE_URL=polls.db JWT_SECRET=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - JWT_SECRET (--jwt-secret): HMAC secret for identity tokens

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - JWT_ISSUER (--jwt-issuer): Required "iss" claim, when set
  - --env-file: Path to a .env file (default: .env, missing is fine)

# Architecture

Requests flow handler → lifecycle → store → database:

  - handlers: HTTP request handlers (polls, voting, results)
  - lifecycle: Authoring and voting sessions, identity gating
  - store: SQL access, vote uniqueness, atomic option edits
  - router: Route definitions using Go 1.22+ routing
  - middleware: Identity, CORS, logging, JSON helpers
  - models: Request/response and domain types
  - auth: Identity token validation
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
