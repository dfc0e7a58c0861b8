// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: PostgreSQL connection string or SQLite file (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - JWTSecret: Secret shared with the identity provider (required)
  - JWTIssuer: Expected token issuer (optional)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-jwt-secret  Identity token secret
	-jwt-issuer  Identity token issuer
	-env-file    Dotenv file (default: .env)

# Environment Variables

Flags fall back to environment variables, parsed with caarlos0/env:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	JWT_SECRET    → -jwt-secret
	JWT_ISSUER    → -jwt-issuer

Variables missing from the environment are read from the dotenv file if it
exists (joho/godotenv). CLI flags take precedence over both.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - DATABASE_TYPE is neither sqlite nor postgres
  - JWT_SECRET is missing
*/
package cliparse
