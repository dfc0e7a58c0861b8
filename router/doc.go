// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Poll API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Polls (writes need Authorization: Bearer <token>):

	GET    /polls      - List active polls
	POST   /polls      - Create poll
	GET    /polls/{id} - Poll with options and counts
	PUT    /polls/{id} - Edit title, description and options (owner)
	DELETE /polls/{id} - Soft delete (owner)

Voting:

	POST /polls/{id}/votes   - Vote once
	GET  /polls/{id}/my-vote - Has the caller voted

Results:

	GET /polls/{id}/results - Per-option vote counts

# Middleware

Every API route runs middleware.WithIdentity, then middleware.WithLogging,
then the handler. CORS is applied to the whole mux in main.
*/
package router
