// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Identity

WithIdentity reads the bearer token and puts the caller's auth.Identity on
the request context:

	mux.HandleFunc("POST /polls", middleware.WithIdentity(secret, issuer, handler))

Missing or invalid tokens do not fail the request. The request continues
anonymously and write handlers answer 401 themselves.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /polls", middleware.WithLogging(handler))

Logs request start (method, path, client IP) and completion (status,
duration_ms, and user_id when the request is identified). Put WithIdentity
outside WithLogging so the completion line can see the user.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type and Authorization.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
