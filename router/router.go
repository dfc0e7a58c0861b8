// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quickly-poll/cliparse"
	"github.com/danielhkuo/quickly-poll/handlers"
	"github.com/danielhkuo/quickly-poll/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)

	// Identity outside logging so the completion log sees the user
	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithIdentity(cfg.JWTSecret, cfg.JWTIssuer, middleware.WithLogging(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Polls
	mux.HandleFunc("GET /polls", wrap(pollHandler.ListPolls))
	mux.HandleFunc("POST /polls", wrap(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls/{id}", wrap(pollHandler.GetPoll))
	mux.HandleFunc("PUT /polls/{id}", wrap(pollHandler.UpdatePoll))
	mux.HandleFunc("DELETE /polls/{id}", wrap(pollHandler.DeletePoll))

	// Voting
	mux.HandleFunc("POST /polls/{id}/votes", wrap(votingHandler.Vote))
	mux.HandleFunc("GET /polls/{id}/my-vote", wrap(votingHandler.GetMyVote))

	// Results
	mux.HandleFunc("GET /polls/{id}/results", wrap(resultsHandler.GetResults))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-poll API v1"))
	})

	return mux
}
