// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quickly-poll/cliparse"
	"github.com/danielhkuo/quickly-poll/lifecycle"
	"github.com/danielhkuo/quickly-poll/middleware"
	"github.com/danielhkuo/quickly-poll/models"
	"github.com/danielhkuo/quickly-poll/store"
)

type ResultsHandler struct {
	ctrl *lifecycle.Controller
	cfg  cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{ctrl: lifecycle.NewController(store.NewPollStore(db)), cfg: cfg}
}

// GetResults handles GET /polls/{id}/results
// Counts are read from the database on every request.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	poll, results, err := h.ctrl.Results(r.Context(), pollID)
	if err != nil {
		writeError(w, err, "load results", "poll_id", pollID)
		return
	}

	total := 0
	for _, res := range results {
		total += res.VoteCount
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollResultsResponse{
		PollID:     poll.ID,
		Title:      poll.Title,
		Results:    results,
		TotalVotes: total,
	})
}
