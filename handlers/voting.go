// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/quickly-poll/cliparse"
	"github.com/danielhkuo/quickly-poll/lifecycle"
	"github.com/danielhkuo/quickly-poll/middleware"
	"github.com/danielhkuo/quickly-poll/models"
	"github.com/danielhkuo/quickly-poll/store"
)

type VotingHandler struct {
	ctrl *lifecycle.Controller
	cfg  cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{ctrl: lifecycle.NewController(store.NewPollStore(db)), cfg: cfg}
}

// Vote handles POST /polls/{id}/votes
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	id := identify(r, h.cfg)
	if id == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, msgSignIn)
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if strings.TrimSpace(req.OptionID) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "option_id is required")
		return
	}

	// One request is one voting session; the database rejects duplicates
	session := h.ctrl.NewVotingSession(pollID, id)
	vote, err := session.Vote(r.Context(), req.OptionID)
	if err != nil {
		writeError(w, err, "record vote", "poll_id", pollID, "user_id", id.ID)
		return
	}

	slog.Info("vote recorded", "poll_id", pollID, "vote_id", vote.ID, "user_id", id.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
		VoteID:  vote.ID,
		Message: "Vote recorded",
	})
}

// GetMyVote handles GET /polls/{id}/my-vote
// The answer is advisory; anonymous callers always get false.
func (h *VotingHandler) GetMyVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	session := h.ctrl.NewVotingSession(pollID, identify(r, h.cfg))
	if err := session.Begin(r.Context()); err != nil {
		writeError(w, err, "check vote", "poll_id", pollID)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteStatusResponse{
		HasVoted: session.HasVoted(),
	})
}
