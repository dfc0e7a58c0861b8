// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-poll/cliparse"
	"github.com/danielhkuo/quickly-poll/lifecycle"
	"github.com/danielhkuo/quickly-poll/middleware"
	"github.com/danielhkuo/quickly-poll/models"
	"github.com/danielhkuo/quickly-poll/store"
)

type PollHandler struct {
	ctrl *lifecycle.Controller
	cfg  cliparse.Config
}

func NewPollHandler(db *sql.DB, cfg cliparse.Config) *PollHandler {
	return &PollHandler{ctrl: lifecycle.NewController(store.NewPollStore(db)), cfg: cfg}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	id := identify(r, h.cfg)
	if id == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, msgSignIn)
		return
	}

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, err := h.ctrl.CreatePoll(r.Context(), id, req.Title, req.Description, req.Options)
	if err != nil {
		writeError(w, err, "create poll", "user_id", id.ID)
		return
	}

	slog.Info("poll created", "poll_id", poll.ID, "user_id", id.ID, "options", len(poll.Options))

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		PollID: poll.ID,
	})
}

// ListPolls handles GET /polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.ctrl.Polls(r.Context())
	if err != nil {
		writeError(w, err, "list polls")
		return
	}

	for i := range polls {
		present(&polls[i])
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListPollsResponse{Polls: polls})
}

// GetPoll handles GET /polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	poll, err := h.ctrl.Poll(r.Context(), pollID)
	if err != nil {
		writeError(w, err, "load poll", "poll_id", pollID)
		return
	}

	id := identify(r, h.cfg)
	session := h.ctrl.NewVotingSession(pollID, id)
	if err := session.Begin(r.Context()); err != nil {
		writeError(w, err, "load poll", "poll_id", pollID)
		return
	}

	present(poll)
	middleware.JSONResponse(w, http.StatusOK, models.PollDetailResponse{
		Poll:     *poll,
		HasVoted: session.HasVoted(),
		IsOwner:  id != nil && id.ID == poll.CreatedBy,
	})
}

// UpdatePoll handles PUT /polls/{id}
func (h *PollHandler) UpdatePoll(w http.ResponseWriter, r *http.Request) {
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

	var req models.UpdatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	edits := make([]models.OptionEdit, 0, len(req.Options))
	for _, o := range req.Options {
		edits = append(edits, models.OptionEditFromRequest(o))
	}

	if err := h.ctrl.EditPoll(r.Context(), id, pollID, req.Title, req.Description, edits); err != nil {
		writeError(w, err, "update poll", "poll_id", pollID, "user_id", id.ID)
		return
	}

	slog.Info("poll updated", "poll_id", pollID, "user_id", id.ID)

	poll, err := h.ctrl.Poll(r.Context(), pollID)
	if err != nil {
		writeError(w, err, "load poll", "poll_id", pollID)
		return
	}

	present(poll)
	middleware.JSONResponse(w, http.StatusOK, poll)
}

// DeletePoll handles DELETE /polls/{id}
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	id := identify(r, h.cfg)
	if err := h.ctrl.DeletePoll(r.Context(), id, pollID); err != nil {
		writeError(w, err, "delete poll", "poll_id", pollID)
		return
	}

	slog.Info("poll deleted", "poll_id", pollID, "user_id", id.ID)

	w.WriteHeader(http.StatusNoContent)
}
