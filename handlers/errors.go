// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-poll/auth"
	"github.com/danielhkuo/quickly-poll/cliparse"
	"github.com/danielhkuo/quickly-poll/lifecycle"
	"github.com/danielhkuo/quickly-poll/middleware"
	"github.com/danielhkuo/quickly-poll/models"
	"github.com/danielhkuo/quickly-poll/store"
)

// Messages shown to users
const (
	msgSignIn        = "Sign in required"
	msgNotOwner      = "Only the poll owner can do that"
	msgPollNotFound  = "Poll not found"
	msgAlreadyVoted  = "You have already voted on this poll"
	msgInvalidChoice = "Invalid poll or option"
)

// identify returns the caller set by middleware.WithIdentity, or parses the
// Authorization header when the handler runs without that middleware.
func identify(r *http.Request, cfg cliparse.Config) *auth.Identity {
	if id := auth.FromContext(r.Context()); id != nil {
		return id
	}
	id, err := auth.ParseToken(auth.BearerToken(r.Header.Get("Authorization")), cfg.JWTSecret, cfg.JWTIssuer)
	if err != nil {
		return nil
	}
	return id
}

// writeError maps domain errors to status codes. Anything unrecognised is
// logged and reported as a failure to perform action.
func writeError(w http.ResponseWriter, err error, action string, attrs ...any) {
	switch {
	case errors.Is(err, lifecycle.ErrUnauthenticated):
		middleware.ErrorResponse(w, http.StatusUnauthorized, msgSignIn)
	case errors.Is(err, store.ErrValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, store.ErrNotOwner):
		middleware.ErrorResponse(w, http.StatusForbidden, msgNotOwner)
	case errors.Is(err, store.ErrPollNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, msgPollNotFound)
	case errors.Is(err, store.ErrDuplicateVote), errors.Is(err, lifecycle.ErrAlreadyVoted):
		middleware.ErrorResponse(w, http.StatusConflict, msgAlreadyVoted)
	case errors.Is(err, store.ErrInvalidReference):
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, msgInvalidChoice)
	default:
		slog.Error("failed to "+action, append(attrs, "error", err)...)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to "+action)
	}
}

// validationMessage strips the sentinel prefix off a validation error
func validationMessage(err error) string {
	msg := err.Error()
	prefix := store.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return msg
}

// present fills the fields computed for display
func present(p *models.Poll) {
	p.CreatedAgo = humanize.Time(p.CreatedAt)
}
