// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/quickly-poll/auth"
	"github.com/danielhkuo/quickly-poll/models"
	"github.com/danielhkuo/quickly-poll/store"
)

type VoteState int

const (
	VoteIdle VoteState = iota
	VoteVoted
	VoteNotVoted
)

func (s VoteState) String() string {
	switch s {
	case VoteIdle:
		return "idle"
	case VoteVoted:
		return "voted"
	case VoteNotVoted:
		return "not-voted"
	}
	return fmt.Sprintf("VoteState(%d)", int(s))
}

// VotingSession tracks whether the caller may still vote on one poll view.
// Once voted the session never calls the store again.
type VotingSession struct {
	store    Store
	pollID   string
	identity *auth.Identity
	state    VoteState
}

func (v *VotingSession) State() VoteState { return v.state }

// HasVoted reports whether the session is pinned to voted
func (v *VotingSession) HasVoted() bool { return v.state == VoteVoted }

// Begin runs the advisory check once. Anonymous sessions are not-voted
// without asking the store. Later calls are no-ops.
func (v *VotingSession) Begin(ctx context.Context) error {
	if v.state != VoteIdle {
		return nil
	}
	if v.identity == nil {
		v.state = VoteNotVoted
		return nil
	}

	voted, err := v.store.HasUserVoted(ctx, v.pollID, v.identity.ID)
	if err != nil {
		return err
	}

	if voted {
		v.state = VoteVoted
	} else {
		v.state = VoteNotVoted
	}
	return nil
}

// Vote casts the session's single vote. Storage decides duplicates, so an
// idle session votes without running the advisory check first.
func (v *VotingSession) Vote(ctx context.Context, optionID string) (*models.Vote, error) {
	if v.identity == nil {
		return nil, ErrUnauthenticated
	}
	if v.state == VoteVoted {
		return nil, ErrAlreadyVoted
	}

	vote, err := v.store.Vote(ctx, v.pollID, optionID, v.identity.ID)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateVote) {
			v.state = VoteVoted
		}
		return nil, err
	}

	v.state = VoteVoted
	return vote, nil
}
