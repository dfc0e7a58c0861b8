// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lifecycle

//go:generate mockgen -source=controller.go -destination=mocks/mock_store.go -package=mock_lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/quickly-poll/auth"
	"github.com/danielhkuo/quickly-poll/models"
	"github.com/danielhkuo/quickly-poll/store"
)

var (
	ErrUnauthenticated = errors.New("sign in required")
	ErrAlreadyVoted    = errors.New("already voted on this poll")
	ErrSessionClosed   = errors.New("session already submitted")
)

// Store is the poll access layer the controller drives. *store.PollStore implements it.
type Store interface {
	CreatePoll(ctx context.Context, in models.CreatePollInput) (*models.Poll, error)
	GetPolls(ctx context.Context) ([]models.Poll, error)
	GetPoll(ctx context.Context, id string) (*models.Poll, error)
	Vote(ctx context.Context, pollID, optionID, userID string) (*models.Vote, error)
	HasUserVoted(ctx context.Context, pollID, userID string) (bool, error)
	GetPollResults(ctx context.Context, pollID string) ([]models.PollResult, error)
	DeletePoll(ctx context.Context, id, ownerID string) error
	UpdatePoll(ctx context.Context, in models.UpdatePollInput) error
}

// Controller orchestrates create, edit, delete and vote flows over a Store.
// It holds no state of its own; sessions carry the per-interaction state.
type Controller struct {
	store Store
}

func NewController(s Store) *Controller {
	return &Controller{store: s}
}

// Polls returns every active poll, newest first
func (c *Controller) Polls(ctx context.Context) ([]models.Poll, error) {
	return c.store.GetPolls(ctx)
}

// Poll returns an active poll or store.ErrPollNotFound
func (c *Controller) Poll(ctx context.Context, id string) (*models.Poll, error) {
	poll, err := c.store.GetPoll(ctx, id)
	if err != nil {
		return nil, err
	}
	if poll == nil {
		return nil, fmt.Errorf("%w: %s", store.ErrPollNotFound, id)
	}
	return poll, nil
}

// Results returns the per-option counts of an active poll
func (c *Controller) Results(ctx context.Context, pollID string) (*models.Poll, []models.PollResult, error) {
	poll, err := c.Poll(ctx, pollID)
	if err != nil {
		return nil, nil, err
	}

	results, err := c.store.GetPollResults(ctx, pollID)
	if err != nil {
		return nil, nil, err
	}
	return poll, results, nil
}

// NewPoll starts an authoring session for a poll that does not exist yet
func (c *Controller) NewPoll(id *auth.Identity) (*AuthoringSession, error) {
	if id == nil {
		return nil, ErrUnauthenticated
	}
	return &AuthoringSession{
		store:    c.store,
		identity: *id,
		options:  []models.OptionEdit{},
	}, nil
}

// OpenEdit starts an authoring session seeded from a stored poll.
// Only the owner may open one.
func (c *Controller) OpenEdit(ctx context.Context, id *auth.Identity, pollID string) (*AuthoringSession, error) {
	if id == nil {
		return nil, ErrUnauthenticated
	}

	poll, err := c.Poll(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if poll.CreatedBy != id.ID {
		return nil, store.ErrNotOwner
	}

	sess := &AuthoringSession{
		store:    c.store,
		identity: *id,
		pollID:   poll.ID,
		title:    poll.Title,
		options:  make([]models.OptionEdit, 0, len(poll.Options)),
	}
	if poll.Description != nil {
		sess.description = *poll.Description
	}
	for _, opt := range poll.Options {
		sess.options = append(sess.options, models.ExistingOption{ID: opt.ID, Text: opt.OptionText})
	}
	return sess, nil
}

// CreatePoll runs a whole authoring session in one call
func (c *Controller) CreatePoll(ctx context.Context, id *auth.Identity, title, description string, options []string) (*models.Poll, error) {
	sess, err := c.NewPoll(id)
	if err != nil {
		return nil, err
	}

	sess.SetTitle(title)
	sess.SetDescription(description)
	for _, text := range options {
		sess.AddOption(text)
	}

	if err := sess.Submit(ctx); err != nil {
		return nil, err
	}
	return sess.Poll(), nil
}

// EditPoll replaces a poll's fields and option list in one atomic update
func (c *Controller) EditPoll(ctx context.Context, id *auth.Identity, pollID, title, description string, options []models.OptionEdit) error {
	sess, err := c.OpenEdit(ctx, id, pollID)
	if err != nil {
		return err
	}

	sess.SetTitle(title)
	sess.SetDescription(description)
	if err := sess.SetOptions(options); err != nil {
		return err
	}

	return sess.Submit(ctx)
}

// DeletePoll soft deletes a poll owned by id
func (c *Controller) DeletePoll(ctx context.Context, id *auth.Identity, pollID string) error {
	if id == nil {
		return ErrUnauthenticated
	}
	return c.store.DeletePoll(ctx, pollID, id.ID)
}

// NewVotingSession starts a voting session for one poll view.
// A nil identity gives a read-only session.
func (c *Controller) NewVotingSession(pollID string, id *auth.Identity) *VotingSession {
	return &VotingSession{
		store:    c.store,
		pollID:   pollID,
		identity: id,
		state:    VoteIdle,
	}
}
