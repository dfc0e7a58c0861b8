// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lifecycle

import (
	"context"
	"fmt"
	"strings"

	"github.com/danielhkuo/quickly-poll/auth"
	"github.com/danielhkuo/quickly-poll/models"
	"github.com/danielhkuo/quickly-poll/store"
)

type AuthoringState int

const (
	StateEditing AuthoringState = iota
	StateSubmitting
	StateSuccess
	StateFailed
)

func (s AuthoringState) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("AuthoringState(%d)", int(s))
}

// AuthoringSession is the draft of one create or edit form.
//
// A failed Submit keeps the draft as it was and leaves the error on Err until
// the next Submit. After a successful Submit the session is closed: setters
// are ignored and anything returning an error returns ErrSessionClosed.
// Sessions are not safe for concurrent use.
type AuthoringSession struct {
	store    Store
	identity auth.Identity
	pollID   string // empty while creating

	title       string
	description string
	options     []models.OptionEdit
	removed     []models.RemovedOption

	state AuthoringState
	err   error
	poll  *models.Poll
}

func (s *AuthoringSession) State() AuthoringState { return s.state }

// Err is the error of the last failed Submit
func (s *AuthoringSession) Err() error { return s.err }

// Poll is the created poll after a successful create
func (s *AuthoringSession) Poll() *models.Poll { return s.poll }

// PollID is empty for a poll that has not been created yet
func (s *AuthoringSession) PollID() string {
	if s.poll != nil {
		return s.poll.ID
	}
	return s.pollID
}

func (s *AuthoringSession) Title() string       { return s.title }
func (s *AuthoringSession) Description() string { return s.description }

// Options returns a copy of the options shown on the form, in order
func (s *AuthoringSession) Options() []models.OptionEdit {
	return append([]models.OptionEdit(nil), s.options...)
}

func (s *AuthoringSession) closed() bool { return s.state == StateSuccess }

// edit moves a failed session back to editing
func (s *AuthoringSession) edit() {
	if s.state == StateFailed {
		s.state = StateEditing
	}
}

func (s *AuthoringSession) SetTitle(title string) {
	if s.closed() {
		return
	}
	s.edit()
	s.title = title
}

func (s *AuthoringSession) SetDescription(description string) {
	if s.closed() {
		return
	}
	s.edit()
	s.description = description
}

// AddOption appends a new option to the form
func (s *AuthoringSession) AddOption(text string) {
	if s.closed() {
		return
	}
	s.edit()
	s.options = append(s.options, models.NewOption{Text: text})
}

// SetOption changes the text of the option at index i, keeping its identity
func (s *AuthoringSession) SetOption(i int, text string) error {
	if s.closed() {
		return ErrSessionClosed
	}
	if i < 0 || i >= len(s.options) {
		return fmt.Errorf("%w: no option at index %d", store.ErrValidation, i)
	}
	s.edit()

	switch opt := s.options[i].(type) {
	case models.NewOption:
		opt.Text = text
		s.options[i] = opt
	case models.ExistingOption:
		opt.Text = text
		s.options[i] = opt
	}
	return nil
}

// RemoveOption drops the option at index i. The form never shows fewer than
// two options, so removal is refused at the minimum.
func (s *AuthoringSession) RemoveOption(i int) error {
	if s.closed() {
		return ErrSessionClosed
	}
	if i < 0 || i >= len(s.options) {
		return fmt.Errorf("%w: no option at index %d", store.ErrValidation, i)
	}
	if len(s.options) <= models.MinOptions {
		return fmt.Errorf("%w: Please provide at least %d options", store.ErrValidation, models.MinOptions)
	}
	s.edit()

	if existing, ok := s.options[i].(models.ExistingOption); ok {
		s.removed = append(s.removed, models.RemovedOption{ID: existing.ID})
	}
	s.options = append(s.options[:i], s.options[i+1:]...)
	return nil
}

// SetOptions replaces the whole option list. RemovedOption entries mark
// stored options for deletion; only edit sessions accept stored options.
func (s *AuthoringSession) SetOptions(edits []models.OptionEdit) error {
	if s.closed() {
		return ErrSessionClosed
	}

	options := make([]models.OptionEdit, 0, len(edits))
	var removed []models.RemovedOption
	for _, edit := range edits {
		if s.pollID == "" && edit.Kind() != models.EditNew {
			return fmt.Errorf("%w: a new poll has no stored options", store.ErrValidation)
		}
		if r, ok := edit.(models.RemovedOption); ok {
			removed = append(removed, r)
			continue
		}
		options = append(options, edit)
	}

	s.edit()
	s.options = options
	s.removed = removed
	return nil
}

// Submit validates the draft and writes it through the store.
// Titles and options are trimmed; blank options are dropped.
func (s *AuthoringSession) Submit(ctx context.Context) error {
	if s.closed() {
		return ErrSessionClosed
	}
	s.state = StateSubmitting

	if err := s.submit(ctx); err != nil {
		s.state = StateFailed
		s.err = err
		return err
	}

	s.state = StateSuccess
	s.err = nil
	return nil
}

func (s *AuthoringSession) submit(ctx context.Context) error {
	title := strings.TrimSpace(s.title)
	if title == "" {
		return fmt.Errorf("%w: title is required", store.ErrValidation)
	}

	var description *string
	if d := strings.TrimSpace(s.description); d != "" {
		description = &d
	}

	edits, kept := s.cleanOptions()
	if kept < models.MinOptions {
		return fmt.Errorf("%w: Please provide at least %d options", store.ErrValidation, models.MinOptions)
	}

	if s.pollID == "" {
		texts := make([]string, 0, len(edits))
		for _, edit := range edits {
			texts = append(texts, edit.(models.NewOption).Text)
		}

		poll, err := s.store.CreatePoll(ctx, models.CreatePollInput{
			Title:       title,
			Description: description,
			Options:     texts,
			OwnerID:     s.identity.ID,
		})
		if err != nil {
			return err
		}
		s.poll = poll
		return nil
	}

	return s.store.UpdatePoll(ctx, models.UpdatePollInput{
		PollID:      s.pollID,
		OwnerID:     s.identity.ID,
		Title:       title,
		Description: description,
		Options:     edits,
	})
}

// cleanOptions trims the draft's options without touching the draft.
// Blank new options are dropped and blank stored options become removals.
func (s *AuthoringSession) cleanOptions() ([]models.OptionEdit, int) {
	edits := make([]models.OptionEdit, 0, len(s.options)+len(s.removed))
	kept := 0

	for _, opt := range s.options {
		switch o := opt.(type) {
		case models.NewOption:
			if text := strings.TrimSpace(o.Text); text != "" {
				edits = append(edits, models.NewOption{Text: text})
				kept++
			}
		case models.ExistingOption:
			if text := strings.TrimSpace(o.Text); text != "" {
				edits = append(edits, models.ExistingOption{ID: o.ID, Text: text})
				kept++
			} else {
				edits = append(edits, models.RemovedOption{ID: o.ID})
			}
		}
	}
	for _, r := range s.removed {
		edits = append(edits, r)
	}

	return edits, kept
}
