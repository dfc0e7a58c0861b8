// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-poll/models"
)

// PollStore is the only code that talks to the polls, poll_options and votes tables
type PollStore struct {
	db *sql.DB
}

func NewPollStore(db *sql.DB) *PollStore {
	return &PollStore{db: db}
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// CreatePoll stores a poll and its options in one transaction.
// Options are stored verbatim; trimming is the caller's job.
func (s *PollStore) CreatePoll(ctx context.Context, in models.CreatePollInput) (*models.Poll, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.OwnerID == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrValidation)
	}
	if len(in.Options) < models.MinOptions {
		return nil, fmt.Errorf("%w: at least %d options are required", ErrValidation, models.MinOptions)
	}

	ctx = context.WithoutCancel(ctx)
	now := time.Now().UTC()
	poll := &models.Poll{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		CreatedBy:   in.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
		IsActive:    true,
		Options:     make([]models.PollOption, 0, len(in.Options)),
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO polls (id, title, description, created_by, created_at, updated_at, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, poll.ID, poll.Title, poll.Description, poll.CreatedBy, now, now, true)
		if err != nil {
			return fmt.Errorf("%w: insert poll: %w", ErrPersistence, err)
		}

		for i, text := range in.Options {
			opt := models.PollOption{
				ID:         uuid.NewString(),
				PollID:     poll.ID,
				OptionText: text,
				Position:   i,
				CreatedAt:  now,
			}
			if err := insertOption(ctx, tx, opt); err != nil {
				return err
			}
			poll.Options = append(poll.Options, opt)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return poll, nil
}

// GetPolls returns every active poll, newest first, with options and vote counts
func (s *PollStore) GetPolls(ctx context.Context) ([]models.Poll, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, created_by, created_at, updated_at, is_active
		FROM polls
		WHERE is_active = TRUE
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: query polls: %w", ErrPersistence, err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	index := map[string]int{}
	for rows.Next() {
		var p models.Poll
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt, &p.IsActive); err != nil {
			return nil, fmt.Errorf("%w: scan poll: %w", ErrPersistence, err)
		}
		p.Options = []models.PollOption{}
		index[p.ID] = len(polls)
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate polls: %w", ErrPersistence, err)
	}

	options, err := loadOptions(ctx, s.db, `p.is_active = TRUE`)
	if err != nil {
		return nil, err
	}
	for _, opt := range options {
		// A poll created after the first query is skipped
		if i, ok := index[opt.PollID]; ok {
			polls[i].Options = append(polls[i].Options, opt)
		}
	}

	return polls, nil
}

// GetPoll returns a single active poll, or nil if it is missing or soft deleted
func (s *PollStore) GetPoll(ctx context.Context, id string) (*models.Poll, error) {
	var p models.Poll
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, created_by, created_at, updated_at, is_active
		FROM polls
		WHERE id = $1 AND is_active = TRUE
	`, id).Scan(&p.ID, &p.Title, &p.Description, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt, &p.IsActive)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: query poll: %w", ErrPersistence, err)
	}

	options, err := loadOptions(ctx, s.db, `p.id = $1`, id)
	if err != nil {
		return nil, err
	}
	p.Options = options

	return &p, nil
}

// Vote records one user's choice. The database enforces one vote per user per
// poll and that the option belongs to the poll; nothing is checked beforehand.
func (s *PollStore) Vote(ctx context.Context, pollID, optionID, userID string) (*models.Vote, error) {
	ctx = context.WithoutCancel(ctx)

	vote := &models.Vote{
		ID:        uuid.NewString(),
		PollID:    pollID,
		OptionID:  optionID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO votes (id, poll_id, option_id, user_id, created_at)
		SELECT $1, $2, $3, $4, $5
		WHERE EXISTS (SELECT 1 FROM polls WHERE id = $2 AND is_active = TRUE)
	`, vote.ID, pollID, optionID, userID, vote.CreatedAt)
	if err != nil {
		switch constraintViolation(err) {
		case violationUnique:
			return nil, fmt.Errorf("%w: %w", ErrDuplicateVote, err)
		case violationForeignKey:
			return nil, fmt.Errorf("%w: %w", ErrInvalidReference, err)
		}
		return nil, fmt.Errorf("%w: insert vote: %w", ErrPersistence, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: insert vote: %w", ErrPersistence, err)
	}
	if n == 0 {
		// Poll is missing or soft deleted
		return nil, fmt.Errorf("%w: poll %s is not open for voting", ErrInvalidReference, pollID)
	}

	return vote, nil
}

// HasUserVoted is advisory only; Vote does not depend on it
func (s *PollStore) HasUserVoted(ctx context.Context, pollID, userID string) (bool, error) {
	var voted bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM votes
			WHERE poll_id = $1 AND user_id = $2
		)
	`, pollID, userID).Scan(&voted)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: query vote: %w", ErrPersistence, err)
	}
	return voted, nil
}

// GetPollResults reads the per-option vote counts fresh from the poll_results view
func (s *PollStore) GetPollResults(ctx context.Context, pollID string) ([]models.PollResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT poll_id, option_id, option_text, position, vote_count,
		       poll_title, poll_description, created_at, created_by
		FROM poll_results
		WHERE poll_id = $1
		ORDER BY position, option_id
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("%w: query results: %w", ErrPersistence, err)
	}
	defer rows.Close()

	results := []models.PollResult{}
	for rows.Next() {
		var r models.PollResult
		if err := rows.Scan(
			&r.PollID, &r.OptionID, &r.OptionText, &r.Position, &r.VoteCount,
			&r.PollTitle, &r.PollDescription, &r.CreatedAt, &r.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("%w: scan result: %w", ErrPersistence, err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate results: %w", ErrPersistence, err)
	}

	return results, nil
}

// DeletePoll soft deletes a poll. Deleting an already inactive poll succeeds.
func (s *PollStore) DeletePoll(ctx context.Context, id, ownerID string) error {
	ctx = context.WithoutCancel(ctx)

	res, err := s.db.ExecContext(ctx, `
		UPDATE polls
		SET is_active = FALSE, updated_at = $1
		WHERE id = $2 AND created_by = $3 AND is_active = TRUE
	`, time.Now().UTC(), id, ownerID)
	if err != nil {
		return fmt.Errorf("%w: delete poll: %w", ErrPersistence, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: delete poll: %w", ErrPersistence, err)
	}
	if n > 0 {
		return nil
	}

	owner, _, err := pollOwner(ctx, s.db, id)
	if err != nil {
		return err
	}
	if owner != ownerID {
		return ErrNotOwner
	}
	return nil
}

// UpdatePoll updates the poll's fields and reconciles its options in one
// transaction. Nothing is written unless every step succeeds.
func (s *PollStore) UpdatePoll(ctx context.Context, in models.UpdatePollInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}

	ctx = context.WithoutCancel(ctx)
	now := time.Now().UTC()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE polls
			SET title = $1, description = $2, updated_at = $3
			WHERE id = $4 AND created_by = $5 AND is_active = TRUE
		`, in.Title, in.Description, now, in.PollID, in.OwnerID)
		if err != nil {
			return fmt.Errorf("%w: update poll: %w", ErrPersistence, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: update poll: %w", ErrPersistence, err)
		}
		if n == 0 {
			owner, active, err := pollOwner(ctx, tx, in.PollID)
			switch {
			case err != nil:
				return err
			case !active:
				return ErrPollNotFound
			case owner != in.OwnerID:
				return ErrNotOwner
			}
		}

		stored, err := optionIDs(ctx, tx, in.PollID)
		if err != nil {
			return err
		}

		plan, err := planReconcile(stored, in.Options)
		if err != nil {
			return err
		}
		if plan.Kept() < models.MinOptions {
			return fmt.Errorf("%w: at least %d options are required", ErrValidation, models.MinOptions)
		}

		for _, id := range plan.Deletes {
			if _, err := tx.ExecContext(ctx, `
				DELETE FROM poll_options WHERE id = $1 AND poll_id = $2
			`, id, in.PollID); err != nil {
				return fmt.Errorf("%w: delete option: %w", ErrPersistence, err)
			}
		}

		for _, u := range plan.Updates {
			if _, err := tx.ExecContext(ctx, `
				UPDATE poll_options SET option_text = $1, position = $2
				WHERE id = $3 AND poll_id = $4
			`, u.Edit.Text, u.Position, u.Edit.ID, in.PollID); err != nil {
				return fmt.Errorf("%w: update option: %w", ErrPersistence, err)
			}
		}

		for _, ins := range plan.Inserts {
			if err := insertOption(ctx, tx, models.PollOption{
				ID:         uuid.NewString(),
				PollID:     in.PollID,
				OptionText: ins.Edit.Text,
				Position:   ins.Position,
				CreatedAt:  now,
			}); err != nil {
				return err
			}
		}

		// The plan counted what should remain; the table is the authority
		var count int
		if err := tx.QueryRowContext(ctx, `
			SELECT COUNT(*) FROM poll_options WHERE poll_id = $1
		`, in.PollID).Scan(&count); err != nil {
			return fmt.Errorf("%w: count options: %w", ErrPersistence, err)
		}
		if count < models.MinOptions {
			return fmt.Errorf("%w: at least %d options are required", ErrValidation, models.MinOptions)
		}

		return nil
	})
}

func (s *PollStore) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %w", ErrPersistence, err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.Warn("failed to roll back transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit transaction: %w", ErrPersistence, err)
	}
	return nil
}

func insertOption(ctx context.Context, tx *sql.Tx, opt models.PollOption) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO poll_options (id, poll_id, option_text, position, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, opt.ID, opt.PollID, opt.OptionText, opt.Position, opt.CreatedAt)
	if err != nil {
		if constraintViolation(err) == violationForeignKey {
			return fmt.Errorf("%w: %w", ErrInvalidReference, err)
		}
		return fmt.Errorf("%w: insert option: %w", ErrPersistence, err)
	}
	return nil
}

// loadOptions returns options with vote counts for the polls matching where,
// which may refer to the polls table as p.
func loadOptions(ctx context.Context, q querier, where string, args ...any) ([]models.PollOption, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT o.id, o.poll_id, o.option_text, o.position, o.created_at, COUNT(v.id)
		FROM poll_options o
		JOIN polls p ON p.id = o.poll_id
		LEFT JOIN votes v ON v.option_id = o.id
		WHERE `+where+`
		GROUP BY o.id, o.poll_id, o.option_text, o.position, o.created_at
		ORDER BY o.poll_id, o.position, o.id
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query options: %w", ErrPersistence, err)
	}
	defer rows.Close()

	options := []models.PollOption{}
	for rows.Next() {
		var opt models.PollOption
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.OptionText, &opt.Position, &opt.CreatedAt, &opt.VoteCount); err != nil {
			return nil, fmt.Errorf("%w: scan option: %w", ErrPersistence, err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate options: %w", ErrPersistence, err)
	}

	return options, nil
}

func optionIDs(ctx context.Context, q querier, pollID string) ([]string, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id FROM poll_options WHERE poll_id = $1 ORDER BY position, id
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("%w: query options: %w", ErrPersistence, err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: scan option: %w", ErrPersistence, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate options: %w", ErrPersistence, err)
	}
	return ids, nil
}

// pollOwner looks a poll up regardless of its active flag
func pollOwner(ctx context.Context, q querier, id string) (owner string, active bool, err error) {
	err = q.QueryRowContext(ctx, `
		SELECT created_by, is_active FROM polls WHERE id = $1
	`, id).Scan(&owner, &active)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, ErrPollNotFound
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: query poll: %w", ErrPersistence, err)
	}
	return owner, active, nil
}
