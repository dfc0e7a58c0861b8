// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: title, description, options ([]string)
  - UpdatePollRequest: title, description, options ([]OptionEditRequest)
  - OptionEditRequest: id (empty for new options), text, remove
  - VoteRequest: option_id

# Response Types

  - CreatePollResponse: poll_id
  - ListPollsResponse: polls
  - PollDetailResponse: poll, has_voted, is_owner
  - PollResultsResponse: poll_id, results, total_votes
  - VoteResponse: vote_id, message
  - VoteStatusResponse: has_voted
  - ErrorResponse: error, message

# Domain Types

  - Poll: poll metadata with nested options and vote counts
  - PollOption: one selectable choice, ordered by position
  - Vote: one user's choice on one poll
  - PollResult: per-option aggregate from the poll_results view

# Option Edits

An edited option list is a slice of OptionEdit, each one of:

	NewOption{Text}          insert
	ExistingOption{ID, Text} update in place
	RemovedOption{ID}        delete

Stored options that do not appear in the list at all are deleted as well.
*/
package models
