// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Poll API.

# Handler Types

Each handler is a struct with a lifecycle controller and config:

  - PollHandler: create, list, read, edit and delete polls
  - VotingHandler: cast a vote and check whether the caller has voted
  - ResultsHandler: per-option vote counts

Handlers are created via constructor functions that accept *sql.DB and Config:

	pollHandler := handlers.NewPollHandler(db, cfg)

# Identity

Writes need a signed-in user. The router runs middleware.WithIdentity in
front of every handler; handlers also read the Authorization header
themselves when called directly, which is how the tests use them.

# Poll Lifecycle

Polls are active until their owner deletes them. Deleted polls stay in the
database but are gone from every read.

	POST   /polls      → CreatePoll (at least 2 options after trimming)
	GET    /polls      → ListPolls (newest first, with options and counts)
	GET    /polls/{id} → GetPoll (adds has_voted and is_owner)
	PUT    /polls/{id} → UpdatePoll (owner only, applied atomically)
	DELETE /polls/{id} → DeletePoll (owner only, repeatable)

PUT takes the whole option list. An entry without an id is a new option,
an entry with an id updates that option, and "remove": true deletes it.
Stored options missing from the list are deleted too.

# Voting Flow

	POST /polls/{id}/votes   → Vote (one per user per poll)
	GET  /polls/{id}/my-vote → GetMyVote (advisory)
	GET  /polls/{id}/results → GetResults

# Errors

	400 validation      401 no identity     403 not the owner
	404 no such poll    409 already voted   422 option not in poll
	500 anything else (logged)
*/
package handlers
