// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the poll access layer: every read and write of polls,
options and votes goes through PollStore.

	s := store.NewPollStore(conn)
	poll, err := s.CreatePoll(ctx, models.CreatePollInput{...})

# Errors

Failures are reported as one of the sentinel errors, possibly wrapping the
driver error:

  - ErrValidation: fewer than 2 options, blank title, malformed edit list
  - ErrDuplicateVote: the (poll_id, user_id) unique constraint fired
  - ErrInvalidReference: foreign key violation, or the poll is not active
  - ErrPollNotFound, ErrNotOwner: edit or delete of someone else's poll
  - ErrPersistence: anything else

Both lib/pq and modernc.org/sqlite constraint errors are recognised.

# Consistency

Vote does not read before it writes. The database rejects a second vote
from the same user and a vote for an option of another poll, and those
rejections are the only source of truth.

UpdatePoll runs the field update and the whole option reconciliation in one
transaction. Reads never return soft deleted polls.
*/
package store
