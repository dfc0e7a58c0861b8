// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package lifecycle orchestrates the create, edit, delete and vote flows on top
of the poll store.

Every write needs an identity. A nil *auth.Identity is rejected with
ErrUnauthenticated before the store is called.

# Authoring

An AuthoringSession is the draft behind one create or edit form:

	editing ──Submit──▶ submitting ──▶ success (terminal)
	   ▲                    │
	   └──── any edit ◀── failed

Submit trims the title and every option, drops blank options and refuses to
send fewer than two. Those checks are for the user; the store and the
database enforce the same rules on their own.

	sess, err := ctrl.OpenEdit(ctx, id, pollID)
	sess.SetOption(0, "Pizza (large)")
	sess.AddOption("Sushi")
	err = sess.Submit(ctx)

Edit sessions send the whole option list as models.OptionEdit values. The
store applies it in one transaction.

# Voting

A VotingSession moves idle → voted | not-voted. Begin asks the store once
whether the user has voted; the answer only decides what to show. Vote is
the only authority: a duplicate rejected by the database pins the session to
voted just like a success does, and a voted session answers ErrAlreadyVoted
without calling the store.

# Testing

Controller tests use a gomock Store from the mocks package:

	ctrl := gomock.NewController(t)
	st := mock_lifecycle.NewMockStore(ctrl)
	st.EXPECT().Vote(gomock.Any(), "poll-1", "opt-1", "user-1").Return(&models.Vote{}, nil)

Regenerate it with go generate after changing Store.
*/
package lifecycle
